package gridreveal

import (
	"math"
	"math/rand/v2"
)

// StaggerFrom selects which element starts first.
type StaggerFrom uint8

const (
	FromStart  StaggerFrom = iota // first element first
	FromCenter                    // middle element first, spreading outward
	FromEnd                       // last element first
	FromEdges                     // outermost elements first, converging inward
	FromRandom                    // shuffled order
	FromIndex                     // the element at Stagger.FromIndex first
)

// Axis restricts grid distance to one axis.
type Axis uint8

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

// Stagger offsets the start times of a tween applied to many elements.
type Stagger struct {
	// Each is the delay between consecutive elements, in seconds.
	Each float32
	// Amount is the total spread, in seconds, divided among all elements.
	// When non-zero it takes precedence over Each.
	Amount float32
	From   StaggerFrom
	// FromIndex is the starting element when From is FromIndex.
	FromIndex int
	// Grid is [rows, cols]. When set, distances are measured between grid
	// cells (row-major) instead of along the element list.
	Grid [2]int
	Axis Axis
}

// Delays returns the start offset of each of n elements. rng is only used by
// FromRandom; nil falls back to a fixed seed so results stay reproducible.
func (s Stagger) Delays(n int, rng *rand.Rand) []float32 {
	out := make([]float32, n)
	if n == 0 {
		return out
	}

	dist := s.distances(n, rng)
	maxD := 0.0
	for _, d := range dist {
		maxD = math.Max(maxD, d)
	}

	for i, d := range dist {
		switch {
		case s.Amount != 0:
			if maxD > 0 {
				out[i] = float32(d / maxD * float64(s.Amount))
			}
		default:
			out[i] = float32(d * float64(s.Each))
		}
	}
	return out
}

// Span returns the largest delay for n elements.
func (s Stagger) Span(n int) float32 {
	var span float32
	for _, d := range s.Delays(n, nil) {
		span = max(span, d)
	}
	return span
}

func (s Stagger) distances(n int, rng *rand.Rand) []float64 {
	rows, cols := s.Grid[0], s.Grid[1]
	if rows <= 0 || cols <= 0 {
		rows, cols = 1, n
	}

	pos := func(i int) (float64, float64) {
		return float64(i % cols), float64(i / cols)
	}

	var fx, fy float64
	switch s.From {
	case FromCenter, FromEdges:
		fx, fy = float64(cols-1)/2, float64(rows-1)/2
	case FromEnd:
		fx, fy = float64(cols-1), float64(rows-1)
	case FromIndex:
		fx, fy = pos(max(0, min(s.FromIndex, n-1)))
	}

	dist := make([]float64, n)
	maxD := 0.0
	for i := range dist {
		x, y := pos(i)
		dx, dy := math.Abs(x-fx), math.Abs(y-fy)
		switch s.Axis {
		case AxisX:
			dist[i] = dx
		case AxisY:
			dist[i] = dy
		default:
			dist[i] = math.Hypot(dx, dy)
		}
		maxD = math.Max(maxD, dist[i])
	}

	switch s.From {
	case FromEdges:
		for i := range dist {
			dist[i] = maxD - dist[i]
		}
	case FromRandom:
		if rng == nil {
			rng = rand.New(rand.NewPCG(1, 2))
		}
		for i, p := range rng.Perm(n) {
			dist[i] = float64(p)
		}
	}
	return dist
}
