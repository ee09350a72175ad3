package gridreveal

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultLerp is the smoothing factor used by NewSmoothScroller.
const DefaultLerp = 0.15

// SmoothScroller eases the page scroll position towards a target. Input sets
// the target; Update moves the animated position a fraction of the remaining
// distance each frame, independent of frame rate.
type SmoothScroller struct {
	// Lerp is the fraction of the remaining distance covered per 1/60 s.
	// 1 snaps immediately.
	Lerp float64
	// WheelMultiplier scales mouse wheel deltas into pixels.
	WheelMultiplier float64

	target   float64
	position float64
	limit    float64

	listeners []func(scroll float64)
}

// NewSmoothScroller returns a scroller with DefaultLerp.
func NewSmoothScroller() *SmoothScroller {
	return &SmoothScroller{Lerp: DefaultLerp, WheelMultiplier: 100}
}

// OnScroll registers fn to be called with the new position whenever it
// changes.
func (s *SmoothScroller) OnScroll(fn func(scroll float64)) {
	s.listeners = append(s.listeners, fn)
}

// SetLimit sets the maximum scroll offset and clamps the target and position.
func (s *SmoothScroller) SetLimit(limit float64) {
	s.limit = max(0, limit)
	s.target = s.clamp(s.target)
	if p := s.clamp(s.position); p != s.position {
		s.position = p
		s.emit()
	}
}

// Limit returns the maximum scroll offset.
func (s *SmoothScroller) Limit() float64 {
	return s.limit
}

// ScrollTo sets the target offset. With immediate the position jumps there.
func (s *SmoothScroller) ScrollTo(y float64, immediate bool) {
	s.target = s.clamp(y)
	if immediate && s.position != s.target {
		s.position = s.target
		s.emit()
	}
}

// ScrollBy moves the target by dy pixels.
func (s *SmoothScroller) ScrollBy(dy float64) {
	s.target = s.clamp(s.target + dy)
}

// Position returns the animated scroll offset.
func (s *SmoothScroller) Position() float64 {
	return s.position
}

// Target returns the offset the scroller is heading to.
func (s *SmoothScroller) Target() float64 {
	return s.target
}

// Settled reports whether the position has reached the target.
func (s *SmoothScroller) Settled() bool {
	return s.position == s.target
}

// Update advances the animated position by dt seconds.
func (s *SmoothScroller) Update(dt float32) {
	if s.position == s.target {
		return
	}
	lerp := s.Lerp
	if lerp <= 0 || lerp >= 1 {
		s.position = s.target
		s.emit()
		return
	}
	f := 1 - math.Exp(-lerp*60*float64(dt))
	s.position += (s.target - s.position) * f
	if math.Abs(s.target-s.position) < 0.5 {
		s.position = s.target
	}
	s.emit()
}

// HandleInput feeds mouse wheel and keyboard scrolling into the target.
// Arrow keys move 40 px, page keys and space move 90% of the viewport.
func (s *SmoothScroller) HandleInput(viewport Size) {
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.ScrollBy(-wy * s.WheelMultiplier)
	}

	page := viewport.Height * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.ScrollBy(40)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.ScrollBy(-40)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.ScrollTo(0, false)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.ScrollTo(s.limit, false)
	}
}

func (s *SmoothScroller) clamp(y float64) float64 {
	return max(0, min(y, s.limit))
}

func (s *SmoothScroller) emit() {
	for _, fn := range s.listeners {
		fn(s.position)
	}
}
