package gridreveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Edge is a point along one axis of a box: Frac of its size plus Px pixels.
type Edge struct {
	Frac, Px float64
}

// Of returns the edge's offset within a span of the given size.
func (e Edge) Of(size float64) float64 {
	return e.Frac*size + e.Px
}

// Position says when a trigger fires, in the form "<trigger edge>
// <viewport edge>": "center center" fires when the trigger's center meets
// the viewport's center. Edges are top, center, bottom, a percentage or a
// pixel count. Wrapping in clamp(...) keeps the resolved scroll offset inside
// the page. An end position may instead be relative to the start: "+=250%"
// (percent of the viewport height) or "+=300" (pixels).
type Position struct {
	Trigger, Viewport Edge
	Clamp             bool
	Relative          bool
	Delta             Edge
}

// ParsePosition parses a trigger position string.
func ParsePosition(s string) (Position, error) {
	var p Position
	src := strings.TrimSpace(s)
	if strings.HasPrefix(src, "clamp(") && strings.HasSuffix(src, ")") {
		p.Clamp = true
		src = strings.TrimSpace(src[len("clamp(") : len(src)-1])
	}

	if rest, ok := strings.CutPrefix(src, "+="); ok {
		e, err := parseEdge(rest)
		if err != nil {
			return Position{}, fmt.Errorf("parse position %q: %w", s, err)
		}
		p.Relative = true
		p.Delta = e
		return p, nil
	}

	fields := strings.Fields(src)
	if len(fields) == 0 || len(fields) > 2 {
		return Position{}, fmt.Errorf("parse position %q: want \"<trigger> <viewport>\"", s)
	}
	var err error
	if p.Trigger, err = parseEdge(fields[0]); err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	// A single edge applies to both boxes.
	p.Viewport = p.Trigger
	if len(fields) == 2 {
		if p.Viewport, err = parseEdge(fields[1]); err != nil {
			return Position{}, fmt.Errorf("parse position %q: %w", s, err)
		}
	}
	return p, nil
}

func parseEdge(s string) (Edge, error) {
	switch s {
	case "top", "left":
		return Edge{}, nil
	case "center":
		return Edge{Frac: 0.5}, nil
	case "bottom", "right":
		return Edge{Frac: 1}, nil
	}
	if num, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Edge{}, fmt.Errorf("bad percentage %q", s)
		}
		return Edge{Frac: v / 100}, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return Edge{}, fmt.Errorf("bad edge %q", s)
	}
	return Edge{Px: v}, nil
}

// resolve returns the scroll offset at which p is reached. start is the
// already-resolved start offset for relative positions.
func (p Position) resolve(box Rect, viewport Size, start, maxScroll float64) float64 {
	var v float64
	if p.Relative {
		v = start + p.Delta.Of(viewport.Height)
	} else {
		v = box.Y + p.Trigger.Of(box.Height) - p.Viewport.Of(viewport.Height)
	}
	if p.Clamp {
		v = max(0, min(v, maxScroll))
	}
	return v
}

type scrollZone uint8

const (
	zoneBefore scrollZone = iota
	zoneInside
	zoneAfter
)

// Trigger maps the page scroll position onto a timeline progress.
type Trigger struct {
	// Start and End are position strings; defaults "top bottom" and
	// "bottom top".
	Start, End string
	// Scrub is how many seconds the shown progress takes to catch up with the
	// scroll position. Zero follows the scroll exactly.
	Scrub float32
	// Pin holds the section in place between start and end.
	Pin bool

	startScroll, endScroll float64

	shown    float64
	target   float64
	catchUp  *gween.Tween
	zone     scrollZone
	resolved bool
}

// Resolve computes the start and end scroll offsets for a trigger box in page
// coordinates. maxScroll bounds clamp() positions.
func (tr *Trigger) Resolve(box Rect, viewport Size, maxScroll float64) error {
	startSrc, endSrc := tr.Start, tr.End
	if startSrc == "" {
		startSrc = "top bottom"
	}
	if endSrc == "" {
		endSrc = "bottom top"
	}
	start, err := ParsePosition(startSrc)
	if err != nil {
		return fmt.Errorf("trigger start: %w", err)
	}
	if start.Relative {
		return fmt.Errorf("trigger start %q: relative positions are only valid for end", startSrc)
	}
	end, err := ParsePosition(endSrc)
	if err != nil {
		return fmt.Errorf("trigger end: %w", err)
	}

	tr.startScroll = start.resolve(box, viewport, 0, maxScroll)
	tr.endScroll = end.resolve(box, viewport, tr.startScroll, maxScroll)
	if !isFinite(tr.startScroll) || !isFinite(tr.endScroll) {
		return fmt.Errorf("trigger %q/%q: non-finite scroll range for box %v", startSrc, endSrc, box)
	}
	if tr.endScroll < tr.startScroll {
		tr.endScroll = tr.startScroll
	}
	tr.resolved = true
	return nil
}

// Resolved reports whether Resolve has succeeded at least once.
func (tr *Trigger) Resolved() bool {
	return tr.resolved
}

// Range returns the resolved start and end scroll offsets.
func (tr *Trigger) Range() (start, end float64) {
	return tr.startScroll, tr.endScroll
}

// PinSpacing is the extra page height a pinned trigger adds below its section.
func (tr *Trigger) PinSpacing() float64 {
	if !tr.Pin {
		return 0
	}
	return tr.endScroll - tr.startScroll
}

// PinOffset returns how far a pinned section is pushed down at scroll, so
// that it appears fixed between start and end.
func (tr *Trigger) PinOffset(scroll float64) float64 {
	if !tr.Pin {
		return 0
	}
	return max(0, min(scroll, tr.endScroll)-tr.startScroll)
}

// ProgressAt returns the exact progress for a scroll offset, clamped to [0, 1].
func (tr *Trigger) ProgressAt(scroll float64) float64 {
	span := tr.endScroll - tr.startScroll
	if span <= 0 {
		if scroll >= tr.startScroll {
			return 1
		}
		return 0
	}
	return max(0, min((scroll-tr.startScroll)/span, 1))
}

// Progress returns the progress currently shown, including scrub lag.
func (tr *Trigger) Progress() float64 {
	return tr.shown
}

// Update advances the trigger for a new scroll position and returns the
// shown progress plus any zone crossings since the last call.
func (tr *Trigger) Update(scroll float64, dt float32) (float64, []RevealEventType) {
	target := tr.ProgressAt(scroll)

	switch {
	case tr.Scrub <= 0:
		tr.shown = target
		tr.catchUp = nil
	case target != tr.target || tr.catchUp == nil && tr.shown != target:
		tr.catchUp = gween.New(float32(tr.shown), float32(target), tr.Scrub, ease.OutQuart)
		fallthrough
	default:
		if tr.catchUp != nil {
			v, done := tr.catchUp.Update(dt)
			tr.shown = float64(v)
			if done {
				tr.shown = target
				tr.catchUp = nil
			}
		}
	}
	tr.target = target

	return tr.shown, tr.crossings(scroll)
}

// Reset jumps the shown progress to the exact value for scroll without
// emitting events.
func (tr *Trigger) Reset(scroll float64) {
	tr.target = tr.ProgressAt(scroll)
	tr.shown = tr.target
	tr.catchUp = nil
	tr.zone = tr.zoneAt(scroll)
}

func (tr *Trigger) zoneAt(scroll float64) scrollZone {
	switch {
	case scroll < tr.startScroll:
		return zoneBefore
	case scroll > tr.endScroll:
		return zoneAfter
	default:
		return zoneInside
	}
}

func (tr *Trigger) crossings(scroll float64) []RevealEventType {
	prev, cur := tr.zone, tr.zoneAt(scroll)
	tr.zone = cur
	if prev == cur {
		return nil
	}
	switch {
	case prev == zoneBefore && cur == zoneInside:
		return []RevealEventType{EventEnter}
	case prev == zoneBefore && cur == zoneAfter:
		return []RevealEventType{EventEnter, EventLeave}
	case prev == zoneInside && cur == zoneAfter:
		return []RevealEventType{EventLeave}
	case prev == zoneAfter && cur == zoneInside:
		return []RevealEventType{EventEnterBack}
	case prev == zoneAfter && cur == zoneBefore:
		return []RevealEventType{EventEnterBack, EventLeaveBack}
	case prev == zoneInside && cur == zoneBefore:
		return []RevealEventType{EventLeaveBack}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
