package gridreveal

import (
	"fmt"
	"math/rand/v2"
)

// BuildContext carries the live values a Sequence reads when it builds its
// timeline. Builders run again whenever the viewport changes.
type BuildContext struct {
	Viewport Size
	Rand     *rand.Rand
}

// Sequence describes one scroll-driven reveal: how it is triggered and how
// its timeline is assembled from a section's elements.
type Sequence struct {
	Name string
	// Trigger is copied into each section using the sequence.
	Trigger Trigger
	// Perspective is the viewer distance for 3D transforms; 0 is flat.
	Perspective float64
	Build       func(s *Section, ctx BuildContext) (*Timeline, error)
}

// Section is a block of the page: a grid container with image cells, the
// inner layers of those cells, and captions. Element boxes are relative to
// the section's top-left corner.
type Section struct {
	Name     string
	Sequence Sequence

	// Height is the laid-out height, excluding pin spacing.
	Height float64

	Grid   *Element
	Items  []*Element
	Inners []*Element
	Texts  []*Element

	// Rows and Cols describe the grid shape for grid staggers.
	Rows, Cols int

	// LayoutFunc, when set, recomputes Height and every element box for a
	// new viewport before the timeline is rebuilt.
	LayoutFunc func(s *Section, viewport Size)

	Trigger  *Trigger
	Timeline *Timeline

	pageY     float64
	completed bool
}

// NewSection creates a section of the given height around a grid box. Items
// are created from cells in order; captions from texts.
func NewSection(name string, seq Sequence, height float64, grid Rect, cells, texts []Rect) *Section {
	tr := seq.Trigger
	s := &Section{
		Name:     name,
		Sequence: seq,
		Height:   height,
		Grid:     NewElement(name+"/grid", KindContainer, grid),
		Trigger:  &tr,
	}
	s.Grid.Color = Color{}
	for i, c := range cells {
		el := NewElement(fmt.Sprintf("%s/img%d", name, i), KindImage, c)
		el.Parent = s.Grid
		el.Index = i
		s.Items = append(s.Items, el)
	}
	for i, c := range texts {
		el := NewElement(fmt.Sprintf("%s/text%d", name, i), KindText, c)
		el.Parent = s.Grid
		el.Index = i
		s.Texts = append(s.Texts, el)
	}
	return s
}

// AddInners gives every item an inner layer covering the same box. The inner
// moves with its item and is clipped to it.
func (s *Section) AddInners() {
	s.Inners = s.Inners[:0]
	for i, it := range s.Items {
		el := NewElement(fmt.Sprintf("%s/inner%d", s.Name, i), KindImageInner, it.Box)
		el.Parent = it
		el.Index = i
		el.Image = it.Image
		el.Color = it.Color
		it.ClipOnly = true
		s.Inners = append(s.Inners, el)
	}
}

// Elements returns every element in draw order: grid, items, inners, texts.
func (s *Section) Elements() []*Element {
	out := make([]*Element, 0, 1+len(s.Items)+len(s.Inners)+len(s.Texts))
	out = append(out, s.Grid)
	out = append(out, s.Items...)
	out = append(out, s.Inners...)
	out = append(out, s.Texts...)
	return out
}

// PageBox returns the grid box in page coordinates, which is what the
// trigger measures.
func (s *Section) PageBox() Rect {
	return s.Grid.Box.Offset(0, s.pageY)
}

// PageY returns the section's top in page coordinates.
func (s *Section) PageY() float64 {
	return s.pageY
}

// Rebuild resets every element and assembles a fresh timeline for ctx.
func (s *Section) Rebuild(ctx BuildContext) error {
	for _, el := range s.Elements() {
		el.ResetState()
	}
	if s.Sequence.Build == nil {
		s.Timeline = NewTimeline(nil)
		return nil
	}
	tl, err := s.Sequence.Build(s, ctx)
	if err != nil {
		return fmt.Errorf("section %s: build %s: %w", s.Name, s.Sequence.Name, err)
	}
	s.Timeline = tl
	return nil
}

// ScreenY returns the section's top on screen for a scroll offset, including
// pinning.
func (s *Section) ScreenY(scroll float64) float64 {
	return s.pageY - scroll + s.Trigger.PinOffset(scroll)
}
