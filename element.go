package gridreveal

import "github.com/hajimehoshi/ebiten/v2"

// elementIDCounter is a plain counter (no atomic; pages are single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is one animated box inside a Section: a grid image, the inner layer
// of an image, a caption, or the grid container itself.
type Element struct {
	ID   uint32
	Name string
	Kind ElementKind

	// Box is the laid-out rectangle relative to the section's top-left.
	Box Rect

	// State is the keyframe currently applied on top of Box.
	State State

	// Image is drawn stretched to Box. Nil draws a solid Color rectangle.
	Image *ebiten.Image
	Color Color

	// ClipOnly elements are not drawn; they only move and clip children.
	ClipOnly bool

	// Parent is the element this one is clipped to and moves with, if any.
	Parent *Element

	// Index is the element's position among its siblings of the same kind.
	Index int
}

// NewElement creates an element at its resting state.
func NewElement(name string, kind ElementKind, box Rect) *Element {
	return &Element{
		ID:    nextElementID(),
		Name:  name,
		Kind:  kind,
		Box:   box,
		State: Identity(),
		Color: ColorWhite,
	}
}

// ResetState returns the element to Identity().
func (e *Element) ResetState() {
	e.State = Identity()
}

// GridLayout lays out rows x cols cells of equal size inside area, separated
// by gap pixels, row-major.
func GridLayout(area Rect, rows, cols int, gap float64) []Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cw := (area.Width - gap*float64(cols-1)) / float64(cols)
	ch := (area.Height - gap*float64(rows-1)) / float64(rows)
	out := make([]Rect, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Rect{
				X:      area.X + float64(c)*(cw+gap),
				Y:      area.Y + float64(r)*(ch+gap),
				Width:  cw,
				Height: ch,
			})
		}
	}
	return out
}
