package gridreveal

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for centers, offsets and projected corners.
type Vec2 struct {
	X, Y float64
}

// Size is the width and height of a viewport in pixels.
type Size struct {
	Width, Height float64
}

// Center returns the midpoint of the viewport.
func (s Size) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. It describes an element box: X
// and Y are the left and top offsets.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default cell tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// --- White pixel singleton (pages are single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// for cells without an image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// ElementKind distinguishes what an Element represents inside a section.
type ElementKind uint8

const (
	KindImage     ElementKind = iota // a grid image cell
	KindImageInner                   // the inner layer of a grid image (curtain effects)
	KindText                         // a caption or title block
	KindContainer                    // the grid itself
)

// RevealEventType identifies a change in a section's scroll state.
type RevealEventType uint8

const (
	EventEnter    RevealEventType = iota // scroll crossed the trigger start going down
	EventLeave                           // scroll crossed the trigger end going down
	EventEnterBack                       // scroll crossed the trigger end going up
	EventLeaveBack                       // scroll crossed the trigger start going up
	EventComplete                        // the timeline reached progress 1
)

func (t RevealEventType) String() string {
	switch t {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventEnterBack:
		return "enterBack"
	case EventLeaveBack:
		return "leaveBack"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}
