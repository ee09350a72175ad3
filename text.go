package gridreveal

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CaptionFont wraps Ebitengine's text/v2 for rendering section captions from
// TrueType data.
type CaptionFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadCaptionFont loads a TrueType font from raw TTF/OTF data at the given
// size.
func LoadCaptionFont(ttfData []byte, size float64) (*CaptionFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("gridreveal: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &CaptionFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *CaptionFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *CaptionFont) LineHeight() float64 {
	return f.lh
}

// Render draws s into a new image sized to fit it. The image can be assigned
// to a text element's Image; it is stretched to the element box when drawn.
func (f *CaptionFont) Render(s string, c Color) *ebiten.Image {
	w, h := f.MeasureString(s)
	img := ebiten.NewImage(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))
	op := &text.DrawOptions{}
	op.LineSpacing = f.lh
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(img, s, f.face, op)
	return img
}

// CaptionBox returns a box of the rendered size of s with its top-left at
// (x, y), for laying out text elements.
func (f *CaptionFont) CaptionBox(s string, x, y float64) Rect {
	w, h := f.MeasureString(s)
	return Rect{X: x, Y: y, Width: w, Height: h}
}
