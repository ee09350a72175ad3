package gridreveal

import (
	"image"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityAffine is the identity 2D affine matrix [a, b, c, d, tx, ty].
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// stateAffine returns the flat part of s as a 2D affine matrix in the same
// coordinate space as box. Depth and 3D rotations are ignored; parents only
// pass their planar motion on to children.
//
// Composition order:
//
//	Translate(-origin) -> Scale -> Skew -> Rotate -> Translate(origin + offset)
func stateAffine(box Rect, s State) [6]float64 {
	sx, sy := s.ScaleX, s.ScaleY
	sin, cos := math.Sincos(deg2rad(s.Rotation))

	var tanSkewX, tanSkewY float64
	if s.SkewX != 0 {
		tanSkewX = math.Tan(deg2rad(s.SkewX))
	}
	if s.SkewY != 0 {
		tanSkewY = math.Tan(deg2rad(s.SkewY))
	}

	// After Scale * Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := box.X + s.OriginX*box.Width
	py := box.Y + s.OriginY*box.Height
	preTx := -px*a - c*py
	preTy := -b*px - py*d

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	tx := px + s.X + s.XPercent/100*box.Width
	ty := py + s.Y + s.YPercent/100*box.Height
	return [6]float64{ra, rb, rc, rd, rtx + tx, rty + ty}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// parentAffine composes the planar transforms of every ancestor of el.
func parentAffine(el *Element) [6]float64 {
	m := identityAffine
	for p := el.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(stateAffine(p.Box, p.State), m)
	}
	return m
}

// inheritedTint multiplies alpha and brightness down the ancestor chain.
func inheritedTint(el *Element) (alpha, brightness float64) {
	alpha, brightness = el.State.Alpha, el.State.Brightness
	for p := el.Parent; p != nil; p = p.Parent {
		alpha *= p.State.Alpha
		brightness *= p.State.Brightness
	}
	return alpha, brightness
}

// ElementQuad returns where el is drawn, in section coordinates, given the
// section's perspective. The vanishing point is the grid center.
func (s *Section) ElementQuad(el *Element) Quad {
	q := projectQuad(el.Box, el.State, s.Sequence.Perspective, s.Grid.Box.Center())
	if el.Parent == nil {
		return q
	}
	m := parentAffine(el)
	for i, c := range q.Corners {
		x, y := transformPoint(m, c.X, c.Y)
		q.Corners[i] = Vec2{x, y}
	}
	return q
}

type drawItem struct {
	el   *Element
	quad Quad
}

// drawSection renders every element of s with its top at screen y.
func drawSection(screen *ebiten.Image, s *Section, y float64, verts []ebiten.Vertex) []ebiten.Vertex {
	bounds := screen.Bounds()
	screenRect := Rect{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y), Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}

	items := make([]drawItem, 0, len(s.Items)+len(s.Inners)+len(s.Texts)+1)
	for _, el := range s.Elements() {
		q := s.ElementQuad(el)
		for i := range q.Corners {
			q.Corners[i].Y += y
		}
		items = append(items, drawItem{el: el, quad: q})
	}

	// Cells nearer the viewer draw last. Containers stay at the back.
	sort.SliceStable(items, func(i, j int) bool {
		ci := items[i].el.Kind == KindContainer
		cj := items[j].el.Kind == KindContainer
		if ci != cj {
			return ci
		}
		return items[i].quad.Depth < items[j].quad.Depth
	})

	clips := make(map[*Element]Rect, len(s.Inners))
	for _, it := range items {
		if it.el.ClipOnly {
			clips[it.el] = it.quad.Bounds()
		}
	}

	for _, it := range items {
		el := it.el
		if el.ClipOnly || !it.quad.Visible {
			continue
		}
		alpha, brightness := inheritedTint(el)
		if alpha <= 0 || el.Color.A <= 0 {
			continue
		}
		if !it.quad.Bounds().Intersects(screenRect) {
			continue
		}

		target := screen
		if clip, ok := clips[el.Parent]; ok {
			r := image.Rect(int(math.Floor(clip.X)), int(math.Floor(clip.Y)),
				int(math.Ceil(clip.X+clip.Width)), int(math.Ceil(clip.Y+clip.Height)))
			r = r.Intersect(bounds)
			if r.Empty() {
				continue
			}
			target = screen.SubImage(r).(*ebiten.Image)
		}
		verts = drawQuad(target, it.quad, el, alpha, brightness, verts)
	}
	return verts
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// drawQuad draws el's image (or a solid rect) stretched over q.
func drawQuad(target *ebiten.Image, q Quad, el *Element, alpha, brightness float64, verts []ebiten.Vertex) []ebiten.Vertex {
	img := el.Image
	if img == nil {
		img = ensureWhitePixel()
	}
	b := img.Bounds()
	src := [4]Vec2{
		{float64(b.Min.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Max.Y)},
		{float64(b.Min.X), float64(b.Max.Y)},
	}

	r := float32(el.Color.R * brightness)
	g := float32(el.Color.G * brightness)
	bl := float32(el.Color.B * brightness)
	a := float32(el.Color.A * alpha)

	verts = verts[:0]
	for i, c := range q.Corners {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(c.X),
			DstY:   float32(c.Y),
			SrcX:   float32(src[i].X),
			SrcY:   float32(src[i].Y),
			ColorR: r,
			ColorG: g,
			ColorB: bl,
			ColorA: a,
		})
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	op.Filter = ebiten.FilterLinear
	target.DrawTriangles(verts, quadIndices, img, &op)
	return verts
}
