package gridreveal

import "math"

// Vec3 is a point in view space: X right, Y down, Z towards the viewer.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) rotateX(sin, cos float64) Vec3 {
	return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

func (v Vec3) rotateY(sin, cos float64) Vec3 {
	return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}

func (v Vec3) rotateZ(sin, cos float64) Vec3 {
	return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// Quad is an element box after its State and the grid perspective have been
// applied. Corners run top-left, top-right, bottom-right, bottom-left.
type Quad struct {
	Corners [4]Vec2
	// Depth is the view-space Z of the quad center; larger is nearer.
	Depth float64
	// Visible is false when any corner falls behind the viewer.
	Visible bool
}

// Bounds returns the axis-aligned bounding rect of the corners.
func (q Quad) Bounds() Rect {
	minX, minY := q.Corners[0].X, q.Corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range q.Corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// projectQuad places box in screen space according to s, viewed from
// perspective pixels in front of vanish. A perspective of 0 draws without
// foreshortening.
//
// Composition order, applied to each corner relative to the origin:
//
//	Scale -> Skew -> RotateX -> RotateY -> Rotate -> Translate(origin + offset)
func projectQuad(box Rect, s State, perspective float64, vanish Vec2) Quad {
	ox := box.X + s.OriginX*box.Width
	oy := box.Y + s.OriginY*box.Height

	tx := s.X + s.XPercent/100*box.Width
	ty := s.Y + s.YPercent/100*box.Height

	var tanSkewX, tanSkewY float64
	if s.SkewX != 0 {
		tanSkewX = math.Tan(deg2rad(s.SkewX))
	}
	if s.SkewY != 0 {
		tanSkewY = math.Tan(deg2rad(s.SkewY))
	}
	sinX, cosX := math.Sincos(deg2rad(s.RotateX))
	sinY, cosY := math.Sincos(deg2rad(s.RotateY))
	sinZ, cosZ := math.Sincos(deg2rad(s.Rotation))

	local := [4]Vec2{
		{box.X - ox, box.Y - oy},
		{box.X + box.Width - ox, box.Y - oy},
		{box.X + box.Width - ox, box.Y + box.Height - oy},
		{box.X - ox, box.Y + box.Height - oy},
	}

	q := Quad{Visible: true}
	var depth float64
	for i, p := range local {
		x := p.X * s.ScaleX
		y := p.Y * s.ScaleY
		x, y = x+tanSkewX*y, y+tanSkewY*x

		v := Vec3{x, y, 0}.rotateX(sinX, cosX).rotateY(sinY, cosY).rotateZ(sinZ, cosZ)
		v.X += ox + tx
		v.Y += oy + ty
		v.Z += s.Z
		depth += v.Z

		if perspective > 0 {
			d := perspective - v.Z
			if d <= 0 {
				q.Visible = false
				d = math.SmallestNonzeroFloat64
			}
			f := perspective / d
			v.X = vanish.X + (v.X-vanish.X)*f
			v.Y = vanish.Y + (v.Y-vanish.Y)*f
		}
		q.Corners[i] = Vec2{v.X, v.Y}
	}
	q.Depth = depth / 4
	return q
}
