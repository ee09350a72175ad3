package gridreveal

import "testing"

func cornersOf(r Rect) [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

func quadApprox(t *testing.T, got Quad, want [4]Vec2) {
	t.Helper()
	for i := range want {
		if !approxEqual(got.Corners[i].X, want[i].X, 1e-6) || !approxEqual(got.Corners[i].Y, want[i].Y, 1e-6) {
			t.Errorf("corner %d = %v, want %v", i, got.Corners[i], want[i])
		}
	}
}

func TestProjectQuadIdentity(t *testing.T) {
	box := Rect{X: 40, Y: 60, Width: 200, Height: 100}
	for _, persp := range []float64{0, 1000} {
		q := projectQuad(box, Identity(), persp, Vec2{500, 400})
		if !q.Visible {
			t.Fatalf("perspective %v: identity quad not visible", persp)
		}
		quadApprox(t, q, cornersOf(box))
		if q.Depth != 0 {
			t.Errorf("Depth = %v, want 0", q.Depth)
		}
	}
}

func TestProjectQuadTranslate(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	s := Identity()
	s.X = 10
	s.YPercent = -100
	q := projectQuad(box, s, 0, Vec2{})
	quadApprox(t, q, cornersOf(box.Offset(10, -50)))
}

func TestProjectQuadScaleAroundOrigin(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	s := Identity().WithScale(0.5)
	q := projectQuad(box, s, 0, Vec2{})
	quadApprox(t, q, cornersOf(Rect{X: 25, Y: 25, Width: 50, Height: 50}))

	s.OriginX, s.OriginY = 0, 0
	q = projectQuad(box, s, 0, Vec2{})
	quadApprox(t, q, cornersOf(Rect{X: 0, Y: 0, Width: 50, Height: 50}))
}

func TestProjectQuadRotation(t *testing.T) {
	box := Rect{X: -50, Y: -10, Width: 100, Height: 20}
	s := Identity()
	s.Rotation = 90
	q := projectQuad(box, s, 0, Vec2{})
	b := q.Bounds()
	if !approxEqual(b.Width, 20, 1e-6) || !approxEqual(b.Height, 100, 1e-6) {
		t.Errorf("rotated bounds = %v, want 20x100", b)
	}
}

func TestProjectQuadPerspective(t *testing.T) {
	box := Rect{X: 400, Y: 300, Width: 200, Height: 200}
	vanish := box.Center()
	s := Identity()
	s.Z = 500 // halfway to a viewer 1000 px away doubles the size
	q := projectQuad(box, s, 1000, vanish)
	if !q.Visible {
		t.Fatal("quad in front of the viewer should be visible")
	}
	b := q.Bounds()
	if !approxEqual(b.Width, 400, 1e-6) || !approxEqual(b.Height, 400, 1e-6) {
		t.Errorf("bounds = %v, want 400x400", b)
	}
	if q.Depth != 500 {
		t.Errorf("Depth = %v, want 500", q.Depth)
	}

	s.Z = -1000
	q = projectQuad(box, s, 1000, vanish)
	b = q.Bounds()
	if !approxEqual(b.Width, 100, 1e-6) {
		t.Errorf("receding width = %v, want 100", b.Width)
	}
}

func TestProjectQuadBehindViewer(t *testing.T) {
	s := Identity()
	s.Z = 1000
	q := projectQuad(Rect{Width: 10, Height: 10}, s, 1000, Vec2{})
	if q.Visible {
		t.Error("quad at the viewer should not be visible")
	}
}

func TestProjectQuadRotateYFlattens(t *testing.T) {
	box := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	s := Identity()
	s.RotateY = 90
	q := projectQuad(box, s, 0, Vec2{})
	if b := q.Bounds(); !approxEqual(b.Width, 0, 1e-6) {
		t.Errorf("edge-on width = %v, want 0", b.Width)
	}
}

func TestStateAffineIdentity(t *testing.T) {
	m := stateAffine(Rect{X: 10, Y: 20, Width: 30, Height: 40}, Identity())
	for i, v := range m {
		if !approxEqual(v, identityAffine[i], 1e-9) {
			t.Fatalf("stateAffine(identity) = %v, want %v", m, identityAffine)
		}
	}
}

func TestStateAffineMatchesFlatProjection(t *testing.T) {
	box := Rect{X: 10, Y: 20, Width: 120, Height: 80}
	s := Identity()
	s.X, s.YPercent = 15, 25
	s.ScaleX, s.ScaleY = 1.05, 0.9
	s.SkewX = 15
	s.Rotation = -10
	s.OriginX, s.OriginY = 1, -4.5

	q := projectQuad(box, s, 0, Vec2{})
	m := stateAffine(box, s)
	for i, c := range cornersOf(box) {
		x, y := transformPoint(m, c.X, c.Y)
		if !approxEqual(x, q.Corners[i].X, 1e-6) || !approxEqual(y, q.Corners[i].Y, 1e-6) {
			t.Errorf("corner %d: affine (%v,%v), projection %v", i, x, y, q.Corners[i])
		}
	}
}

func TestMultiplyAffine(t *testing.T) {
	translate := [6]float64{1, 0, 0, 1, 10, 20}
	scale := [6]float64{2, 0, 0, 2, 0, 0}
	m := multiplyAffine(translate, scale)
	x, y := transformPoint(m, 1, 1)
	if x != 12 || y != 22 {
		t.Errorf("translate*scale (1,1) = (%v,%v), want (12,22)", x, y)
	}
}

func TestQuadBounds(t *testing.T) {
	q := Quad{Corners: [4]Vec2{{5, 1}, {-3, 2}, {4, 9}, {0, -1}}}
	want := Rect{X: -3, Y: -1, Width: 8, Height: 10}
	if got := q.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
