package gridreveal

// Prop is a bitmask of State fields. A Tween only writes the fields in its
// mask, so several tweens can drive different properties of one element.
type Prop uint32

const (
	PropX Prop = 1 << iota
	PropY
	PropZ
	PropXPercent
	PropYPercent
	PropRotateX
	PropRotateY
	PropRotation
	PropScaleX
	PropScaleY
	PropSkewX
	PropSkewY
	PropAlpha
	PropBrightness
	PropOrigin

	PropScale     = PropScaleX | PropScaleY
	PropTranslate = PropX | PropY | PropZ
	PropRotate3D  = PropRotateX | PropRotateY
	PropAll       = PropOrigin<<1 - 1
)

// State is one keyframe of an element. Pixel offsets are relative to the
// element's laid-out box, percentages are of the box size, angles are in
// degrees.
type State struct {
	X, Y, Z            float64
	XPercent, YPercent float64
	RotateX, RotateY   float64
	Rotation           float64
	ScaleX, ScaleY     float64
	SkewX, SkewY       float64
	Alpha              float64
	Brightness         float64
	// OriginX and OriginY place the transform origin as a fraction of the
	// box; (0.5, 0.5) is the center.
	OriginX, OriginY float64
}

// Identity returns the resting keyframe: no offset or rotation, full scale,
// fully opaque, unmodified brightness, centered origin.
func Identity() State {
	return State{
		ScaleX:     1,
		ScaleY:     1,
		Alpha:      1,
		Brightness: 1,
		OriginX:    0.5,
		OriginY:    0.5,
	}
}

// IsIdentity reports whether s equals Identity().
func (s State) IsIdentity() bool {
	return s == Identity()
}

// WithTransform returns s with the translation and 3D rotation of t applied.
func (s State) WithTransform(t Transform3D) State {
	s.X, s.Y, s.Z = t.X, t.Y, t.Z
	s.RotateX, s.RotateY = t.RotateX, t.RotateY
	return s
}

// WithScale returns s with a uniform scale.
func (s State) WithScale(k float64) State {
	s.ScaleX, s.ScaleY = k, k
	return s
}

// Props returns the mask of fields where s differs from Identity(). Used to
// infer what a from/to tween animates.
func (s State) Props() Prop {
	id := Identity()
	var m Prop
	check := func(p Prop, a, b float64) {
		if a != b {
			m |= p
		}
	}
	check(PropX, s.X, id.X)
	check(PropY, s.Y, id.Y)
	check(PropZ, s.Z, id.Z)
	check(PropXPercent, s.XPercent, id.XPercent)
	check(PropYPercent, s.YPercent, id.YPercent)
	check(PropRotateX, s.RotateX, id.RotateX)
	check(PropRotateY, s.RotateY, id.RotateY)
	check(PropRotation, s.Rotation, id.Rotation)
	check(PropScaleX, s.ScaleX, id.ScaleX)
	check(PropScaleY, s.ScaleY, id.ScaleY)
	check(PropSkewX, s.SkewX, id.SkewX)
	check(PropSkewY, s.SkewY, id.SkewY)
	check(PropAlpha, s.Alpha, id.Alpha)
	check(PropBrightness, s.Brightness, id.Brightness)
	if s.OriginX != id.OriginX || s.OriginY != id.OriginY {
		m |= PropOrigin
	}
	return m
}

// lerpState writes a + (b-a)*t into dst for every field in mask. The origin
// is not interpolated; it snaps to the start state's origin.
func lerpState(dst *State, a, b State, t float64, mask Prop) {
	lerp := func(p Prop, field *float64, from, to float64) {
		if mask&p != 0 {
			*field = from + (to-from)*t
		}
	}
	lerp(PropX, &dst.X, a.X, b.X)
	lerp(PropY, &dst.Y, a.Y, b.Y)
	lerp(PropZ, &dst.Z, a.Z, b.Z)
	lerp(PropXPercent, &dst.XPercent, a.XPercent, b.XPercent)
	lerp(PropYPercent, &dst.YPercent, a.YPercent, b.YPercent)
	lerp(PropRotateX, &dst.RotateX, a.RotateX, b.RotateX)
	lerp(PropRotateY, &dst.RotateY, a.RotateY, b.RotateY)
	lerp(PropRotation, &dst.Rotation, a.Rotation, b.Rotation)
	lerp(PropScaleX, &dst.ScaleX, a.ScaleX, b.ScaleX)
	lerp(PropScaleY, &dst.ScaleY, a.ScaleY, b.ScaleY)
	lerp(PropSkewX, &dst.SkewX, a.SkewX, b.SkewX)
	lerp(PropSkewY, &dst.SkewY, a.SkewY, b.SkewY)
	lerp(PropAlpha, &dst.Alpha, a.Alpha, b.Alpha)
	lerp(PropBrightness, &dst.Brightness, a.Brightness, b.Brightness)
	if mask&PropOrigin != 0 {
		dst.OriginX, dst.OriginY = a.OriginX, a.OriginY
	}
}
