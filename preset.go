package gridreveal

import "fmt"

// RevealPreset derives a full start keyframe from InitialTransform. Each
// output channel may use its own parameters, so one grid can take its planar
// offset from one distance and its depth from another.
type RevealPreset struct {
	Name string

	// Per-channel parameters. X and Y take the planar offsets, Z the depth,
	// Rotate both rotations.
	X, Y, Z, Rotate TransformParams

	// RotateXScale and RotateYScale multiply the computed rotations.
	RotateXScale, RotateYScale float64

	// StartScale and StartAlpha are applied to every element.
	StartScale, StartAlpha float64

	// Perspective is the viewer distance in pixels used when drawing the grid.
	Perspective float64
}

// UniformPreset returns a preset that uses p for every channel.
func UniformPreset(name string, p TransformParams) RevealPreset {
	return RevealPreset{
		Name:         name,
		X:            p,
		Y:            p,
		Z:            p,
		Rotate:       p,
		RotateXScale: 1,
		RotateYScale: 1,
		StartScale:   1,
		StartAlpha:   1,
		Perspective:  1000,
	}
}

// PresetDepth pushes cells outward and towards the viewer, rotating them
// away from the center. Rotation around X is halved.
var PresetDepth = func() RevealPreset {
	p := UniformPreset("depth", DefaultTransformParams())
	p.RotateXScale = 0.5
	p.StartScale = 0.7
	p.StartAlpha = 0
	return p
}()

// PresetDepthInverted starts cells far behind the viewport with a wider
// planar spread and rotations reversed.
var PresetDepthInverted = func() RevealPreset {
	p := UniformPreset("depth-inverted", DefaultTransformParams())
	p.X.OffsetDistance = 900
	p.Y.OffsetDistance = 600
	p.Z.MaxZTranslation = -3000
	p.Rotate = TransformParams{OffsetDistance: 250, MaxRotation: -160, MaxZTranslation: -3000}
	p.StartScale = 0.4
	p.StartAlpha = 0
	p.Perspective = 1200
	return p
}()

// Start returns the keyframe an element at box should start from.
func (p RevealPreset) Start(box Rect, viewport Size) (State, error) {
	channels := [...]struct {
		name   string
		params TransformParams
	}{
		{"x", p.X}, {"y", p.Y}, {"z", p.Z}, {"rotate", p.Rotate},
	}
	var out [len(channels)]Transform3D
	for i, c := range channels {
		t, err := InitialTransform(box, viewport, c.params)
		if err != nil {
			return State{}, fmt.Errorf("preset %s: %s channel: %w", p.Name, c.name, err)
		}
		out[i] = t
	}

	s := Identity()
	s.X = out[0].X
	s.Y = out[1].Y
	s.Z = out[2].Z
	s.RotateX = out[3].RotateX * p.RotateXScale
	s.RotateY = out[3].RotateY * p.RotateYScale
	s.ScaleX, s.ScaleY = p.StartScale, p.StartScale
	s.Alpha = p.StartAlpha
	return s, nil
}
