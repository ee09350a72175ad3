package gridreveal

import (
	"errors"
	"fmt"
	"math"
)

// Default values for TransformParams.
const (
	DefaultOffsetDistance  = 250.0
	DefaultMaxRotation     = 300.0
	DefaultMaxZTranslation = 2000.0
)

var (
	// ErrZeroOffsetDistance is returned when OffsetDistance is zero. The
	// rotation terms divide by it.
	ErrZeroOffsetDistance = errors.New("offset distance must be non-zero")

	// ErrNonFiniteParam is returned when a parameter is NaN or infinite.
	ErrNonFiniteParam = errors.New("parameter must be finite")
)

// ParamError reports an invalid TransformParams field.
type ParamError struct {
	Field string
	Value float64
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("gridreveal: %s = %v: %v", e.Field, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// TransformParams tunes InitialTransform. Negative values are valid and flip
// the direction of the corresponding output.
type TransformParams struct {
	// OffsetDistance is the planar displacement, in pixels, split between the
	// X and Y axes by the angle to the viewport center. Must be non-zero.
	OffsetDistance float64
	// MaxRotation is the rotation in degrees applied to an element sitting in
	// a viewport corner.
	MaxRotation float64
	// MaxZTranslation is the depth displacement in pixels applied to an
	// element sitting in a viewport corner.
	MaxZTranslation float64
}

// DefaultTransformParams returns {250, 300, 2000}.
func DefaultTransformParams() TransformParams {
	return TransformParams{
		OffsetDistance:  DefaultOffsetDistance,
		MaxRotation:     DefaultMaxRotation,
		MaxZTranslation: DefaultMaxZTranslation,
	}
}

// Validate checks that every field is finite and OffsetDistance is non-zero.
func (p TransformParams) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"OffsetDistance", p.OffsetDistance},
		{"MaxRotation", p.MaxRotation},
		{"MaxZTranslation", p.MaxZTranslation},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParamError{Field: f.name, Value: f.v, Err: ErrNonFiniteParam}
		}
	}
	if p.OffsetDistance == 0 {
		return &ParamError{Field: "OffsetDistance", Value: 0, Err: ErrZeroOffsetDistance}
	}
	return nil
}

// Transform3D is the start offset of a reveal: translation on three axes and
// rotation in degrees around X and Y.
type Transform3D struct {
	X, Y, Z          float64
	RotateX, RotateY float64
}

// IsZero reports whether t is the identity transform.
func (t Transform3D) IsZero() bool {
	return t == Transform3D{}
}

// InitialTransform computes where an element should start before revealing
// into place. The element is pushed away from the viewport center and
// rotated towards it, both proportionally to how far its center sits from the
// viewport center (0 at the center, 1 at a corner). An element centered
// exactly on the viewport gets the identity transform.
//
// box and viewport are plain values read by the caller at call time; nothing
// is cached between calls.
func InitialTransform(box Rect, viewport Size, p TransformParams) (Transform3D, error) {
	if err := p.Validate(); err != nil {
		return Transform3D{}, err
	}

	vc := viewport.Center()
	ec := box.Center()
	dx := vc.X - ec.X
	dy := vc.Y - ec.Y
	if dx == 0 && dy == 0 {
		// No direction to push along.
		return Transform3D{}, nil
	}

	angle := math.Atan2(math.Abs(dy), math.Abs(dx))
	sin, cos := math.Sincos(angle)
	translateX := math.Abs(cos * p.OffsetDistance)
	translateY := math.Abs(sin * p.OffsetDistance)

	maxDistance := math.Hypot(vc.X, vc.Y)
	var distanceFactor float64
	if maxDistance != 0 {
		distanceFactor = math.Hypot(dx, dy) / maxDistance
	}

	left := ec.X < vc.X
	above := ec.Y < vc.Y

	rotSignX, rotSignY := -1.0, 1.0
	if left {
		rotSignX = 1
	}
	if above {
		rotSignY = -1
	}

	x, y := translateX, translateY
	if left {
		x = -x
	}
	if above {
		y = -y
	}

	return Transform3D{
		X:       x,
		Y:       y,
		Z:       p.MaxZTranslation * distanceFactor,
		RotateX: rotSignY * (translateY / p.OffsetDistance) * p.MaxRotation * distanceFactor,
		RotateY: rotSignX * (translateX / p.OffsetDistance) * p.MaxRotation * distanceFactor,
	}, nil
}

// MustInitialTransform is like InitialTransform but panics on invalid params.
func MustInitialTransform(box Rect, viewport Size, p TransformParams) Transform3D {
	t, err := InitialTransform(box, viewport, p)
	if err != nil {
		panic(err)
	}
	return t
}
