package gridreveal

import (
	"errors"
	"strings"
	"testing"
)

func TestPresetDepthStart(t *testing.T) {
	s, err := PresetDepth.Start(boxAt(750, 200), vp1000x800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const eps = 0.5
	if !approxEqual(s.X, 195.2, eps) || !approxEqual(s.Y, -156.2, eps) || !approxEqual(s.Z, 1000, eps) {
		t.Errorf("translation = (%.2f, %.2f, %.2f)", s.X, s.Y, s.Z)
	}
	// Rotation around X is halved.
	if !approxEqual(s.RotateX, -46.85, eps) || !approxEqual(s.RotateY, -117.1, eps) {
		t.Errorf("rotation = (%.2f, %.2f)", s.RotateX, s.RotateY)
	}
	if s.ScaleX != 0.7 || s.ScaleY != 0.7 || s.Alpha != 0 {
		t.Errorf("scale/alpha = %v/%v/%v, want 0.7/0.7/0", s.ScaleX, s.ScaleY, s.Alpha)
	}
}

func TestPresetDepthInvertedChannels(t *testing.T) {
	s, err := PresetDepthInverted.Start(boxAt(750, 200), vp1000x800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	const eps = 0.5
	// X from a 900 px offset, Y from 600 px, depth behind the viewport.
	if !approxEqual(s.X, 702.8, eps) {
		t.Errorf("X = %.2f, want 702.8", s.X)
	}
	if !approxEqual(s.Y, -374.8, eps) {
		t.Errorf("Y = %.2f, want -374.8", s.Y)
	}
	if !approxEqual(s.Z, -1500, eps) {
		t.Errorf("Z = %.2f, want -1500", s.Z)
	}
	// Negative MaxRotation turns the cell the other way.
	if !approxEqual(s.RotateX, 49.98, eps) || !approxEqual(s.RotateY, 62.47, eps) {
		t.Errorf("rotation = (%.2f, %.2f), want (49.98, 62.47)", s.RotateX, s.RotateY)
	}
	if s.ScaleX != 0.4 || s.Alpha != 0 {
		t.Errorf("scale/alpha = %v/%v, want 0.4/0", s.ScaleX, s.Alpha)
	}
}

func TestPresetCenterElementOnlyScales(t *testing.T) {
	s, err := PresetDepth.Start(boxAt(500, 400), vp1000x800)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.X != 0 || s.Y != 0 || s.Z != 0 || s.RotateX != 0 || s.RotateY != 0 {
		t.Errorf("center start = %+v, want no offset or rotation", s)
	}
	if s.ScaleX != 0.7 {
		t.Errorf("ScaleX = %v, want 0.7", s.ScaleX)
	}
}

func TestUniformPresetMatchesInitialTransform(t *testing.T) {
	p := DefaultTransformParams()
	box := boxAt(120, 700)
	s, err := UniformPreset("plain", p).Start(box, vp1000x800)
	if err != nil {
		t.Fatal(err)
	}
	tr := MustInitialTransform(box, vp1000x800, p)
	want := Identity().WithTransform(tr)
	if s != want {
		t.Errorf("Start = %+v, want %+v", s, want)
	}
}

func TestPresetChannelError(t *testing.T) {
	p := UniformPreset("broken", DefaultTransformParams())
	p.Y.OffsetDistance = 0
	_, err := p.Start(boxAt(750, 200), vp1000x800)
	if !errors.Is(err, ErrZeroOffsetDistance) {
		t.Fatalf("err = %v, want ErrZeroOffsetDistance", err)
	}
	if !strings.Contains(err.Error(), "preset broken: y channel") {
		t.Errorf("err = %q, want channel context", err)
	}
}
