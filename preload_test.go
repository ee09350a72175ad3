package gridreveal

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
)

func encodedPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodedGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPreload(t *testing.T) {
	fsys := fstest.MapFS{
		"img/b.png":  {Data: encodedPNG(t, 4, 2)},
		"img/a.png":  {Data: encodedPNG(t, 3, 3)},
		"img/c.GIF":  {Data: encodedGIF(t, 5, 1)},
		"img/readme": {Data: []byte("not an image")},
	}
	a, err := Preload(context.Background(), fsys, "img/*.png", "img/*.GIF", "img/a.png")
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	want := []string{"img/a.png", "img/b.png", "img/c.GIF"}
	if a.Len() != len(want) {
		t.Fatalf("Len = %d, want %d (%v)", a.Len(), len(want), a.Paths())
	}
	for i, p := range a.Paths() {
		if p != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, p, want[i])
		}
	}
	img, ok := a.Image("img/b.png")
	if !ok || img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Errorf("img/b.png = %v, %v", img, ok)
	}
	if img, ok := a.Image("img/c.GIF"); !ok || img.Bounds().Dx() != 5 {
		t.Errorf("img/c.GIF not decoded")
	}
	if _, ok := a.Image("img/readme"); ok {
		t.Error("unmatched file was loaded")
	}
	if a.Ebiten("img/missing.png") != nil {
		t.Error("Ebiten returned an image for a missing path")
	}
}

func TestPreloadNoMatches(t *testing.T) {
	a, err := Preload(context.Background(), fstest.MapFS{}, "*.png")
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
}

func TestPreloadBadPattern(t *testing.T) {
	if _, err := Preload(context.Background(), fstest.MapFS{}, "[unterminated"); err == nil {
		t.Error("expected error for a malformed pattern")
	}
}

func TestPreloadCorruptFile(t *testing.T) {
	fsys := fstest.MapFS{
		"good.png": {Data: encodedPNG(t, 1, 1)},
		"bad.png":  {Data: []byte("definitely not a png")},
	}
	_, err := Preload(context.Background(), fsys, "*.png")
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if !strings.Contains(err.Error(), "bad.png") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestPreloadUnsupportedFormat(t *testing.T) {
	fsys := fstest.MapFS{"notes.txt": {Data: []byte("hi")}}
	_, err := Preload(context.Background(), fsys, "*")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("err = %v, want unsupported format", err)
	}
}

func TestPreloadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fsys := fstest.MapFS{"a.png": {Data: encodedPNG(t, 1, 1)}}
	_, err := Preload(ctx, fsys, "*.png")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
