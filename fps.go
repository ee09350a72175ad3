package gridreveal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS, TPS and scroll offset in the top-left
// corner. The text is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float32
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 is enough for "FPS: 60.0\nTPS: 60.0\nScroll: 12345"
	return &fpsOverlay{img: ebiten.NewImage(140, 48), elapsed: 0.5}
}

func (o *fpsOverlay) update(dt float32, scroll float64) {
	o.elapsed += dt
	if o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nScroll: %.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), scroll))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

// SetShowFPS toggles the FPS overlay.
func (p *Page) SetShowFPS(enabled bool) {
	if !enabled {
		p.fps = nil
		return
	}
	if p.fps == nil {
		p.fps = newFPSOverlay()
	}
}
