package gridreveal

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS draws an FPS and scroll readout in the top-left corner.
	ShowFPS bool
	// Debug enables page debug logging.
	Debug bool
}

// game adapts a Page to ebiten.Game and resizes it with the window.
type game struct {
	page *Page
	w, h int
	err  error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	return g.page.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		if err := g.page.Resize(Size{float64(g.w), float64(g.h)}); err != nil {
			g.err = err
		}
	}
	return g.w, g.h
}

// Run opens a window and runs page until the window closes or Update fails.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "gridreveal"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	page.SetDebugMode(cfg.Debug)
	page.SetShowFPS(cfg.ShowFPS)
	return ebiten.RunGame(&game{page: page})
}
