package gridreveal

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration. When set on a
// Page, reveal events are forwarded to it.
type EventSink interface {
	EmitEvent(event RevealEvent)
}

// RevealEvent reports a section crossing a trigger boundary or finishing its
// timeline.
type RevealEvent struct {
	Type     RevealEventType
	Section  string
	Progress float64
	Scroll   float64
}

// PageConfig holds page-wide options. Zero values take the defaults noted on
// each field.
type PageConfig struct {
	// Lerp is the smooth scroll factor. Default DefaultLerp.
	Lerp float64
	// Seed drives every random choice made by sequences, so a page always
	// builds the same way. Default 1.
	Seed uint64
	// Background fills the screen before sections are drawn.
	Background Color
	// DisableInput stops the page from reading the wheel and keyboard.
	DisableInput bool
	// ScreenshotDir is where Screenshot writes files. Default "screenshots".
	ScreenshotDir string
	// ScreenshotFormat is "png" (default) or "webp".
	ScreenshotFormat string
}

func (c PageConfig) withDefaults() PageConfig {
	if c.Lerp == 0 {
		c.Lerp = DefaultLerp
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.ScreenshotFormat == "" {
		c.ScreenshotFormat = "png"
	}
	return c
}

// Page stacks sections vertically, scrolls through them and drives each
// section's timeline from its trigger.
type Page struct {
	Config PageConfig

	sections []*Section
	viewport Size
	height   float64
	scroller *SmoothScroller
	sink     EventSink
	debug    bool
	fps      *fpsOverlay

	updateFunc      func() error
	testRunner      *TestRunner
	screenshotQueue []string
	verts           []ebiten.Vertex
	laidOut         bool
}

// NewPage creates an empty page for a viewport.
func NewPage(viewport Size, cfg PageConfig) *Page {
	cfg = cfg.withDefaults()
	sc := NewSmoothScroller()
	sc.Lerp = cfg.Lerp
	return &Page{
		Config:   cfg,
		viewport: viewport,
		scroller: sc,
	}
}

// AddSection appends a section below the existing ones. Call Layout (or
// Resize) afterwards.
func (p *Page) AddSection(s *Section) {
	p.sections = append(p.sections, s)
	p.laidOut = false
}

// Sections returns the page's sections. The returned slice MUST NOT be mutated.
func (p *Page) Sections() []*Section {
	return p.sections
}

// Section finds a section by name.
func (p *Page) Section(name string) *Section {
	for _, s := range p.sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Scroller returns the page's smooth scroller.
func (p *Page) Scroller() *SmoothScroller {
	return p.scroller
}

// Viewport returns the current viewport size.
func (p *Page) Viewport() Size {
	return p.viewport
}

// Height returns the total page height including pin spacing.
func (p *Page) Height() float64 {
	return p.height
}

// SetEventSink sets the optional ECS bridge.
func (p *Page) SetEventSink(sink EventSink) {
	p.sink = sink
}

// SetUpdateFunc registers fn to run at the start of every Update.
func (p *Page) SetUpdateFunc(fn func() error) {
	p.updateFunc = fn
}

// SetDebugMode enables per-frame scroll and progress logging to stderr.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// Resize lays the page out for a new viewport. Element boxes and every
// geometry-dependent start state are recomputed.
func (p *Page) Resize(viewport Size) error {
	p.viewport = viewport
	return p.Layout()
}

// Layout positions sections, rebuilds timelines and resolves triggers. Pinned
// sections add their scroll distance as spacing below them.
func (p *Page) Layout() error {
	rng := rand.New(rand.NewPCG(p.Config.Seed, p.Config.Seed^0x9e3779b97f4a7c15))
	ctx := BuildContext{Viewport: p.viewport, Rand: rng}

	y := 0.0
	for _, s := range p.sections {
		if s.LayoutFunc != nil {
			s.LayoutFunc(s, p.viewport)
		}
		s.pageY = y
		if err := s.Rebuild(ctx); err != nil {
			return err
		}
		if err := s.Trigger.Resolve(s.PageBox(), p.viewport, math.Inf(1)); err != nil {
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
		y += s.Height + s.Trigger.PinSpacing()
	}
	p.height = y

	maxScroll := max(0, p.height-p.viewport.Height)
	for _, s := range p.sections {
		if err := s.Trigger.Resolve(s.PageBox(), p.viewport, maxScroll); err != nil {
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
	}
	p.scroller.SetLimit(maxScroll)

	scroll := p.scroller.Position()
	for _, s := range p.sections {
		s.Trigger.Reset(scroll)
		s.Timeline.SetProgress(s.Trigger.Progress())
		s.completed = s.Timeline.Done()
	}
	p.laidOut = true
	return nil
}

// Update advances scrolling, triggers and timelines by one tick.
func (p *Page) Update() error {
	return p.update(float32(1.0 / float64(ebiten.TPS())))
}

func (p *Page) update(dt float32) error {
	if !p.laidOut {
		if err := p.Layout(); err != nil {
			return err
		}
	}
	if p.updateFunc != nil {
		if err := p.updateFunc(); err != nil {
			return err
		}
	}
	if p.testRunner != nil {
		if err := p.testRunner.step(p); err != nil {
			return err
		}
	}

	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	if !p.Config.DisableInput {
		p.scroller.HandleInput(p.viewport)
	}
	p.scroller.Update(dt)
	scroll := p.scroller.Position()

	for _, s := range p.sections {
		progress, events := s.Trigger.Update(scroll, dt)
		s.Timeline.SetProgress(progress)
		for _, ev := range events {
			p.emit(ev, s, progress, scroll)
		}
		done := s.Timeline.Done()
		if done && !s.completed {
			p.emit(EventComplete, s, progress, scroll)
		}
		s.completed = done
	}

	if p.fps != nil {
		p.fps.update(dt, scroll)
	}
	if p.debug {
		p.debugLog(scroll, time.Since(t0))
	}
	return nil
}

func (p *Page) emit(t RevealEventType, s *Section, progress, scroll float64) {
	if p.sink == nil {
		return
	}
	p.sink.EmitEvent(RevealEvent{Type: t, Section: s.Name, Progress: progress, Scroll: scroll})
}

// Draw renders every section that overlaps the viewport.
func (p *Page) Draw(screen *ebiten.Image) {
	if p.Config.Background.A > 0 {
		screen.Fill(p.Config.Background.toRGBA())
	}
	scroll := p.scroller.Position()
	for _, s := range p.sections {
		y := s.ScreenY(scroll)
		// Sections far off screen cannot be reached even by large start
		// offsets; everything else is drawn and culled per element.
		if y > 2*p.viewport.Height || y+s.Height < -2*p.viewport.Height {
			continue
		}
		p.verts = drawSection(screen, s, y, p.verts)
	}
	if p.fps != nil {
		p.fps.draw(screen)
	}
	p.flushScreenshots(screen)
}
