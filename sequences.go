package gridreveal

import (
	"github.com/tanema/gween/ease"
)

// tweensFrom builds one from-tween per element. state receives the element's
// index and returns its start keyframe.
func tweensFrom(els []*Element, duration float32, fn ease.TweenFunc, state func(i int, el *Element) State) []*Tween {
	out := make([]*Tween, len(els))
	for i, el := range els {
		out[i] = TweenFrom(el, state(i, el), duration, fn)
	}
	return out
}

func randRange(ctx BuildContext, lo, hi float64) float64 {
	if ctx.Rand == nil {
		return lo
	}
	return lo + ctx.Rand.Float64()*(hi-lo)
}

func gridShape(s *Section) [2]int {
	if s.Rows > 0 && s.Cols > 0 {
		return [2]int{s.Rows, s.Cols}
	}
	return [2]int{}
}

func pinned(end string, scrub float32) Trigger {
	return Trigger{Start: "center center", End: end, Scrub: scrub, Pin: true}
}

// SequenceFrame pushes the page header down, shrinks and darkens it, and
// slides its title and subline apart as the page scrolls away from the top.
// Texts[0] is the title and Texts[1] the subline.
var SequenceFrame = Sequence{
	Name:    "frame",
	Trigger: Trigger{Start: "clamp(top bottom)", End: "bottom top"},
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.Linear)

		to := Identity()
		to.YPercent = 35
		to.ScaleX, to.ScaleY = 0.95, 0.95
		to.Brightness = 0.3
		tl.Insert(0, TweenTo(s.Grid, to, 0, nil))

		if len(s.Texts) > 0 {
			title := Identity()
			title.XPercent = -80
			tl.Insert(0, TweenTo(s.Texts[0], title, 0, nil))
		}
		if len(s.Texts) > 1 {
			sub := Identity()
			sub.XPercent = 100
			sub.YPercent = -1400
			tl.Insert(0, TweenTo(s.Texts[1], sub, 0, nil))
		}
		return tl, nil
	},
}

// SequenceFirst raises every cell from below the fold by a random distance,
// then brings in the section title.
var SequenceFirst = Sequence{
	Name:    "first",
	Trigger: pinned("+=250%", 0.5),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutSine)
		vh := ctx.Viewport.Height
		tl.InsertStaggered(0, Stagger{Each: 0.07}, ctx.Rand, tweensFrom(s.Items, 0, nil, func(i int, el *Element) State {
			st := Identity()
			st.Y = randRange(ctx, vh, vh*1.8)
			return st
		}))
		if len(s.Texts) > 0 {
			st := Identity()
			st.YPercent = 180
			st.Alpha = 0
			tl.Insert(0.8, TweenFrom(s.Texts[0], st, 1.2, ease.OutQuint))
		}
		return tl, nil
	},
}

// SequenceSecond lifts the cells from the bottom of the viewport in a fan:
// cells left of the middle tilt one way, cells right of it the other, more so
// the farther they are from the middle.
var SequenceSecond = Sequence{
	Name:    "second",
	Trigger: pinned("+=250%", 0.5),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutQuart)
		middle := len(s.Items) / 2
		st := Stagger{Amount: 0.3, From: FromCenter}
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Items, 0, nil, func(i int, el *Element) State {
			f := Identity()
			f.Y = ctx.Viewport.Height
			f.OriginX, f.OriginY = 0.5, 0
			d := float64(i - middle)
			if d < 0 {
				d = -d
			}
			if i < middle {
				f.Rotation = d * 3
			} else {
				f.Rotation = d * -3
			}
			return f
		}))
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Texts, 0, nil, func(int, *Element) State {
			f := Identity()
			f.YPercent = 100
			f.Alpha = 0
			return f
		}))
		return tl, nil
	},
}

// SequenceThird stacks cells from below with a random tilt, dimming every
// cell but the last as the next one lands, then slides captions in from
// alternating sides.
var SequenceThird = Sequence{
	Name:    "third",
	Trigger: pinned("+=200%", 0.2),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutQuart)
		n := len(s.Items)
		tl.InsertStaggered(0, Stagger{Each: 0.06}, ctx.Rand, tweensFrom(s.Items, 0, nil, func(int, *Element) State {
			f := Identity()
			f.Y = ctx.Viewport.Height
			f.Rotation = randRange(ctx, -15, 15)
			f.OriginX, f.OriginY = 0.5, 0
			return f
		}))

		dims := make([]*Tween, n)
		for i, el := range s.Items {
			from := Identity()
			to := Identity()
			if i < n-1 {
				to.Brightness = 0.2
			}
			dims[i] = TweenFromTo(el, from, to, PropBrightness, 0, ease.Linear)
		}
		tl.InsertStaggered(0, Stagger{Each: 0.06}, ctx.Rand, dims)

		tl.Insert(0.06*float32(n), tweensFrom(s.Texts, 0, nil, func(i int, _ *Element) State {
			f := Identity()
			f.XPercent = -100
			if i%2 == 1 {
				f.XPercent = 100
			}
			f.Alpha = 0
			return f
		})...)
		return tl, nil
	},
}

// revealFromPreset builds a fromTo for every item, starting each at the
// preset's keyframe for its live box and ending at Identity().
func revealFromPreset(s *Section, ctx BuildContext, preset RevealPreset, fn ease.TweenFunc, amount float32) (*Timeline, error) {
	tl := NewTimeline(fn)
	tweens := make([]*Tween, len(s.Items))
	for i, el := range s.Items {
		from, err := preset.Start(el.Box, ctx.Viewport)
		if err != nil {
			return nil, err
		}
		tweens[i] = TweenFromTo(el, from, Identity(), PropTranslate|PropRotate3D|PropScale|PropAlpha, 0, nil)
	}
	tl.InsertStaggered(0, Stagger{Amount: amount, From: FromCenter, Grid: gridShape(s)}, ctx.Rand, tweens)
	return tl, nil
}

// SequenceFourth flies cells in from around the viewport center, rotated
// and pulled towards the viewer in proportion to their distance from it.
var SequenceFourth = Sequence{
	Name:        "fourth",
	Trigger:     pinned("+=200%", 0.2),
	Perspective: PresetDepth.Perspective,
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		return revealFromPreset(s, ctx, PresetDepth, ease.OutExpo, 0.2)
	},
}

// SequenceFourthV2 is SequenceFourth with cells starting far behind the
// viewport, spread wider, rotating the opposite way.
var SequenceFourthV2 = Sequence{
	Name:        "fourth-v2",
	Trigger:     pinned("+=200%", 0.2),
	Perspective: PresetDepthInverted.Perspective,
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		return revealFromPreset(s, ctx, PresetDepthInverted, ease.OutQuint, 0.15)
	},
}

// SequenceFifth flips cells up from below and behind in random order.
var SequenceFifth = Sequence{
	Name:        "fifth",
	Trigger:     pinned("+=250%", 0.3),
	Perspective: 1000,
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutSine)
		st := Stagger{Amount: 0.4, From: FromRandom, Grid: gridShape(s)}
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Items, 0, nil, func(int, *Element) State {
			f := Identity()
			f.Y = ctx.Viewport.Height
			f.RotateX = -70
			f.OriginX, f.OriginY = 0.5, 0
			f.Z = -900
			f.Alpha = 0
			return f
		}))
		return tl, nil
	},
}

// SequenceSixth fades cells in from the grid's edges while the whole grid
// straightens and grows to full size.
var SequenceSixth = Sequence{
	Name:    "sixth",
	Trigger: pinned("+=200%", 0.5),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.Linear)
		st := Stagger{Amount: 0.03, From: FromEdges, Grid: gridShape(s)}
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Items, 0, nil, func(int, *Element) State {
			f := Identity().WithScale(0.7)
			f.Alpha = 0
			return f
		}))
		g := Identity().WithScale(0.7)
		g.SkewY = 5
		tl.Insert(0, TweenFrom(s.Grid, g, 0, nil))
		return tl, nil
	},
}

// SequenceSeventh wipes each cell open from the top while its content slides
// the opposite way, so the picture appears to stay still behind a moving
// window. Captions rise in halfway through.
var SequenceSeventh = Sequence{
	Name:    "seventh",
	Trigger: pinned("+=150%", 0.5),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutQuad)
		s.AddInners()
		each := Stagger{Each: 0.08}

		wipes := make([]*Tween, len(s.Items))
		for i, el := range s.Items {
			from := Identity()
			from.YPercent = -102
			wipes[i] = TweenFromTo(el, from, Identity(), PropYPercent, 0, nil)
		}
		tl.InsertStaggered(0, each, ctx.Rand, wipes)

		tl.InsertStaggered(0, each, ctx.Rand, tweensFrom(s.Inners, 0, nil, func(int, *Element) State {
			f := Identity()
			f.YPercent = 102
			return f
		}))

		textStagger := Stagger{Each: float32(len(s.Items)) / 2 * 0.08}
		tl.InsertStaggered(0, textStagger, ctx.Rand, tweensFrom(s.Texts, 0, nil, func(int, *Element) State {
			f := Identity()
			f.YPercent = 20
			f.Alpha = 0
			return f
		}))
		return tl, nil
	},
}

// SequenceEighth swings cells open like doors hinged on their left edge.
var SequenceEighth = Sequence{
	Name:        "eighth",
	Trigger:     pinned("+=250%", 0),
	Perspective: 2000,
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutExpo)
		st := Stagger{Amount: 0.8, From: FromStart}
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Items, 0, nil, func(int, *Element) State {
			f := Identity()
			f.RotateY = 65
			f.OriginX, f.OriginY = 0, 0.5
			f.Z = -200
			f.YPercent = 10
			return f
		}))
		tl.InsertStaggered(0, st, ctx.Rand, tweensFrom(s.Items, 0.2, nil, func(int, *Element) State {
			f := Identity()
			f.Alpha = 0
			return f
		}))
		return tl, nil
	},
}

// SequenceNinth sweeps cells in from the right on a pivot far above the
// grid, skewed and slightly stretched.
var SequenceNinth = Sequence{
	Name:    "ninth",
	Trigger: pinned("+=200%", 0),
	Build: func(s *Section, ctx BuildContext) (*Timeline, error) {
		tl := NewTimeline(ease.OutQuart)
		tl.InsertStaggered(0, Stagger{Each: 0.07}, ctx.Rand, tweensFrom(s.Items, 0, nil, func(int, *Element) State {
			f := Identity()
			f.OriginX, f.OriginY = 1, -4.5
			f.ScaleX = 1.05
			f.SkewX = 15
			f.XPercent = 50
			f.Rotation = -10
			f.Alpha = 0
			return f
		}))
		return tl, nil
	},
}

// Sequences returns every sequence in page order.
func Sequences() []Sequence {
	return []Sequence{
		SequenceFrame,
		SequenceFirst,
		SequenceSecond,
		SequenceThird,
		SequenceFourth,
		SequenceFourthV2,
		SequenceFifth,
		SequenceSixth,
		SequenceSeventh,
		SequenceEighth,
		SequenceNinth,
	}
}

// SequenceByName looks a sequence up by its Name.
func SequenceByName(name string) (Sequence, bool) {
	for _, s := range Sequences() {
		if s.Name == name {
			return s, true
		}
	}
	return Sequence{}, false
}
