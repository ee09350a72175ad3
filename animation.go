package gridreveal

import (
	"log"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one element between two keyframes. Progress is driven by a
// gween tween running from 0 to 1 with the easing function, so any
// ease.TweenFunc can shape the motion. Only fields in Props are written.
//
// Tweens are seekable: Seek(t) computes the state at local time t without
// depending on previous calls, which is what scroll scrubbing needs.
type Tween struct {
	Target   *Element
	From, To State
	Props    Prop
	Duration float32
	Ease     ease.TweenFunc

	// ImmediateRender writes the From state while the tween is before its
	// start time. Set for from and fromTo tweens.
	ImmediateRender bool

	progress *gween.Tween
}

func newTween(el *Element, from, to State, props Prop, duration float32, fn ease.TweenFunc, immediate bool) *Tween {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Tween{
		Target:          el,
		From:            from,
		To:              to,
		Props:           props,
		Duration:        duration,
		Ease:            fn,
		ImmediateRender: immediate,
	}
}

// DefaultDuration is the duration, in seconds, of tweens created without one.
const DefaultDuration float32 = 0.5

// TweenFrom animates el from the given state into its current state. Props
// are inferred from the fields of from that differ from Identity().
func TweenFrom(el *Element, from State, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(el, from, el.State, from.Props(), duration, fn, true)
}

// TweenTo animates el from its current state to the given state.
func TweenTo(el *Element, to State, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(el, el.State, to, to.Props(), duration, fn, false)
}

// TweenFromTo animates el between two explicit states, writing the fields of
// props.
func TweenFromTo(el *Element, from, to State, props Prop, duration float32, fn ease.TweenFunc) *Tween {
	return newTween(el, from, to, props, duration, fn, true)
}

// Seek writes the state at local time t (seconds since the tween's start)
// into the target. Negative t renders the From state when ImmediateRender is
// set and is a no-op otherwise. Returns true when t is at or past the end.
func (tw *Tween) Seek(t float32) bool {
	if tw.Target == nil {
		return true
	}
	if t < 0 {
		if tw.ImmediateRender {
			lerpState(&tw.Target.State, tw.From, tw.To, 0, tw.Props)
		}
		return false
	}
	fn := tw.Ease
	if fn == nil {
		fn = ease.Linear
	}
	if tw.progress == nil {
		tw.progress = gween.New(0, 1, tw.Duration, fn)
	}
	p, done := tw.progress.Set(t)
	if done {
		p = 1
	}
	lerpState(&tw.Target.State, tw.From, tw.To, float64(p), tw.Props)
	return done
}

// setEase replaces the easing function, discarding the cached progress tween.
func (tw *Tween) setEase(fn ease.TweenFunc) {
	tw.Ease = fn
	tw.progress = nil
}

// eases maps the short ease names used in sequence definitions to gween
// functions. Bare names ease out.
var eases = map[string]ease.TweenFunc{
	"none":         ease.Linear,
	"linear":       ease.Linear,
	"sine":         ease.OutSine,
	"sine.in":      ease.InSine,
	"sine.inout":   ease.InOutSine,
	"power1":       ease.OutQuad,
	"power1.in":    ease.InQuad,
	"power1.inout": ease.InOutQuad,
	"power2":       ease.OutCubic,
	"power2.in":    ease.InCubic,
	"power2.inout": ease.InOutCubic,
	"power3":       ease.OutQuart,
	"power3.in":    ease.InQuart,
	"power3.inout": ease.InOutQuart,
	"power4":       ease.OutQuint,
	"power4.in":    ease.InQuint,
	"power4.inout": ease.InOutQuint,
	"expo":         ease.OutExpo,
	"expo.in":      ease.InExpo,
	"expo.inout":   ease.InOutExpo,
	"circ":         ease.OutCirc,
	"back":         ease.OutBack,
	"bounce":       ease.OutBounce,
	"elastic":      ease.OutElastic,
}

// EaseByName resolves an ease name such as "power3", "sine.inOut" or
// "expo.out". Unknown names log a warning and return ease.Linear.
func EaseByName(name string) ease.TweenFunc {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, ".out")
	if fn, ok := eases[key]; ok {
		return fn
	}
	log.Printf("gridreveal: unknown ease %q, using linear", name)
	return ease.Linear
}
