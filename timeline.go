package gridreveal

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

type timelineEntry struct {
	at    float32
	tween *Tween
}

// Timeline places tweens at absolute times and seeks them together. There is
// no clock: the owner (normally a Trigger) decides what time to show.
type Timeline struct {
	// Ease is applied to tweens added without one.
	Ease ease.TweenFunc

	entries []timelineEntry
	time    float32
	done    bool
}

// NewTimeline creates an empty timeline with a default ease.
func NewTimeline(defaultEase ease.TweenFunc) *Timeline {
	return &Timeline{Ease: defaultEase}
}

// Insert adds tweens that all start at time at.
func (tl *Timeline) Insert(at float32, tweens ...*Tween) *Timeline {
	for _, tw := range tweens {
		tl.add(at, tw)
	}
	return tl
}

// Append adds tweens that all start at the current end of the timeline.
func (tl *Timeline) Append(tweens ...*Tween) *Timeline {
	return tl.Insert(tl.Duration(), tweens...)
}

// InsertStaggered adds tweens starting at at, each offset by its stagger
// delay. rng feeds FromRandom staggers.
func (tl *Timeline) InsertStaggered(at float32, st Stagger, rng *rand.Rand, tweens []*Tween) *Timeline {
	delays := st.Delays(len(tweens), rng)
	for i, tw := range tweens {
		tl.add(at+delays[i], tw)
	}
	return tl
}

func (tl *Timeline) add(at float32, tw *Tween) {
	if tw == nil {
		return
	}
	if tw.Ease == nil && tl.Ease != nil {
		tw.setEase(tl.Ease)
	}
	if at < 0 {
		at = 0
	}
	tl.entries = append(tl.entries, timelineEntry{at: at, tween: tw})
}

// Len returns the number of tweens on the timeline.
func (tl *Timeline) Len() int {
	return len(tl.entries)
}

// Duration returns the end time of the last tween.
func (tl *Timeline) Duration() float32 {
	var end float32
	for _, e := range tl.entries {
		end = max(end, e.at+e.tween.Duration)
	}
	return end
}

// Time returns the last time passed to Seek.
func (tl *Timeline) Time() float32 {
	return tl.time
}

// Done reports whether the last Seek reached the end.
func (tl *Timeline) Done() bool {
	return tl.done
}

// Seek renders every tween at timeline time t. Tweens are applied in
// insertion order, so later tweens win on shared properties. The result
// depends only on t.
func (tl *Timeline) Seek(t float32) {
	d := tl.Duration()
	t = max(0, min(t, d))
	tl.time = t
	for _, e := range tl.entries {
		e.tween.Seek(t - e.at)
	}
	tl.done = t >= d
}

// SetProgress seeks to fraction p of the duration, clamped to [0, 1].
func (tl *Timeline) SetProgress(p float64) {
	p = max(0, min(p, 1))
	tl.Seek(float32(p) * tl.Duration())
}

// Progress returns the current time as a fraction of the duration.
func (tl *Timeline) Progress() float64 {
	d := tl.Duration()
	if d == 0 {
		return 1
	}
	return float64(tl.time / d)
}
