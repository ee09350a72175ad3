package gridreveal

import (
	"fmt"
	"os"
	"time"
)

// debugLog prints the scroll position and every active section's progress to
// stderr.
func (p *Page) debugLog(scroll float64, elapsed time.Duration) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[gridreveal] scroll: %.1f/%.1f | target: %.1f | update: %v\n",
		scroll, p.scroller.Limit(), p.scroller.Target(), elapsed)
	for _, s := range p.sections {
		start, end := s.Trigger.Range()
		if scroll < start || scroll > end {
			continue
		}
		_, _ = fmt.Fprintf(os.Stderr,
			"[gridreveal]   %s: progress %.3f | time %.3f/%.3f | range %.0f-%.0f\n",
			s.Name, s.Trigger.Progress(), s.Timeline.Time(), s.Timeline.Duration(), start, end)
	}
}
