package gridreveal

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Immediate bool    `json:"immediate,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences scroll, resize, wait and screenshot steps across
// frames for automated visual testing. Attach to a Page via SetTestRunner.
//
//	{"steps": [
//	  {"action": "scrollTo", "y": 1200},
//	  {"action": "settle"},
//	  {"action": "screenshot", "label": "fourth-mid"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Page via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "scrollTo", "scrollBy", "wait", "settle", "resize":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the page. Its step method runs
// from Page.Update before scrolling each frame.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(p *Page) error {
	if r.done {
		return nil
	}
	if r.settling {
		if !p.scroller.Settled() {
			return nil
		}
		r.settling = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "scrollTo":
		p.scroller.ScrollTo(st.Y, st.Immediate)
	case "scrollBy":
		p.scroller.ScrollBy(st.Y)
	case "settle":
		r.settling = !p.scroller.Settled()
	case "resize":
		if err := p.Resize(Size{st.Width, st.Height}); err != nil {
			return fmt.Errorf("test script step %d: %w", r.cursor-1, err)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling {
		r.done = true
	}
	return nil
}
