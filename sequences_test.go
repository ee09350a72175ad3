package gridreveal

import "testing"

// resting reports whether s is at rest, ignoring brightness and the
// transform origin (which has no effect without a transform).
func resting(s State) bool {
	s.Brightness = 1
	s.OriginX, s.OriginY = 0.5, 0.5
	return s.IsIdentity()
}

func TestSequencesNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, seq := range Sequences() {
		if seq.Name == "" || seen[seq.Name] {
			t.Errorf("duplicate or empty sequence name %q", seq.Name)
		}
		seen[seq.Name] = true
		got, ok := SequenceByName(seq.Name)
		if !ok || got.Name != seq.Name {
			t.Errorf("SequenceByName(%q) failed", seq.Name)
		}
	}
	if len(seen) != 11 {
		t.Errorf("%d sequences, want 11", len(seen))
	}
	if _, ok := SequenceByName("tenth"); ok {
		t.Error("SequenceByName found a sequence that does not exist")
	}
}

func TestSequencesStartAwayFromRest(t *testing.T) {
	p := newTestPage(t, PageConfig{}, Sequences()...)
	for _, s := range p.Sections()[1:] {
		s.Timeline.SetProgress(0)
		moved := false
		for _, it := range s.Items {
			if !resting(it.State) {
				moved = true
			}
		}
		if !moved {
			t.Errorf("%s: every item is at rest at progress 0", s.Name)
		}
	}
}

func TestSequencesSettleAtEnd(t *testing.T) {
	p := newTestPage(t, PageConfig{}, Sequences()...)
	p.Scroller().ScrollTo(p.Scroller().Limit(), true)
	runFrames(t, p, 120)

	for _, s := range p.Sections() {
		if !s.Timeline.Done() {
			t.Errorf("%s: timeline not done at the bottom of the page (progress %v)", s.Name, s.Timeline.Progress())
			continue
		}
		if s.Name == "frame" {
			continue
		}
		for _, el := range s.Elements() {
			if !resting(el.State) {
				t.Errorf("%s: %s not at rest: %+v", s.Name, el.Name, el.State)
			}
		}
	}
}

func TestSequenceFrameEndState(t *testing.T) {
	p := newTestPage(t, PageConfig{}, SequenceFrame)
	s := p.Sections()[0]
	s.Timeline.SetProgress(1)
	g := s.Grid.State
	if g.YPercent != 35 || g.ScaleX != 0.95 || g.Brightness != 0.3 {
		t.Errorf("grid end state = %+v", g)
	}
	if s.Texts[0].State.XPercent != -80 {
		t.Errorf("title XPercent = %v, want -80", s.Texts[0].State.XPercent)
	}
	if s.Texts[1].State.XPercent != 100 || s.Texts[1].State.YPercent != -1400 {
		t.Errorf("subline = %+v", s.Texts[1].State)
	}
}

func TestSequenceSecondFans(t *testing.T) {
	p := newTestPage(t, PageConfig{}, SequenceSecond)
	s := p.Sections()[0]
	s.Timeline.SetProgress(0)
	// Six items: the middle is index 3.
	if r := s.Items[0].State.Rotation; r != 9 {
		t.Errorf("item 0 rotation = %v, want 9", r)
	}
	if r := s.Items[5].State.Rotation; r != -6 {
		t.Errorf("item 5 rotation = %v, want -6", r)
	}
	if r := s.Items[3].State.Rotation; r != 0 {
		t.Errorf("middle item rotation = %v, want 0", r)
	}
	if s.Items[0].State.Y != vp1000x800.Height {
		t.Errorf("item 0 Y = %v, want the viewport height", s.Items[0].State.Y)
	}
}

func TestSequenceThirdDimsAllButLast(t *testing.T) {
	p := newTestPage(t, PageConfig{}, SequenceThird)
	s := p.Sections()[0]
	s.Timeline.SetProgress(1)
	last := len(s.Items) - 1
	for i, it := range s.Items {
		want := 0.2
		if i == last {
			want = 1
		}
		if !approxEqual(it.State.Brightness, want, 1e-6) {
			t.Errorf("item %d brightness = %v, want %v", i, it.State.Brightness, want)
		}
	}
}

func TestSequenceSeventhCurtains(t *testing.T) {
	p := newTestPage(t, PageConfig{}, SequenceSeventh)
	s := p.Sections()[0]
	if len(s.Inners) != len(s.Items) {
		t.Fatalf("inners = %d, want %d", len(s.Inners), len(s.Items))
	}
	s.Timeline.SetProgress(0)
	if s.Items[2].State.YPercent != -102 || s.Inners[2].State.YPercent != 102 {
		t.Errorf("item %v inner %v, want -102 and 102", s.Items[2].State.YPercent, s.Inners[2].State.YPercent)
	}

	// Layout again must not stack a second set of inners.
	if err := p.Layout(); err != nil {
		t.Fatal(err)
	}
	if len(s.Inners) != len(s.Items) {
		t.Errorf("inners after relayout = %d", len(s.Inners))
	}
}

func TestSequenceFourthUsesPreset(t *testing.T) {
	p := newTestPage(t, PageConfig{}, SequenceFourth)
	s := p.Sections()[0]
	s.Timeline.SetProgress(0)
	it := s.Items[0]
	want, err := PresetDepth.Start(it.Box, vp1000x800)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(it.State.X, want.X, 1e-4) || !approxEqual(it.State.RotateY, want.RotateY, 1e-4) {
		t.Errorf("start = %+v, want %+v", it.State, want)
	}
	if s.Sequence.Perspective != PresetDepth.Perspective {
		t.Errorf("Perspective = %v, want %v", s.Sequence.Perspective, PresetDepth.Perspective)
	}
}
