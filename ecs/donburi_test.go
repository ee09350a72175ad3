package ecs

import (
	"testing"

	"github.com/phanxgames/gridreveal"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []gridreveal.RevealEvent
	RevealEventType.Subscribe(world, func(w donburi.World, e gridreveal.RevealEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(gridreveal.RevealEvent{
		Type:     gridreveal.EventEnter,
		Section:  "first",
		Progress: 0.25,
		Scroll:   1200,
	})
	sink.EmitEvent(gridreveal.RevealEvent{
		Type:     gridreveal.EventComplete,
		Section:  "first",
		Progress: 1,
	})

	// Queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	RevealEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != gridreveal.EventEnter || e0.Section != "first" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Progress != 0.25 || e0.Scroll != 1200 {
		t.Errorf("event 0 progress/scroll: (%v,%v)", e0.Progress, e0.Scroll)
	}
	if received[1].Type != gridreveal.EventComplete {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink gridreveal.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	RevealEventType.Subscribe(world, func(w donburi.World, e gridreveal.RevealEvent) {
		count1++
	})
	RevealEventType.Subscribe(world, func(w donburi.World, e gridreveal.RevealEvent) {
		count2++
	})

	sink.EmitEvent(gridreveal.RevealEvent{Type: gridreveal.EventLeave, Section: "sixth"})
	RevealEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("subscribers: count1=%d count2=%d, want 1,1", count1, count2)
	}
}
