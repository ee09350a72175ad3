package ecs

import (
	"github.com/phanxgames/gridreveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RevealEventType is the Donburi event type for gridreveal section events.
// Subscribe to this in your ECS systems to react to sections entering,
// leaving or finishing their reveal.
var RevealEventType = events.NewEventType[gridreveal.RevealEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Reveal events are published to RevealEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) gridreveal.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event gridreveal.RevealEvent) {
	RevealEventType.Publish(s.world, event)
}
