package ecs

import (
	livecharts "github.com/fedoaa/Live-Charts"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for chart interaction
// events. Subscribe to this in your ECS systems to receive data clicks,
// double-clicks, hover enter/leave, and pointer moves.
var InteractionEventType = events.NewEventType[livecharts.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an InteractionSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) livecharts.InteractionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInteraction(event livecharts.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
