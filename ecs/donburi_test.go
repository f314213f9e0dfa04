package ecs

import (
	"testing"

	livecharts "github.com/fedoaa/Live-Charts"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitInteraction(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []livecharts.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e livecharts.InteractionEvent) {
		received = append(received, e)
	})

	sink.EmitInteraction(livecharts.InteractionEvent{
		Type: livecharts.EventDataClick,
		Context: livecharts.DataInteractionContext{
			Button: livecharts.MouseButtonLeft,
			Points: []livecharts.DataPoint{{X: 1, Y: 2, SeriesTitle: "a"}},
		},
	})
	sink.EmitInteraction(livecharts.InteractionEvent{
		Type:   livecharts.EventPointerMoved,
		LocalX: 10,
		LocalY: 20,
	})

	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("received %d events, want 2", len(received))
	}
	if received[0].Type != livecharts.EventDataClick {
		t.Errorf("first event type = %v, want EventDataClick", received[0].Type)
	}
	if got := received[0].Context.Points; len(got) != 1 || got[0].SeriesTitle != "a" {
		t.Errorf("first event points = %v, want one point from series a", got)
	}
	if received[1].LocalX != 10 || received[1].LocalY != 20 {
		t.Errorf("second event local = (%v, %v), want (10, 20)", received[1].LocalX, received[1].LocalY)
	}
}
