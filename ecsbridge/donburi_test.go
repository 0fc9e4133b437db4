package ecsbridge

import (
	"testing"

	"github.com/phanxgames/stagewright"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []Event
	DonburiEventType.Subscribe(world, func(w donburi.World, e Event) {
		received = append(received, e)
	})

	id := stagewright.NewContainerId()
	store.EmitEvent(Event{Type: EventContainerCreated, ContainerID: id})
	store.EmitEvent(Event{
		Type:        EventSpatialHit,
		ContainerID: id,
		Layer:       1,
		Rect:        stagewright.Rect{X: 1, Y: 2, Width: 3, Height: 4},
	})

	// Events are queued — process them.
	DonburiEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != EventContainerCreated || received[0].ContainerID != id {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != EventSpatialHit || received[1].Layer != 1 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ImplementsStore(t *testing.T) {
	world := donburi.NewWorld()
	var store Store = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DonburiEventType.Subscribe(world, func(w donburi.World, e Event) {
		count1++
	})
	DonburiEventType.Subscribe(world, func(w donburi.World, e Event) {
		count2++
	})

	store.EmitEvent(Event{Type: EventContainerRemoved})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
