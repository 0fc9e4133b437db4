package ecsbridge

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DonburiEventType is the Donburi event type for engine Events. Subscribe
// to this in ECS systems to receive them.
var DonburiEventType = events.NewEventType[Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a Store backed by a Donburi world. Events are
// published to DonburiEventType and can be consumed with
// DonburiEventType.Subscribe and ProcessEvents/ProcessAllEvents.
func NewDonburiStore(world donburi.World) Store {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(e Event) {
	DonburiEventType.Publish(s.world, e)
}
