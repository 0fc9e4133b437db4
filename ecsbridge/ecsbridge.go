// Package ecsbridge bridges engine occurrences into an external ECS world
// as typed Donburi events, so an embedding game's systems can react to
// container lifecycle and spatial-query hits without polling the engine
// directly between ticks.
//
// Grounded on phanxgames-willow/ecs/donburi.go's EntityStore/InteractionEvent
// bridge, generalized from willow's pointer/drag/pinch interaction events to
// this engine's scene-mutation and spatial-query occurrences.
package ecsbridge

import "github.com/phanxgames/stagewright"

// EventType enumerates the cases of Event.
type EventType int

const (
	// EventContainerCreated fires once per successfully dispatched
	// CreateContainer action.
	EventContainerCreated EventType = iota
	// EventContainerRemoved fires once per dispatched RemoveContainer
	// action, carrying the action's own target id (descendants removed by
	// cascade are not individually reported).
	EventContainerRemoved
	// EventSpatialHit fires once per handle passed to
	// Engine.PublishSelection, when a Store is installed. SpatialQuery*
	// calls do not emit it on their own.
	EventSpatialHit
)

// Event is a single engine occurrence forwarded to an ECS world. Only the
// fields relevant to Type are populated.
type Event struct {
	Type        EventType
	ContainerID stagewright.ContainerId
	Layer       stagewright.QuadTreeLayer // EventSpatialHit
	Rect        stagewright.Rect          // EventSpatialHit
}

// Store is the interface an engine uses to forward Events to an ECS world.
// Mirrors phanxgames-willow's EntityStore.
type Store interface {
	EmitEvent(e Event)
}
