package ecs

import (
	"github.com/phanxgames/press"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PressEventType is the Donburi event type for press notifications. Each
// event carries the notification kind (pressstart, pressend or presscancel)
// in Type, plus the ID and Name of the tracked node that produced it.
var PressEventType = events.NewEventType[press.PressEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Notifications are queued on PressEventType as they happen during
// Scene.Update; systems read them with PressEventType.Subscribe and drain the
// queue with PressEventType.ProcessEvents, usually once per frame.
func NewDonburiStore(world donburi.World) press.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event press.PressEvent) {
	PressEventType.Publish(s.world, event)
}
