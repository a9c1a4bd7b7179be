package factory

import (
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/observability/log"
)

// Lifecycle event types published when an event bus is configured.
const (
	EventEntityCreated   = "entity.created"
	EventEntityDestroyed = "entity.destroyed"
)

const eventSource = "factory"

// EntityEvent is the Data of lifecycle events. Blueprint is empty for
// entities not created from a named blueprint.
type EntityEvent struct {
	Entity    models.Entity
	Blueprint string
}

func (f *Factory) publish(eventType string, entity models.Entity, name string) {
	if f.events == nil {
		return
	}
	err := f.events.Publish(bus.NewEvent(eventType, eventSource, EntityEvent{Entity: entity, Blueprint: name}))
	if err != nil {
		f.log.Warn("entity event handler failed",
			log.String("event", eventType),
			log.Uint64("entity", uint64(entity)),
			log.Error(err),
		)
	}
}
