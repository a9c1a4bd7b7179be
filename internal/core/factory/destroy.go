package factory

import (
	"maps"

	"github.com/zeusync/blueprint/internal/core/models"
)

// Destroy detaches every component of entity, letting each system drop what
// it holds, and forgets which blueprint created it. Systems are visited in
// reverse initialization order. It must not run concurrently with a
// creation call for the same entity.
func (f *Factory) Destroy(entity models.Entity) {
	if entity.IsNull() {
		return
	}
	for i := len(f.order) - 1; i >= 0; i-- {
		f.systems[f.order[i]].Destroy(entity)
	}
	name := f.blueprints[entity]
	delete(f.blueprints, entity)
	f.stats.entitiesDestroyed.Add(1)
	f.publish(EventEntityDestroyed, entity, name)
}

// QueueForDestruction marks entity for destruction by the next
// DestroyQueuedEntities. It is safe for concurrent use.
func (f *Factory) QueueForDestruction(entity models.Entity) {
	if entity.IsNull() {
		return
	}
	f.mu.Lock()
	f.pending.Enqueue(entity)
	f.mu.Unlock()
}

// DestroyQueuedEntities destroys every queued entity, including those queued
// while the drain is running.
func (f *Factory) DestroyQueuedEntities() {
	for {
		f.mu.Lock()
		entity, ok := f.pending.Dequeue()
		f.mu.Unlock()
		if !ok {
			return
		}
		f.Destroy(entity)
	}
}

// PendingDestruction returns the number of queued entities.
func (f *Factory) PendingDestruction() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending.Len()
}

// EntityToBlueprintMap returns a copy of the entity to blueprint name map.
// Only entities created from a named asset or raw data appear in it.
func (f *Factory) EntityToBlueprintMap() map[models.Entity]string {
	return maps.Clone(f.blueprints)
}

// BlueprintName returns the name of the blueprint entity was created from.
func (f *Factory) BlueprintName(entity models.Entity) (string, bool) {
	name, ok := f.blueprints[entity]
	return name, ok
}
