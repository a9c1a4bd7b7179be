package factory

import "sync/atomic"

// Metrics is a snapshot of factory activity counters.
type Metrics struct {
	EntitiesCreated    uint64
	EntitiesDestroyed  uint64
	ComponentsAttached uint64
	ComponentsSkipped  uint64
	ComponentsRejected uint64
	BlueprintFailures  uint64
}

type counters struct {
	entitiesCreated    atomic.Uint64
	entitiesDestroyed  atomic.Uint64
	componentsAttached atomic.Uint64
	componentsSkipped  atomic.Uint64
	componentsRejected atomic.Uint64
	blueprintFailures  atomic.Uint64
}

// Metrics returns the current counters.
func (f *Factory) Metrics() Metrics {
	return Metrics{
		EntitiesCreated:    f.stats.entitiesCreated.Load(),
		EntitiesDestroyed:  f.stats.entitiesDestroyed.Load(),
		ComponentsAttached: f.stats.componentsAttached.Load(),
		ComponentsSkipped:  f.stats.componentsSkipped.Load(),
		ComponentsRejected: f.stats.componentsRejected.Load(),
		BlueprintFailures:  f.stats.blueprintFailures.Load(),
	}
}
