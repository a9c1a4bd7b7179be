package injector

import (
	"context"
	"fmt"

	"github.com/zeusync/blueprint/internal/config"
	"github.com/zeusync/blueprint/internal/core/assets"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/factory"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/systems"
	"github.com/zeusync/blueprint/internal/core/systems/transform"
)

// Runtime is the wired set of components around an entity factory.
type Runtime struct {
	Config    *config.Config
	Log       log.Log
	Assets    *assets.Cache
	Events    bus.EventBus
	Registry  *systems.Registry
	Transform *transform.System
	Factory   *factory.Factory
}

// Start adds every registered system to the factory, initializes it with
// the configured schema and preloads the named blueprints.
func (r *Runtime) Start(ctx context.Context, preload ...string) error {
	for _, s := range r.Registry.ListSystems() {
		if _, err := r.Factory.AddSystemFromLocator(s.Name()); err != nil {
			return fmt.Errorf("add system %s: %w", s.Name(), err)
		}
	}
	if err := r.Factory.Initialize(ctx, factory.DefaultConfig(r.Config.Schema.Components)); err != nil {
		return err
	}
	r.Transform.Attach(r.Factory)

	if len(preload) > 0 {
		if err := r.Assets.Preload(ctx, r.Config.Assets.PreloadWorkers, preload...); err != nil {
			return fmt.Errorf("preload blueprints: %w", err)
		}
		r.Log.Info("blueprints preloaded", log.Int("count", len(preload)))
	}
	return nil
}

// Close reports the factory counters and flushes the logger.
func (r *Runtime) Close() error {
	m := r.Factory.Metrics()
	r.Log.Debug("entity factory stopped",
		log.Uint64("entities_created", m.EntitiesCreated),
		log.Uint64("entities_destroyed", m.EntitiesDestroyed),
		log.Uint64("components_attached", m.ComponentsAttached),
		log.Uint64("components_skipped", m.ComponentsSkipped),
	)
	return r.Log.Sync()
}
