package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/blueprint/internal/config"
	"github.com/zeusync/blueprint/internal/core/assets"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/factory"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/systems"
	"github.com/zeusync/blueprint/internal/core/systems/transform"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideAssetCache,
	ProvideTransform,
	ProvideRegistry,
	ProvideFactory,
	bus.New,
	wire.Bind(new(systems.Locator), new(*systems.Registry)),
	wire.Struct(new(Runtime), "*"),
)

func ProvideLogger(cfg *config.Config) log.Log {
	return log.NewWithFormat(log.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
}

func ProvideAssetCache(cfg *config.Config, l log.Log) *assets.Cache {
	return assets.NewCache(assets.DirSource(cfg.Assets.Root),
		assets.WithExtension(cfg.Assets.Extension),
		assets.WithLogger(l),
	)
}

func ProvideTransform(l log.Log) *transform.System {
	return transform.New(l)
}

// ProvideRegistry returns the registry holding every built-in system.
func ProvideRegistry(t *transform.System) (*systems.Registry, error) {
	r := systems.NewRegistry()
	if err := r.RegisterSystem(t); err != nil {
		return nil, err
	}
	return r, nil
}

func ProvideFactory(l log.Log, cache *assets.Cache, locator systems.Locator, events bus.EventBus) *factory.Factory {
	return factory.New(
		factory.WithLogger(l),
		factory.WithAssets(cache),
		factory.WithLocator(locator),
		factory.WithEventBus(events),
	)
}
