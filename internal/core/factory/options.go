package factory

import (
	"github.com/zeusync/blueprint/internal/core/assets"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/systems"
)

type Option func(*Factory)

func WithLogger(l log.Log) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

// WithAssets sets the cache used to resolve blueprint names.
func WithAssets(c *assets.Cache) Option {
	return func(f *Factory) {
		if c != nil {
			f.assets = c
		}
	}
}

// WithLocator sets where AddSystemFromLocator looks systems up.
func WithLocator(l systems.Locator) Option {
	return func(f *Factory) {
		f.locator = l
	}
}

// WithEventBus makes the factory publish entity lifecycle events.
func WithEventBus(b bus.EventBus) Option {
	return func(f *Factory) {
		f.events = b
	}
}

func WithDependencyChecker(c *systems.DependencyChecker) Option {
	return func(f *Factory) {
		if c != nil {
			f.checker = c
		}
	}
}
