package factory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/zeusync/blueprint/internal/core/assets"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/schema"
	"github.com/zeusync/blueprint/internal/core/systems"
	"github.com/zeusync/blueprint/pkg/generic"
	"github.com/zeusync/blueprint/pkg/sequence"
)

// Factory creates entities and attaches their components from blueprints.
//
// Every System must be added before Initialize, which validates and runs
// their initialization order. Create and QueueForDestruction are safe for
// concurrent use; everything else, including composition, must run on the
// goroutine that owns the factory. The system table and type map are
// written only before Initialize and read without locking afterwards.
type Factory struct {
	log     log.Log
	assets  *assets.Cache
	locator systems.Locator
	events  bus.EventBus
	checker *systems.DependencyChecker

	systems map[string]systems.System
	order   []string
	ready   map[string]struct{}
	typeMap map[models.HashValue]string

	types         *schema.TypeList
	loader        LoaderFn
	finalizer     FinalizerFn
	treeFinalizer TreeFinalizerFn
	builders      *generic.Pool[*flatbuffers.Builder]

	createChild CreateChildFn
	blueprints  map[models.Entity]string

	initialized atomic.Bool
	stats       counters

	// mu guards nextEntity and pending only.
	mu         sync.Mutex
	nextEntity models.Entity
	pending    *sequence.Queue[models.Entity]
}

func New(opts ...Option) *Factory {
	f := &Factory{
		log:        log.NewNop(),
		assets:     assets.NewCache(nil),
		checker:    systems.NewDependencyChecker(),
		systems:    make(map[string]systems.System),
		ready:      make(map[string]struct{}),
		typeMap:    make(map[models.HashValue]string),
		blueprints: make(map[models.Entity]string),
		pending:    sequence.NewQueue[models.Entity](64),
		builders: generic.NewResetPool(
			func() *flatbuffers.Builder { return flatbuffers.NewBuilder(1024) },
			func(b *flatbuffers.Builder) { b.Reset() },
		),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.Named("factory")
	return f
}

// AddSystem makes s available for entity creation. Adding a system with the
// name of one already added replaces the reference. Def types announced
// through systems.DefProvider are registered for s.
func (f *Factory) AddSystem(s systems.System) error {
	if s == nil || s.Name() == "" {
		return ErrInvalidSystem
	}
	if f.initialized.Load() {
		return fmt.Errorf("add system %s: %w", s.Name(), ErrAlreadyInitialized)
	}
	name := s.Name()
	if _, exists := f.systems[name]; !exists {
		f.order = append(f.order, name)
	}
	delete(f.ready, name)
	f.systems[name] = s
	if p, ok := s.(systems.DefProvider); ok {
		for _, defType := range p.DefTypes() {
			f.RegisterDef(name, defType)
		}
	}
	return nil
}

// AddSystemFromLocator adds the system the locator holds under name.
func (f *Factory) AddSystemFromLocator(name string) (systems.System, error) {
	if f.locator == nil {
		return nil, ErrNoLocator
	}
	s, ok := f.locator.GetSystem(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", systems.ErrSystemNotFound, name)
	}
	if err := f.AddSystem(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterDef routes components of defType to the named system. The last
// registration for a def type wins.
func (f *Factory) RegisterDef(system string, defType models.HashValue) {
	if prev, ok := f.typeMap[defType]; ok && prev != system {
		f.log.Debug("def type re-registered",
			log.Uint64("def_type", uint64(defType)),
			log.String("previous", prev),
			log.String("system", system),
		)
	}
	f.typeMap[defType] = system
}

// System returns an added system by name.
func (f *Factory) System(name string) (systems.System, bool) {
	s, ok := f.systems[name]
	return s, ok
}

// Initialize validates the system dependency order, initializes every
// system in that order and installs the codecs from cfg. No entity can be
// created until Initialize succeeds. A failed Initialize may be retried;
// systems that already initialized successfully are not initialized again.
func (f *Factory) Initialize(ctx context.Context, cfg Config) error {
	if f.initialized.Load() {
		return ErrAlreadyInitialized
	}

	types, err := cfg.typeList()
	if err != nil {
		return fmt.Errorf("create type list: %w", err)
	}

	list := make([]systems.System, 0, len(f.order))
	for _, name := range f.order {
		list = append(list, f.systems[name])
	}
	order, err := f.checker.Order(list)
	if err != nil {
		return fmt.Errorf("initialize systems: %w", err)
	}
	for _, name := range order {
		if _, done := f.ready[name]; done {
			continue
		}
		if err := f.systems[name].Initialize(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", systems.ErrInitializationFailed, name, err)
		}
		f.ready[name] = struct{}{}
	}
	f.order = order

	f.types = types
	f.loader = cfg.Loader
	f.finalizer = cfg.Finalizer
	f.treeFinalizer = cfg.TreeFinalizer

	f.initialized.Store(true)
	f.log.Info("entity factory initialized",
		log.Strings("systems", order),
		log.Int("def_types", f.types.Len()),
		log.Bool("loader", f.loader != nil),
		log.Bool("finalizer", f.finalizer != nil),
	)
	return nil
}

// Initialized reports whether Initialize has succeeded.
func (f *Factory) Initialized() bool {
	return f.initialized.Load()
}

// Types returns the discriminant table, or nil before a typed Initialize.
func (f *Factory) Types() *schema.TypeList {
	return f.types
}

// PerformReverseTypeLookup returns the discriminant for a def type hash, or
// 0 (NONE) if it is not in the type list.
func (f *Factory) PerformReverseTypeLookup(hash models.HashValue) int {
	return f.types.ReverseLookup(hash)
}

// SetCreateChildFn replaces the function used to create and link child
// entities. Nil restores the default, which creates children as unparented
// roots.
func (f *Factory) SetCreateChildFn(fn CreateChildFn) {
	f.createChild = fn
}

// GetBlueprintAsset returns the cached or freshly loaded asset for name.
func (f *Factory) GetBlueprintAsset(name string) (*assets.Asset, error) {
	return f.assets.Load(name)
}

func (f *Factory) systemFor(defType models.HashValue) systems.System {
	name, ok := f.typeMap[defType]
	if !ok {
		return nil
	}
	return f.systems[name]
}
