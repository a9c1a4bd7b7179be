package factory

import (
	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/systems"
)

// Create returns a new entity without components. It is safe for concurrent
// use. Before Initialize it returns models.NullEntity.
func (f *Factory) Create() models.Entity {
	if !f.initialized.Load() {
		f.log.Error("cannot create entity", log.Error(ErrNotInitialized))
		return models.NullEntity
	}
	f.mu.Lock()
	f.nextEntity++
	entity := f.nextEntity
	f.mu.Unlock()
	f.stats.entitiesCreated.Add(1)
	return entity
}

// CreateByName creates an entity from the blueprint asset called name.
func (f *Factory) CreateByName(name string) models.Entity {
	entity := f.Create()
	if entity.IsNull() {
		return models.NullEntity
	}
	return f.Populate(entity, name)
}

// CreateWithBlueprint creates an entity holding the components of bp.
func (f *Factory) CreateWithBlueprint(bp *blueprint.Blueprint) models.Entity {
	if bp == nil {
		f.log.Error("cannot create entity", log.Error(ErrNilBlueprint))
		return models.NullEntity
	}
	entity := f.Create()
	if entity.IsNull() {
		return models.NullEntity
	}
	f.composeComponents(entity, bp)
	f.publish(EventEntityCreated, entity, "")
	return entity
}

// CreateWithTree creates the hierarchy described by t and returns its root.
func (f *Factory) CreateWithTree(t *blueprint.Tree) models.Entity {
	if t == nil {
		f.log.Error("cannot create entity", log.Error(ErrNilBlueprint))
		return models.NullEntity
	}
	entity := f.Create()
	if entity.IsNull() {
		return models.NullEntity
	}
	return f.PopulateTree(entity, t)
}

// Populate attaches the components of the blueprint asset called name to an
// existing entity, which should not have components yet. It returns entity,
// or models.NullEntity if the blueprint could not be loaded.
func (f *Factory) Populate(entity models.Entity, name string) models.Entity {
	if entity.IsNull() {
		f.log.Error("cannot populate null entity", log.String("blueprint", name))
		return models.NullEntity
	}
	asset, err := f.GetBlueprintAsset(name)
	if err != nil {
		f.stats.blueprintFailures.Add(1)
		f.log.Warn("could not load entity blueprint",
			log.String("blueprint", name),
			log.Error(err),
		)
		return models.NullEntity
	}
	if !f.createFromData(entity, name, asset.Data()) {
		return models.NullEntity
	}
	return entity
}

// PopulateTree attaches the hierarchy described by t to an existing entity.
func (f *Factory) PopulateTree(entity models.Entity, t *blueprint.Tree) models.Entity {
	if entity.IsNull() {
		f.log.Error("cannot populate null entity")
		return models.NullEntity
	}
	if t == nil {
		f.log.Error("cannot populate entity", log.Uint64("entity", uint64(entity)), log.Error(ErrNilBlueprint))
		return models.NullEntity
	}
	f.composeTree(entity, t)
	f.publish(EventEntityCreated, entity, "")
	return entity
}

// CreateFromBlueprint creates an entity from raw encoded blueprint data and
// records name as its origin.
func (f *Factory) CreateFromBlueprint(data []byte, name string) models.Entity {
	entity := f.Create()
	if entity.IsNull() {
		return models.NullEntity
	}
	if !f.createFromData(entity, name, data) {
		return models.NullEntity
	}
	return entity
}

func (f *Factory) createFromData(entity models.Entity, name string, data []byte) bool {
	if f.loader == nil {
		f.stats.blueprintFailures.Add(1)
		f.log.Error("cannot decode blueprint", log.String("blueprint", name), log.Error(ErrNoLoader))
		return false
	}
	if f.types == nil {
		f.stats.blueprintFailures.Add(1)
		f.log.Error("cannot decode blueprint", log.String("blueprint", name), log.Error(ErrNoTypeList))
		return false
	}
	tree, err := f.loader(data, f.types)
	if err != nil {
		f.stats.blueprintFailures.Add(1)
		f.log.Warn("could not decode blueprint",
			log.String("blueprint", name),
			log.Error(err),
		)
		return false
	}
	f.composeTree(entity, tree)
	if name != "" {
		f.blueprints[entity] = name
	}
	f.publish(EventEntityCreated, entity, name)
	return true
}

func (f *Factory) composeTree(entity models.Entity, t *blueprint.Tree) {
	f.composeComponents(entity, &t.Blueprint)

	createChild := f.createChild
	if createChild == nil {
		createChild = f.createUnparentedChild
	}
	for _, child := range t.Children() {
		if createChild(entity, child).IsNull() {
			f.log.Warn("could not create child entity", log.Uint64("parent", uint64(entity)))
		}
	}
}

func (f *Factory) createUnparentedChild(_ models.Entity, t *blueprint.Tree) models.Entity {
	return f.CreateWithTree(t)
}

type attachedComponent struct {
	system  systems.System
	defType models.HashValue
	def     []byte
}

// composeComponents hands every component of bp to its system, in order.
// A component whose def type has no system, or that its system rejects, is
// skipped; the rest still get attached.
func (f *Factory) composeComponents(entity models.Entity, bp *blueprint.Blueprint) {
	n := bp.Len()
	var attached []attachedComponent
	for i := 0; i < n; i++ {
		defType, def := bp.At(i)
		system := f.systemFor(defType)
		if system == nil {
			f.stats.componentsSkipped.Add(1)
			level := log.LevelWarn
			if defType == models.NoneHash {
				level = log.LevelDebug
			}
			f.log.Log(level, "no system for def type, skipping component",
				log.Uint64("entity", uint64(entity)),
				log.Uint64("def_type", uint64(defType)),
				log.Int("index", i),
			)
			continue
		}
		if err := system.Create(entity, defType, def); err != nil {
			f.stats.componentsRejected.Add(1)
			f.log.Warn("system rejected component",
				log.Uint64("entity", uint64(entity)),
				log.String("system", system.Name()),
				log.Uint64("def_type", uint64(defType)),
				log.Error(err),
			)
			continue
		}
		f.stats.componentsAttached.Add(1)
		attached = append(attached, attachedComponent{system: system, defType: defType, def: def})
	}

	for _, c := range attached {
		p, ok := c.system.(systems.PostCreateIniter)
		if !ok {
			continue
		}
		if err := p.PostCreateInit(entity, c.defType, c.def); err != nil {
			f.log.Warn("post create init failed",
				log.Uint64("entity", uint64(entity)),
				log.String("system", c.system.Name()),
				log.Error(err),
			)
		}
	}
}
