package transform

import (
	"fmt"
	"slices"
	"sync"

	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/factory"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/observability/log"
	"github.com/zeusync/blueprint/internal/core/systems"
)

// Name is the system name used for dependency declarations.
const Name = "transform"

// Creator is the part of the entity factory the transform system needs to
// build child entities.
type Creator interface {
	Create() models.Entity
	PopulateTree(entity models.Entity, tree *blueprint.Tree) models.Entity
	SetCreateChildFn(fn factory.CreateChildFn)
}

// Transform is the per-entity state kept by the System.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Parent   models.Entity
	Children []models.Entity
}

// System stores positions and the parent/child hierarchy of entities.
type System struct {
	systems.Base

	log log.Log

	mu         sync.RWMutex
	transforms map[models.Entity]*Transform
}

var (
	_ systems.System      = (*System)(nil)
	_ systems.DefProvider = (*System)(nil)
)

func New(l log.Log) *System {
	if l == nil {
		l = log.NewNop()
	}
	return &System{
		Base:       systems.NewBase(Name),
		log:        l.Named(Name),
		transforms: make(map[models.Entity]*Transform),
	}
}

// Attach makes c link every child entity it creates under its parent.
func (s *System) Attach(c Creator) {
	c.SetCreateChildFn(func(parent models.Entity, tree *blueprint.Tree) models.Entity {
		child := c.Create()
		if child.IsNull() {
			return models.NullEntity
		}
		if c.PopulateTree(child, tree).IsNull() {
			return models.NullEntity
		}
		s.SetParent(child, parent)
		return child
	})
}

func (s *System) DefTypes() []models.HashValue {
	return []models.HashValue{DefType}
}

func (s *System) Create(entity models.Entity, defType models.HashValue, data []byte) error {
	if defType != DefType {
		return fmt.Errorf("%w: unexpected def type %d", ErrInvalidDef, defType)
	}
	var def Def
	if err := def.Deserialize(data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.node(entity)
	t.Position = def.Position
	t.Scale = def.Scale
	return nil
}

// Destroy removes entity, detaching it from its parent and orphaning its
// children.
func (s *System) Destroy(entity models.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transforms[entity]
	if !ok {
		return
	}
	s.unlink(entity, t)
	for _, child := range t.Children {
		if c, ok := s.transforms[child]; ok {
			c.Parent = models.NullEntity
		}
	}
	delete(s.transforms, entity)
}

// SetParent moves child under parent. A null parent detaches child.
func (s *System) SetParent(child, parent models.Entity) {
	if child.IsNull() || child == parent {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !parent.IsNull() && s.isAncestor(child, parent) {
		s.log.Warn("refusing to create transform cycle",
			log.Uint64("child", uint64(child)),
			log.Uint64("parent", uint64(parent)),
		)
		return
	}
	c := s.node(child)
	s.unlink(child, c)
	if parent.IsNull() {
		return
	}
	p := s.node(parent)
	p.Children = append(p.Children, child)
	c.Parent = parent
}

// Get returns a copy of the transform of entity.
func (s *System) Get(entity models.Entity) (Transform, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transforms[entity]
	if !ok {
		return Transform{}, false
	}
	out := *t
	out.Children = slices.Clone(t.Children)
	return out, true
}

func (s *System) Parent(entity models.Entity) models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.transforms[entity]; ok {
		return t.Parent
	}
	return models.NullEntity
}

func (s *System) Children(entity models.Entity) []models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.transforms[entity]; ok {
		return slices.Clone(t.Children)
	}
	return nil
}

// WorldPosition composes the positions and scales from the root down to
// entity.
func (s *System) WorldPosition(entity models.Entity) (Vec3, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transforms[entity]
	if !ok {
		return Zero, false
	}
	pos := t.Position
	for p := t.Parent; !p.IsNull(); {
		parent, ok := s.transforms[p]
		if !ok {
			break
		}
		pos = pos.Mul(parent.Scale).Add(parent.Position)
		p = parent.Parent
	}
	return pos, true
}

// Len returns the number of entities with a transform.
func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transforms)
}

func (s *System) node(entity models.Entity) *Transform {
	t, ok := s.transforms[entity]
	if !ok {
		t = &Transform{Scale: One}
		s.transforms[entity] = t
	}
	return t
}

func (s *System) unlink(entity models.Entity, t *Transform) {
	if t.Parent.IsNull() {
		return
	}
	if p, ok := s.transforms[t.Parent]; ok {
		p.Children = slices.DeleteFunc(p.Children, func(e models.Entity) bool { return e == entity })
	}
	t.Parent = models.NullEntity
}

func (s *System) isAncestor(ancestor, entity models.Entity) bool {
	for e := entity; !e.IsNull(); {
		if e == ancestor {
			return true
		}
		t, ok := s.transforms[e]
		if !ok {
			return false
		}
		e = t.Parent
	}
	return false
}
