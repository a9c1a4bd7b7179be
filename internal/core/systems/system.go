package systems

import (
	"context"

	"github.com/zeusync/blueprint/internal/core/models"
)

// System owns the components of one domain (transform, render, physics, ...).
// The factory dispatches each blueprint component to the System registered
// for its def type and never interprets the payload itself.
type System interface {
	// Identity

	Name() string

	// Dependencies lists the names of systems that must be initialized first.
	Dependencies() []string

	// Lifecycle

	Initialize(ctx context.Context) error

	// Components

	// Create attaches the component described by def to entity.
	Create(entity models.Entity, defType models.HashValue, def []byte) error
	// Destroy detaches every component the system holds for entity.
	// Entities the system does not know are ignored.
	Destroy(entity models.Entity)
}

// PostCreateIniter is implemented by systems that need a second pass once all
// components of an entity have been attached.
type PostCreateIniter interface {
	PostCreateInit(entity models.Entity, defType models.HashValue, def []byte) error
}

// DefProvider is implemented by systems that know which def types they own.
// The factory registers them when the system is added.
type DefProvider interface {
	DefTypes() []models.HashValue
}

// Base provides no-op Dependencies and Initialize for embedding.
type Base struct {
	name string
	deps []string
}

func NewBase(name string, dependencies ...string) Base {
	return Base{name: name, deps: dependencies}
}

func (b Base) Name() string                     { return b.name }
func (b Base) Dependencies() []string           { return b.deps }
func (b Base) Initialize(context.Context) error { return nil }
