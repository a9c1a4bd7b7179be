package factory

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/schema"
)

// LoaderFn decodes raw blueprint bytes into a Tree, resolving discriminants
// through types.
type LoaderFn func(data []byte, types *schema.TypeList) (*blueprint.Tree, error)

// FinalizerFn writes bp into b and returns the offset of the written record
// without finishing the buffer.
type FinalizerFn func(b *flatbuffers.Builder, bp *blueprint.Blueprint, types *schema.TypeList) (flatbuffers.UOffsetT, error)

// TreeFinalizerFn is FinalizerFn for a whole hierarchy.
type TreeFinalizerFn func(b *flatbuffers.Builder, t *blueprint.Tree, types *schema.TypeList) (flatbuffers.UOffsetT, error)

// CreateChildFn creates the entity for tree and links it under parent.
type CreateChildFn func(parent models.Entity, tree *blueprint.Tree) models.Entity

// Config is the second initialization phase. The zero Config is the basic
// initialization: systems only, no binary support. Any subset of the codec
// functions may be set.
type Config struct {
	// TypeNames lists def type names in discriminant order; TypeNames[0] is
	// the NONE slot. Ignored when Types is set.
	TypeNames []string
	// Types is an explicit discriminant table.
	Types *schema.TypeList

	Loader        LoaderFn
	Finalizer     FinalizerFn
	TreeFinalizer TreeFinalizerFn
}

// DefaultConfig is the full initialization using the EntityDef/ComponentDef
// schema for both directions.
func DefaultConfig(typeNames []string) Config {
	return Config{
		TypeNames:     typeNames,
		Loader:        schema.Load,
		Finalizer:     schema.Finalize,
		TreeFinalizer: schema.FinalizeTree,
	}
}

func (c Config) typeList() (*schema.TypeList, error) {
	if c.Types != nil {
		return c.Types, nil
	}
	if len(c.TypeNames) == 0 {
		return nil, nil
	}
	return schema.NewTypeList(c.TypeNames)
}
