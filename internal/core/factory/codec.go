package factory

import (
	"bytes"
	"fmt"

	"github.com/zeusync/blueprint/internal/core/blueprint"
)

// Finalize encodes a single-level blueprint into a finished binary buffer.
func (f *Factory) Finalize(bp *blueprint.Blueprint) ([]byte, error) {
	if bp == nil {
		return nil, ErrNilBlueprint
	}
	if f.finalizer == nil {
		return nil, ErrNoFinalizer
	}
	if f.types == nil {
		return nil, ErrNoTypeList
	}

	b := f.builders.Get()
	defer f.builders.Put(b)

	offset, err := f.finalizer(b, bp, f.types)
	if err != nil {
		return nil, fmt.Errorf("finalize blueprint: %w", err)
	}
	b.Finish(offset)
	return bytes.Clone(b.FinishedBytes()), nil
}

// FinalizeTree encodes a blueprint hierarchy into a finished binary buffer.
func (f *Factory) FinalizeTree(t *blueprint.Tree) ([]byte, error) {
	if t == nil {
		return nil, ErrNilBlueprint
	}
	if f.treeFinalizer == nil {
		return nil, ErrNoFinalizer
	}
	if f.types == nil {
		return nil, ErrNoTypeList
	}

	b := f.builders.Get()
	defer f.builders.Put(b)

	offset, err := f.treeFinalizer(b, t, f.types)
	if err != nil {
		return nil, fmt.Errorf("finalize blueprint tree: %w", err)
	}
	b.Finish(offset)
	return bytes.Clone(b.FinishedBytes()), nil
}

// Load decodes raw blueprint data with the configured loader without
// creating anything.
func (f *Factory) Load(data []byte) (*blueprint.Tree, error) {
	if f.loader == nil {
		return nil, ErrNoLoader
	}
	if f.types == nil {
		return nil, ErrNoTypeList
	}
	return f.loader(data, f.types)
}
