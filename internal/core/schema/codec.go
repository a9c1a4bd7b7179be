package schema

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/models"
)

// Load decodes an encoded EntityDef into a blueprint Tree.
//
// Children are decoded eagerly, components lazily: each node reads its
// ComponentDef records out of data only when they are accessed. A record
// with an unknown discriminant, or one that cannot be read, comes back as
// models.NoneHash so the caller skips it. data must outlive the Tree.
func Load(data []byte, types *TypeList) (tree *blueprint.Tree, err error) {
	if types.Len() == 0 {
		return nil, ErrNoTypeList
	}
	if len(data) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedData, len(data))
	}
	if root := flatbuffers.GetUOffsetT(data); int(root)+flatbuffers.SizeUOffsetT > len(data) {
		return nil, fmt.Errorf("%w: root offset %d out of range", ErrMalformedData, root)
	}

	defer func() {
		if r := recover(); r != nil {
			tree, err = nil, fmt.Errorf("%w: %v", ErrMalformedData, r)
		}
	}()
	d := decoder{types: types, budget: len(data) / flatbuffers.SizeUOffsetT}
	return d.tree(GetRootAsEntityDef(data, 0), 0)
}

// maxDepth bounds the nesting of decoded children.
const maxDepth = 256

// decoder walks an EntityDef hierarchy. Every record occupies at least
// SizeUOffsetT bytes, so budget caps the number of nodes a buffer can yield
// and offsets that point back into already visited records cannot loop.
type decoder struct {
	types  *TypeList
	budget int
}

func (d *decoder) tree(def *EntityDef, depth int) (*blueprint.Tree, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformedData, maxDepth)
	}
	if d.budget--; d.budget < 0 {
		return nil, fmt.Errorf("%w: more records than the buffer can hold", ErrMalformedData)
	}
	if !def.vectorFits(entityDefComponentsSlot) {
		return nil, fmt.Errorf("%w: components vector out of range", ErrMalformedData)
	}
	if !def.vectorFits(entityDefChildrenSlot) {
		return nil, fmt.Errorf("%w: children vector out of range", ErrMalformedData)
	}

	var children []*blueprint.Tree
	for i, n := 0, def.ChildrenLength(); i < n; i++ {
		child := &EntityDef{}
		if !def.Children(child, i) {
			continue
		}
		t, err := d.tree(child, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, t)
	}
	return blueprint.NewTreeFromAccessor(componentAccessor(def, d.types), def.ComponentsLength(), children), nil
}

func componentAccessor(def *EntityDef, types *TypeList) blueprint.Accessor {
	return func(index int) (hash models.HashValue, data []byte) {
		defer func() {
			if recover() != nil {
				hash, data = models.NoneHash, nil
			}
		}()
		var component ComponentDef
		if !def.Components(&component, index) {
			return models.NoneHash, nil
		}
		hash = types.Lookup(int(component.DefType()))
		if hash == models.NoneHash {
			return models.NoneHash, nil
		}
		return hash, component.DefBytes()
	}
}

// Finalize writes bp as an EntityDef record and returns its offset. It does
// not finish the buffer, so the record can be nested in an enclosing one.
// Def types missing from types are written as NONE.
func Finalize(b *flatbuffers.Builder, bp *blueprint.Blueprint, types *TypeList) (flatbuffers.UOffsetT, error) {
	if bp == nil {
		return 0, ErrNilBlueprint
	}
	if types.Len() == 0 {
		return 0, ErrNoTypeList
	}
	components := writeComponents(b, bp, types)
	return writeEntityDef(b, components, 0), nil
}

// FinalizeTree writes t and all of its descendants, children nested under
// the children vector of their parent record.
func FinalizeTree(b *flatbuffers.Builder, t *blueprint.Tree, types *TypeList) (flatbuffers.UOffsetT, error) {
	if t == nil {
		return 0, ErrNilBlueprint
	}
	if types.Len() == 0 {
		return 0, ErrNoTypeList
	}
	return writeTree(b, t, types), nil
}

func writeTree(b *flatbuffers.Builder, t *blueprint.Tree, types *TypeList) flatbuffers.UOffsetT {
	var children flatbuffers.UOffsetT
	if kids := t.Children(); len(kids) > 0 {
		offsets := make([]flatbuffers.UOffsetT, len(kids))
		for i, child := range kids {
			offsets[i] = writeTree(b, child, types)
		}
		children = writeOffsetVector(b, offsets)
	}
	components := writeComponents(b, &t.Blueprint, types)
	return writeEntityDef(b, components, children)
}

// writeComponents is the first pass: every component becomes a
// ComponentDef{def_type, def} record, collected into a vector.
func writeComponents(b *flatbuffers.Builder, bp *blueprint.Blueprint, types *TypeList) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, 0, bp.Len())
	bp.ForEachComponent(func(defType models.HashValue, data []byte) {
		discriminant := uint16(types.ReverseLookup(defType))

		var def flatbuffers.UOffsetT
		if len(data) > 0 {
			def = b.CreateByteVector(data)
		}

		b.StartObject(componentDefFields)
		if def != 0 {
			b.PrependUOffsetTSlot(componentDefDataSlot, def, 0)
		}
		b.PrependUint16Slot(componentDefTypeSlot, discriminant, 0)
		offsets = append(offsets, b.EndObject())
	})
	return writeOffsetVector(b, offsets)
}

// writeEntityDef is the second pass: the record holding the component vector
// and, when present, the children vector.
func writeEntityDef(b *flatbuffers.Builder, components, children flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartObject(entityDefFields)
	if children != 0 {
		b.PrependUOffsetTSlot(entityDefChildrenSlot, children, 0)
	}
	b.PrependUOffsetTSlot(entityDefComponentsSlot, components, 0)
	return b.EndObject()
}

func writeOffsetVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}
