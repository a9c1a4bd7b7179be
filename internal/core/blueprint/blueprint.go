package blueprint

import (
	"github.com/zeusync/blueprint/internal/core/models"
)

// Component is one (def type, payload) entry of a Blueprint.
// Data is opaque here; only the owning system interprets it.
type Component struct {
	Type models.HashValue
	Data []byte
}

// Accessor returns the component at index. It lets a Blueprint read
// components straight out of an encoded buffer without materializing them.
type Accessor func(index int) (models.HashValue, []byte)

// Blueprint is a transient, ordered list of components describing one entity.
//
// A Blueprint is either a plain in-memory list built with Write, or a read
// view over an Accessor. Writing to an accessor-backed Blueprint copies the
// accessed components into memory first.
type Blueprint struct {
	accessor   Accessor
	count      int
	components []Component
}

// New returns an empty, writable Blueprint.
func New() *Blueprint {
	return &Blueprint{}
}

// FromAccessor returns a Blueprint whose count components are fetched lazily
// through fn.
func FromAccessor(fn Accessor, count int) *Blueprint {
	if fn == nil || count < 0 {
		count = 0
	}
	return &Blueprint{accessor: fn, count: count}
}

// FromComponents returns a writable Blueprint holding components in order.
func FromComponents(components ...Component) *Blueprint {
	bp := &Blueprint{components: make([]Component, 0, len(components))}
	bp.components = append(bp.components, components...)
	return bp
}

// Write appends a component. Insertion order is preserved.
func (b *Blueprint) Write(defType models.HashValue, data []byte) {
	b.materialize()
	b.components = append(b.components, Component{Type: defType, Data: data})
}

// Len returns the number of components.
func (b *Blueprint) Len() int {
	if b.accessor != nil {
		return b.count
	}
	return len(b.components)
}

// At returns the component at index i, or NoneHash and nil when i is out of range.
func (b *Blueprint) At(i int) (models.HashValue, []byte) {
	if i < 0 || i >= b.Len() {
		return models.NoneHash, nil
	}
	if b.accessor != nil {
		return b.accessor(i)
	}
	c := b.components[i]
	return c.Type, c.Data
}

// ForEachComponent calls fn for every component in order.
func (b *Blueprint) ForEachComponent(fn func(defType models.HashValue, data []byte)) {
	n := b.Len()
	for i := 0; i < n; i++ {
		fn(b.At(i))
	}
}

// Components returns a copy of the components in order.
func (b *Blueprint) Components() []Component {
	out := make([]Component, 0, b.Len())
	b.ForEachComponent(func(defType models.HashValue, data []byte) {
		out = append(out, Component{Type: defType, Data: data})
	})
	return out
}

// IsLazy reports whether components are still read through an accessor.
func (b *Blueprint) IsLazy() bool {
	return b.accessor != nil
}

func (b *Blueprint) materialize() {
	if b.accessor == nil {
		return
	}
	b.components = b.Components()
	b.accessor = nil
	b.count = 0
}
