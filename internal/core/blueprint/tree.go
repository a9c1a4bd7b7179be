package blueprint

import "slices"

// Tree is a Blueprint plus ordered child Trees, describing an entity
// hierarchy in pre-order. Children is never nil-dereferenced: a leaf simply
// has no children.
type Tree struct {
	Blueprint
	children []*Tree
}

// NewTree returns an empty, writable Tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewTreeFromAccessor returns a Tree whose own components are read lazily.
func NewTreeFromAccessor(fn Accessor, count int, children []*Tree) *Tree {
	return &Tree{
		Blueprint: *FromAccessor(fn, count),
		children:  children,
	}
}

// TreeFromBlueprint wraps a copy of bp as a childless Tree node.
func TreeFromBlueprint(bp *Blueprint) *Tree {
	if bp == nil {
		return NewTree()
	}
	t := &Tree{Blueprint: *bp}
	t.components = slices.Clone(bp.components)
	return t
}

// Children returns the child nodes in order.
func (t *Tree) Children() []*Tree {
	return t.children
}

// NewChild appends an empty child node and returns it.
func (t *Tree) NewChild() *Tree {
	child := NewTree()
	t.children = append(t.children, child)
	return child
}

// AddChild appends an existing child node. Nil children are ignored.
func (t *Tree) AddChild(child *Tree) {
	if child == nil {
		return
	}
	t.children = append(t.children, child)
}

// Walk visits t and every descendant in pre-order with its depth.
func (t *Tree) Walk(fn func(node *Tree, depth int)) {
	t.walk(fn, 0)
}

func (t *Tree) walk(fn func(node *Tree, depth int), depth int) {
	fn(t, depth)
	for _, child := range t.children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree, including t.
func (t *Tree) Count() int {
	n := 0
	t.Walk(func(*Tree, int) { n++ })
	return n
}
