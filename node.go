package arbor

import (
	"fmt"
	"slices"
)

// noParent marks a root node.
const noParent = -1

// Node is a single position of an arena tree. It carries a payload value,
// its own index, an optional parent index and an optional list of child
// indices.
//
// Nodes are handed out by value; modifying a copy has no effect on the arena
// it came from. All mutation of the tree structure goes through Arena.
type Node[V comparable] struct {
	index    int
	value    V
	parent   int   // noParent for the root
	children []int // nil when childless
}

func newNode[V comparable](value V, index int, parent int) Node[V] {
	return Node[V]{
		index:  index,
		value:  value,
		parent: parent,
	}
}

// Index returns the position of the node within its arena.
func (n Node[V]) Index() int {
	return n.index
}

// Value returns the payload of the node.
func (n Node[V]) Value() V {
	return n.value
}

// Parent returns the index of the parent node. The second return value is
// false for the root.
func (n Node[V]) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}
	return n.parent, true
}

// HasParent is true for every node but the root.
func (n Node[V]) HasParent() bool {
	return n.parent != noParent
}

// Children returns the indices of the child nodes in insertion order, or nil
// if the node has no children. The returned slice is a copy.
func (n Node[V]) Children() []int {
	if len(n.children) == 0 {
		return nil
	}
	return slices.Clone(n.children)
}

// ChildCount returns the number of children.
func (n Node[V]) ChildCount() int {
	return len(n.children)
}

// IsLeaf is true if the node has no children.
func (n Node[V]) IsLeaf() bool {
	return len(n.children) == 0
}

func (n Node[V]) String() string {
	return fmt.Sprintf("%v", n.value)
}

// --- Mutators, used by Arena only ------------------------------------------

// addChild appends a child index. Adding an index twice is ignored.
func (n *Node[V]) addChild(index int) bool {
	if slices.Contains(n.children, index) {
		return false
	}
	n.children = append(n.children, index)
	return true
}

func (n *Node[V]) setParent(index int) {
	n.parent = index
}

func (n *Node[V]) setChildren(children []int) {
	if len(children) == 0 {
		n.children = nil
		return
	}
	n.children = children
}

// relink returns a copy of n with its own index set to index and every
// reference mapped through f. The copy does not share its child list with n.
func (n Node[V]) relink(index int, f func(int) int) Node[V] {
	m := Node[V]{
		index:  index,
		value:  n.value,
		parent: noParent,
	}
	if n.parent != noParent {
		m.parent = f(n.parent)
	}
	if len(n.children) > 0 {
		m.children = make([]int, len(n.children))
		for k, ch := range n.children {
			m.children[k] = f(ch)
		}
	}
	return m
}
