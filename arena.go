package arbor

/*
BSD 3-Clause License

Copyright (c) 2024–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"
)

const noCursor = -1

// Arena is an index-addressed tree. It owns a dense sequence of nodes and a
// cursor ("current position") used by the append-oriented construction API.
//
// An Arena created by
//
//	Arena[V]{}
//
// is not valid, clients must use New or NewWithCapacity.
//
// Operations on arenas have the following characteristics, with n being the
// number of nodes and k the size of a subtree:
//
//	Operation          |  Complexity
//	-------------------+------------
//	Node / Parent      |   O(1)
//	AddChildNode       |   O(children of cursor)
//	Lineage            |   O(depth)
//	NodeByValue        |   O(n)
//	Subtree            |   O(k)
//	Merge              |   O(size of merged arena)
//	SwapNodes          |   O(children of both nodes)
type Arena[V comparable] struct {
	nodes []Node[V]
	root  int // index of the root node, undefined for an empty arena
	cur   int // cursor, noCursor if unset
}

// New creates an empty arena. No node exists yet and the cursor is unset.
func New[V comparable]() *Arena[V] {
	return &Arena[V]{cur: noCursor}
}

// NewWithCapacity creates an empty arena with a capacity hint for the node
// storage.
func NewWithCapacity[V comparable](n int) *Arena[V] {
	if n < 0 {
		n = 0
	}
	return &Arena[V]{
		nodes: make([]Node[V], 0, n),
		cur:   noCursor,
	}
}

// Len returns the number of nodes in the arena.
func (a *Arena[V]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.nodes)
}

// IsEmpty is true for an arena without any nodes.
func (a *Arena[V]) IsEmpty() bool {
	return a.Len() == 0
}

func (a *Arena[V]) valid(i int) bool {
	return i >= 0 && i < a.Len()
}

// --- Construction ----------------------------------------------------------

// AddRootNode appends the root node of the tree and moves the cursor to it.
//
// An arena may have a single root only. Calling AddRootNode on a non-empty
// arena is rejected with ErrRootExists and leaves the arena unchanged. To
// combine trees, use Merge.
func (a *Arena[V]) AddRootNode(value V) (int, error) {
	if a == nil {
		return 0, ErrIllegalArguments
	}
	if len(a.nodes) > 0 {
		tracer().Infof("arena: refusing to add a second root")
		return 0, ErrRootExists
	}
	a.nodes = append(a.nodes, newNode(value, 0, noParent))
	a.root = 0
	a.cur = 0
	tracer().Debugf("arena: added root %v", value)
	return 0, nil
}

// AddChildNode appends a new node as a child of the node at the cursor
// position. The cursor is left unchanged, i.e. it still points to the parent.
// The index of the new node is returned.
//
// If the cursor is unset, ErrNoCursor is returned. If the cursor has been
// advanced past the last node, ErrIndexOutOfBounds is returned.
func (a *Arena[V]) AddChildNode(value V) (int, error) {
	if a == nil {
		return 0, ErrIllegalArguments
	}
	if a.cur == noCursor {
		return 0, ErrNoCursor
	}
	return a.AddChildNodeTo(a.cur, value)
}

// AddChildNodeTo appends a new node as a child of the node at index parent.
// The cursor is not touched.
func (a *Arena[V]) AddChildNodeTo(parent int, value V) (int, error) {
	if a == nil {
		return 0, ErrIllegalArguments
	}
	if !a.valid(parent) {
		return 0, ErrIndexOutOfBounds
	}
	index := len(a.nodes)
	a.nodes = append(a.nodes, newNode(value, index, parent))
	ok := a.nodes[parent].addChild(index)
	assert(ok, "arena: fresh node index already registered as child")
	tracer().Debugf("arena: added node #%d %v as child of #%d", index, value, parent)
	return index, nil
}

// --- Cursor ----------------------------------------------------------------

// Cursor returns the current position. The second return value is false if
// the cursor has not been set.
//
// Note that the cursor may point beyond the last node after Advance.
func (a *Arena[V]) Cursor() (int, bool) {
	if a == nil || a.cur == noCursor {
		return 0, false
	}
	return a.cur, true
}

// Advance moves the cursor to the next position in storage order, or to
// position 0 if the cursor is unset.
//
// This is index arithmetic, not tree navigation: the next position is not
// necessarily a sibling or a child of the current one. Clients have to know
// the insertion order they produced.
func (a *Arena[V]) Advance() {
	if a == nil {
		return
	}
	if a.cur == noCursor {
		a.cur = 0
		return
	}
	a.cur++
}

// MoveToParent moves the cursor to the parent of the current node. It is a
// no-op if the cursor is unset, invalid, or at the root.
func (a *Arena[V]) MoveToParent() {
	if p, ok := a.Parent(); ok {
		a.cur = p
	}
}

// MoveTo moves the cursor to an explicit position. Clients use it to save
// and restore the cursor around nested insertions.
func (a *Arena[V]) MoveTo(i int) error {
	if !a.valid(i) {
		return ErrIndexOutOfBounds
	}
	a.cur = i
	return nil
}

// Current returns the node at the cursor position.
func (a *Arena[V]) Current() (Node[V], bool) {
	if a == nil || a.cur == noCursor {
		return Node[V]{}, false
	}
	return a.Node(a.cur)
}

// CurrentChildren returns the children of the node at the cursor position,
// or nil if the cursor is unset or the node is childless.
func (a *Arena[V]) CurrentChildren() []Node[V] {
	if a == nil || a.cur == noCursor {
		return nil
	}
	return a.Children(a.cur)
}

// --- Access ----------------------------------------------------------------

// Node returns the node at index i.
func (a *Arena[V]) Node(i int) (Node[V], bool) {
	if a == nil || !a.valid(i) {
		return Node[V]{}, false
	}
	return a.nodes[i], true
}

// Root returns the root node of the arena. For an empty arena the second
// return value is false.
func (a *Arena[V]) Root() (Node[V], bool) {
	if a.IsEmpty() {
		return Node[V]{}, false
	}
	return a.nodes[a.root], true
}

// RootIndex returns the index of the root node.
func (a *Arena[V]) RootIndex() (int, bool) {
	if a.IsEmpty() {
		return 0, false
	}
	return a.root, true
}

// Parent returns the index of the parent of the node at the cursor position.
func (a *Arena[V]) Parent() (int, bool) {
	if a == nil || a.cur == noCursor {
		return 0, false
	}
	return a.ParentFromIndex(a.cur)
}

// ParentFromIndex returns the index of the parent of the node at index i.
// The second return value is false for the root and for invalid indices.
func (a *Arena[V]) ParentFromIndex(i int) (int, bool) {
	if a == nil || !a.valid(i) {
		return 0, false
	}
	return a.nodes[i].Parent()
}

// Children returns copies of the child nodes of node i in insertion order.
func (a *Arena[V]) Children(i int) []Node[V] {
	if a == nil || !a.valid(i) || a.nodes[i].IsLeaf() {
		return nil
	}
	children := make([]Node[V], 0, len(a.nodes[i].children))
	for _, ch := range a.nodes[i].children {
		children = append(children, a.nodes[ch])
	}
	return children
}

// Descendants returns the indices of all descendants of node i in pre-order,
// excluding i itself.
func (a *Arena[V]) Descendants(i int) []int {
	if a == nil || !a.valid(i) {
		return nil
	}
	var desc []int
	seen := make(map[int]bool)
	seen[i] = true
	stack := reversed(a.nodes[i].children)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !a.valid(top) || seen[top] {
			continue
		}
		seen[top] = true
		desc = append(desc, top)
		stack = append(stack, reversed(a.nodes[top].children)...)
	}
	return desc
}

// Nodes returns an iterator over all nodes in storage order.
func (a *Arena[V]) Nodes() iter.Seq2[int, Node[V]] {
	return func(yield func(int, Node[V]) bool) {
		if a == nil {
			return
		}
		for i, n := range a.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// --- Lineage ---------------------------------------------------------------

// LineageForIndex returns the indices of the ancestors of node i, starting
// with the immediate parent and ending with the root. The lineage of the root
// and of invalid indices is nil.
func (a *Arena[V]) LineageForIndex(i int) []int {
	if a == nil || !a.valid(i) {
		return nil
	}
	var lineage []int
	p, ok := a.nodes[i].Parent()
	for ok {
		lineage = append(lineage, p)
		assert(len(lineage) <= len(a.nodes), "arena: cycle in parent links")
		p, ok = a.nodes[p].Parent()
	}
	return lineage
}

// Lineage returns the lineage of the node at the cursor position.
func (a *Arena[V]) Lineage() []int {
	if a == nil || a.cur == noCursor {
		return nil
	}
	return a.LineageForIndex(a.cur)
}

// Depth returns the number of ancestors of node i.
func (a *Arena[V]) Depth(i int) int {
	return len(a.LineageForIndex(i))
}

// IsAncestor reports whether node anc is an ancestor of node i.
func (a *Arena[V]) IsAncestor(anc, i int) bool {
	for _, p := range a.LineageForIndex(i) {
		if p == anc {
			return true
		}
	}
	return false
}

// --- Lookup ----------------------------------------------------------------

// NodeByValueFromIndex returns the index of the first node at or after
// position start, in storage order, whose value equals value.
//
// This is a linear scan; no secondary index is maintained.
func (a *Arena[V]) NodeByValueFromIndex(value V, start int) (int, bool) {
	if a == nil {
		return 0, false
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < len(a.nodes); i++ {
		if a.nodes[i].value == value {
			return i, true
		}
	}
	return 0, false
}

// NodeByValue returns the index of the first node whose value equals value.
func (a *Arena[V]) NodeByValue(value V) (int, bool) {
	return a.NodeByValueFromIndex(value, 0)
}

// FindNode returns the index of the first node, in storage order, for which
// match returns true.
func (a *Arena[V]) FindNode(match func(V) bool) (int, bool) {
	if a == nil || match == nil {
		return 0, false
	}
	for i, n := range a.nodes {
		if match(n.value) {
			return i, true
		}
	}
	return 0, false
}

// --- Display ---------------------------------------------------------------

// String renders the arena line by line in storage order. Every line is
// indented by as many tab characters as the node has ancestors.
func (a *Arena[V]) String() string {
	if a.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for i, n := range a.nodes {
		sb.WriteString(strings.Repeat("\t", a.Depth(i)))
		sb.WriteString(n.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helpers ---------------------------------------------------------------

func reversed(s []int) []int {
	r := make([]int, len(s))
	for i, x := range s {
		r[len(s)-1-i] = x
	}
	return r
}
