package arbor

// Subtree creates a new, independent arena containing the node at index i and
// all of its descendants. The source arena is left untouched.
//
// Nodes are renumbered densely starting at 0, in pre-order discovery order;
// node i becomes the root of the copy and the copy's cursor is set to it.
// Child references pointing outside the set of discovered nodes are dropped.
func (a *Arena[V]) Subtree(i int) (*Arena[V], error) {
	if a == nil {
		return nil, ErrIllegalArguments
	}
	if !a.valid(i) {
		return nil, ErrIndexOutOfBounds
	}
	order := append([]int{i}, a.Descendants(i)...)
	renum := make(map[int]int, len(order))
	for k, old := range order {
		renum[old] = k
	}
	sub := NewWithCapacity[V](len(order))
	for k, old := range order {
		n := a.nodes[old]
		m := newNode(n.value, k, noParent)
		if k > 0 {
			p, ok := renum[n.parent]
			assert(ok, "subtree: parent of discovered node not discovered")
			m.parent = p
		}
		var children []int
		for _, ch := range n.children {
			if c, ok := renum[ch]; ok && c > 0 && a.nodes[ch].parent == old {
				children = append(children, c)
			}
		}
		m.setChildren(children)
		sub.nodes = append(sub.nodes, m)
	}
	sub.root = 0
	sub.cur = 0
	tracer().Debugf("arena: extracted subtree of #%d with %d nodes", i, sub.Len())
	return sub, nil
}
