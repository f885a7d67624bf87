package arbor

// Merge splices the arena other into a as a new child subtree of the node at
// index at.
//
// Every index of other is shifted by the length of a as it was before the
// merge, so that other's structure is preserved verbatim at the tail of a's
// storage. other's root becomes the last child of node at. If other is empty,
// Merge is a no-op.
//
// other is consumed: after a successful merge it is an empty arena with an
// unset cursor. The cursor of a is not changed.
func (a *Arena[V]) Merge(other *Arena[V], at int) error {
	if a == nil || other == a {
		return ErrIllegalArguments
	}
	if !a.valid(at) {
		return ErrIndexOutOfBounds
	}
	if other.IsEmpty() {
		return nil
	}
	offset := len(a.nodes)
	shift := func(x int) int { return x + offset }
	shifted := make([]Node[V], len(other.nodes))
	for k, n := range other.nodes {
		shifted[k] = n.relink(k+offset, shift)
	}
	newRoot := other.root + offset
	shifted[other.root].setParent(at)
	ok := a.nodes[at].addChild(newRoot)
	assert(ok, "merge: position of merged root already registered as child")
	a.nodes = append(a.nodes, shifted...)
	tracer().Debugf("arena: merged %d nodes as child #%d of #%d", len(shifted), newRoot, at)
	other.nodes = nil
	other.root = 0
	other.cur = noCursor
	return nil
}
