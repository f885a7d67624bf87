package arbor

// SwapNodes exchanges the payload, parent link and child list of the nodes at
// positions i and j. Every node referring to i or j, be it as a parent or as a
// child, is rewritten to refer to the other position. Effectively the two
// nodes trade places in storage while the tree keeps its shape.
//
// All updated nodes are computed before any of them is written back, so a
// failed precondition leaves the arena untouched. SwapNodes is an involution:
// swapping i and j twice restores the original arena. The cursor keeps its
// position.
func (a *Arena[V]) SwapNodes(i, j int) error {
	if a == nil {
		return ErrIllegalArguments
	}
	if !a.valid(i) || !a.valid(j) {
		tracer().Errorf("arena: cannot swap #%d and #%d in arena of size %d", i, j, a.Len())
		return ErrIndexOutOfBounds
	}
	if i == j {
		return nil
	}
	perm := func(x int) int {
		switch x {
		case i:
			return j
		case j:
			return i
		}
		return x
	}
	// collect every node holding a reference to i or j
	neighbours := make(map[int]bool)
	for _, x := range []int{i, j} {
		n := a.nodes[x]
		if n.parent != noParent {
			neighbours[n.parent] = true
		}
		for _, ch := range n.children {
			neighbours[ch] = true
		}
	}
	delete(neighbours, i)
	delete(neighbours, j)
	updates := make(map[int]Node[V], len(neighbours)+2)
	for x := range neighbours {
		updates[x] = a.nodes[x].relink(x, perm)
	}
	updates[i] = a.nodes[j].relink(i, perm)
	updates[j] = a.nodes[i].relink(j, perm)
	for x, n := range updates {
		a.nodes[x] = n
	}
	a.root = perm(a.root)
	tracer().Debugf("arena: swapped #%d and #%d", i, j)
	return nil
}
