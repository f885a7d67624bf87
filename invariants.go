package arbor

import "fmt"

// Check validates the structural invariants of an arena: a single root,
// symmetric parent/child links, index validity and acyclicity.
//
// Check is intended for tests and debugging; it walks the whole arena.
func (a *Arena[V]) Check() error {
	if a == nil {
		return fmt.Errorf("%w: nil arena", ErrBrokenInvariant)
	}
	if len(a.nodes) == 0 {
		return nil
	}
	if !a.valid(a.root) {
		return fmt.Errorf("%w: root index %d out of range", ErrBrokenInvariant, a.root)
	}
	roots := 0
	for i, n := range a.nodes {
		if n.index != i {
			return fmt.Errorf("%w: node at position %d claims index %d", ErrBrokenInvariant, i, n.index)
		}
		if err := a.checkLinks(i, n); err != nil {
			return err
		}
		if !n.HasParent() {
			roots++
			if i != a.root {
				return fmt.Errorf("%w: node %d has no parent but root is %d", ErrBrokenInvariant, i, a.root)
			}
		}
	}
	if roots != 1 {
		return fmt.Errorf("%w: %d root nodes", ErrBrokenInvariant, roots)
	}
	for i := range a.nodes {
		if err := a.checkAcyclic(i); err != nil {
			return err
		}
	}
	return nil
}

func (a *Arena[V]) checkLinks(i int, n Node[V]) error {
	if n.children != nil && len(n.children) == 0 {
		return fmt.Errorf("%w: node %d has an empty, non-nil child list", ErrBrokenInvariant, i)
	}
	seen := make(map[int]bool, len(n.children))
	for _, ch := range n.children {
		if !a.valid(ch) {
			return fmt.Errorf("%w: node %d lists invalid child %d", ErrBrokenInvariant, i, ch)
		}
		if seen[ch] {
			return fmt.Errorf("%w: node %d lists child %d twice", ErrBrokenInvariant, i, ch)
		}
		seen[ch] = true
		if a.nodes[ch].parent != i {
			return fmt.Errorf("%w: child %d of node %d has parent %d", ErrBrokenInvariant,
				ch, i, a.nodes[ch].parent)
		}
	}
	if p, ok := n.Parent(); ok {
		if !a.valid(p) {
			return fmt.Errorf("%w: node %d has invalid parent %d", ErrBrokenInvariant, i, p)
		}
		if p == i {
			return fmt.Errorf("%w: node %d is its own parent", ErrBrokenInvariant, i)
		}
		count := 0
		for _, ch := range a.nodes[p].children {
			if ch == i {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("%w: parent %d lists node %d %d times", ErrBrokenInvariant, p, i, count)
		}
	}
	return nil
}

func (a *Arena[V]) checkAcyclic(i int) error {
	steps := 0
	p, ok := a.nodes[i].Parent()
	for ok {
		steps++
		if steps > len(a.nodes) {
			return fmt.Errorf("%w: cycle in parent links starting at node %d", ErrBrokenInvariant, i)
		}
		p, ok = a.nodes[p].Parent()
	}
	return nil
}
