package catalog

import (
	"fmt"
	"sync"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/payload"
)

// Systems holds the catalog tree of a single system. It is safe for
// concurrent use; the arena itself is only accessed through View and Update.
type Systems struct {
	mu     sync.RWMutex
	system payload.SystemType
	arena  *arbor.Arena[payload.Object]
}

// NewSystems creates a catalog tree for a system, with root as its root node.
func NewSystems(system payload.SystemType, root payload.Object) *Systems {
	a := arbor.New[payload.Object]()
	_, err := a.AddRootNode(root)
	if err != nil {
		panic(err) // a new arena is always empty
	}
	return &Systems{system: system, arena: a}
}

// System returns the type of system the tree describes.
func (s *Systems) System() payload.SystemType {
	return s.system
}

// Request creates a request for the children of the node at position i.
// It returns false if there is no node at i.
func (s *Systems) Request(i int) (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.arena.Node(i)
	if !ok {
		return Request{}, false
	}
	return Request{Position: i, System: s.system, Object: node.Value()}, true
}

// View calls f with the tree, holding a read lock. f must not modify the
// arena, including its cursor.
func (s *Systems) View(f func(a *arbor.Arena[payload.Object])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f(s.arena)
}

// Update calls f with the tree, holding the write lock.
func (s *Systems) Update(f func(a *arbor.Arena[payload.Object]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.arena)
}

// Fold folds the children reported for req into the tree. See Fold.
func (s *Systems) Fold(req Request, children []Child) ([]int, error) {
	if req.System != s.system {
		return nil, fmt.Errorf("%w: %s instead of %s", ErrSystemMismatch, req.System, s.system)
	}
	var indices []int
	err := s.Update(func(a *arbor.Arena[payload.Object]) error {
		var err error
		indices, err = Fold(a, req.Position, children)
		return err
	})
	return indices, err
}

// Snapshot returns an independent copy of the tree, renumbered in pre-order.
func (s *Systems) Snapshot() *arbor.Arena[payload.Object] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	root, _ := s.arena.RootIndex()
	snap, err := s.arena.Subtree(root)
	if err != nil {
		panic(err) // the root of a non-empty arena is always valid
	}
	return snap
}
