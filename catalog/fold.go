package catalog

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/payload"
)

var (
	// ErrSystemMismatch signals a request for a system different from the
	// one a tree describes.
	ErrSystemMismatch = errors.New("catalog: request for wrong system type")
	// ErrLoaderClosed is returned for requests to a closed loader.
	ErrLoaderClosed = errors.New("catalog: loader closed")
)

// Request asks a host for the children of the node at Position.
type Request struct {
	Position int                // index of the parent node within the arena
	System   payload.SystemType // system the arena describes
	Object   payload.Object     // payload of the parent node
}

// Child is a single object reported by a host. Position orders children
// below their parent; it is not an arena index.
type Child struct {
	Position int
	Object   payload.Object
}

// Host is an external system able to list the children of a catalog object.
type Host interface {
	Children(ctx context.Context, req Request) ([]Child, error)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(ctx context.Context, req Request) ([]Child, error)

// Children calls f(ctx, req).
func (f HostFunc) Children(ctx context.Context, req Request) ([]Child, error) {
	return f(ctx, req)
}

// Fold appends children as child nodes of parent, ordered by their Position.
// Children with equal positions keep the order in which the host reported
// them. Fold returns the arena indices of the new nodes, in insertion order.
//
// Fold either inserts all of the children or none: an invalid parent is
// reported as arbor.ErrIndexOutOfBounds and the arena is left unchanged.
func Fold(a *arbor.Arena[payload.Object], parent int, children []Child) ([]int, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil arena", arbor.ErrIllegalArguments)
	}
	if _, ok := a.Node(parent); !ok {
		return nil, fmt.Errorf("%w: cannot fold into node %d", arbor.ErrIndexOutOfBounds, parent)
	}
	if len(children) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(children)
	slices.SortStableFunc(sorted, func(x, y Child) int {
		return cmp.Compare(x.Position, y.Position)
	})
	indices := make([]int, 0, len(sorted))
	for _, ch := range sorted {
		i, err := a.AddChildNodeTo(parent, ch.Object)
		if err != nil { // cannot happen for a valid parent
			return indices, err
		}
		indices = append(indices, i)
	}
	tracer().Debugf("catalog: folded %d children into node %d", len(indices), parent)
	return indices, nil
}
