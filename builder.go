package arbor

import (
	"fmt"
	"maps"
	"slices"

	"github.com/npillmayer/arbor/payload"
)

// mapping is one key of a nested associative input, together with either a
// leaf value or the mappings of the next level.
type mapping struct {
	key      string
	leaf     string
	children []mapping
}

func (m mapping) description() payload.Description {
	return payload.Description{Name: m.key, DisplayName: m.leaf}
}

// FromMap2 creates an arena from a two-level mapping, e.g.
//
//	{"root": {"child1": "leaf1", "child2": "leaf2"}}
//
// Every key becomes a node carrying a payload.Description named after the key.
// Leaf values are not nodes of their own; they become the display name of the
// node for their key.
//
// The first top-level key becomes the root. Every further top-level key is
// built as an independent tree and merged as a child of the root, so the
// result is always a single connected tree. Go maps are unordered, therefore
// keys are visited in lexicographical order on every level.
//
// An empty mapping yields an empty arena.
func FromMap2(m map[string]map[string]string) *Arena[payload.Description] {
	return fromMappings(nest(leafs)(m))
}

// FromMap3 creates an arena from a three-level mapping. See FromMap2.
func FromMap3(m map[string]map[string]map[string]string) *Arena[payload.Description] {
	return fromMappings(nest(nest(leafs))(m))
}

// FromMap4 creates an arena from a four-level mapping. See FromMap2.
func FromMap4(m map[string]map[string]map[string]map[string]string) *Arena[payload.Description] {
	return fromMappings(nest(nest(nest(leafs)))(m))
}

// FromMap5 creates an arena from a five-level mapping. See FromMap2.
func FromMap5(m map[string]map[string]map[string]map[string]map[string]string) *Arena[payload.Description] {
	return fromMappings(nest(nest(nest(nest(leafs))))(m))
}

// FromMap6 creates an arena from a six-level mapping, as used for hierarchies
// like server → database → schema → table → column → type. See FromMap2.
func FromMap6(m map[string]map[string]map[string]map[string]map[string]map[string]string) *Arena[payload.Description] {
	return fromMappings(nest(nest(nest(nest(nest(leafs)))))(m))
}

// FromNested creates an arena from a nested mapping of arbitrary depth.
// Values must be strings (leafs), nil (leafs without value), or mappings of
// type map[string]any or map[string]string. Other value types result in
// ErrIllegalArguments and no arena is created.
//
// Construction follows the same rules as FromMap2.
func FromNested(m map[string]any) (*Arena[payload.Description], error) {
	ms, err := anyMappings(m)
	if err != nil {
		return nil, err
	}
	return fromMappings(ms), nil
}

// fromMappings builds the first top-level mapping in place and merges every
// other one into the root.
func fromMappings(ms []mapping) *Arena[payload.Description] {
	a := New[payload.Description]()
	for _, m := range ms {
		if a.IsEmpty() {
			_, err := a.AddRootNode(m.description())
			assert(err == nil, "builder: cannot add root to empty arena")
			appendMappings(a, m.children)
			continue
		}
		sub := New[payload.Description]()
		_, err := sub.AddRootNode(m.description())
		assert(err == nil, "builder: cannot add root to empty arena")
		appendMappings(sub, m.children)
		err = a.Merge(sub, 0)
		assert(err == nil, "builder: cannot merge into root")
	}
	if a.IsEmpty() {
		tracer().Debugf("arena builder: input is empty")
	}
	return a
}

// appendMappings appends ms as children of the node at the cursor. The cursor
// is moved to a child while its own children are appended and restored
// afterwards.
func appendMappings(a *Arena[payload.Description], ms []mapping) {
	for _, m := range ms {
		index, err := a.AddChildNode(m.description())
		assert(err == nil, "builder: cannot add child node")
		if len(m.children) == 0 {
			continue
		}
		save, _ := a.Cursor()
		_ = a.MoveTo(index)
		appendMappings(a, m.children)
		_ = a.MoveTo(save)
	}
}

// --- Input conversion ------------------------------------------------------

func level[T any](m map[string]T, down func(string, T) mapping) []mapping {
	if len(m) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(m))
	ms := make([]mapping, 0, len(keys))
	for _, k := range keys {
		ms = append(ms, down(k, m[k]))
	}
	return ms
}

func leafs(m map[string]string) []mapping {
	return level(m, func(k string, v string) mapping {
		return mapping{key: k, leaf: v}
	})
}

// nest lifts a conversion for level n to a conversion for level n+1.
func nest[T any](inner func(T) []mapping) func(map[string]T) []mapping {
	return func(m map[string]T) []mapping {
		return level(m, func(k string, v T) mapping {
			return mapping{key: k, children: inner(v)}
		})
	}
}

func anyMappings(m map[string]any) ([]mapping, error) {
	var err error
	ms := level(m, func(k string, v any) mapping {
		if err != nil {
			return mapping{}
		}
		switch x := v.(type) {
		case nil:
			return mapping{key: k}
		case string:
			return mapping{key: k, leaf: x}
		case map[string]string:
			return mapping{key: k, children: leafs(x)}
		case map[string]any:
			children, e := anyMappings(x)
			err = e
			return mapping{key: k, children: children}
		}
		err = fmt.Errorf("%w: value of type %T for key %q", ErrIllegalArguments, v, k)
		return mapping{}
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}
