package arbor

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// randomArena creates an arena of n nodes with random parents.
func randomArena(rnd *rand.Rand, n int, prefix string) *Arena[string] {
	a := NewWithCapacity[string](n)
	if n == 0 {
		return a
	}
	a.AddRootNode(prefix + "0")
	for i := 1; i < n; i++ {
		a.AddChildNodeTo(rnd.Intn(i), fmt.Sprintf("%s%d", prefix, i))
	}
	return a
}

func countRoots[V comparable](a *Arena[V]) int {
	roots := 0
	for _, n := range a.Nodes() {
		if !n.HasParent() {
			roots++
		}
	}
	return roots
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	for round := 0; round < 50; round++ {
		a := randomArena(rnd, 1+rnd.Intn(30), "a")
		for step := 0; step < 20; step++ {
			switch rnd.Intn(3) {
			case 0:
				b := randomArena(rnd, rnd.Intn(10), "b")
				lenA, lenB := a.Len(), b.Len()
				if err := a.Merge(b, rnd.Intn(a.Len())); err != nil {
					t.Fatal(err)
				}
				if a.Len() != lenA+lenB {
					t.Fatalf("merge size law violated: %d != %d + %d", a.Len(), lenA, lenB)
				}
			case 1:
				if err := a.SwapNodes(rnd.Intn(a.Len()), rnd.Intn(a.Len())); err != nil {
					t.Fatal(err)
				}
			case 2:
				i := rnd.Intn(a.Len())
				sub, err := a.Subtree(i)
				if err != nil {
					t.Fatal(err)
				}
				if sub.Len() != 1+len(a.Descendants(i)) {
					t.Fatalf("subtree of %d has %d nodes, expected %d", i, sub.Len(), 1+len(a.Descendants(i)))
				}
				if err := sub.Check(); err != nil {
					t.Fatalf("subtree: %v", err)
				}
			}
			if err := a.Check(); err != nil {
				t.Fatalf("round %d, step %d: %v", round, step, err)
			}
			if countRoots(a) != 1 {
				t.Fatalf("round %d, step %d: %d roots", round, step, countRoots(a))
			}
		}
	}
}

func TestRandomLineageEndsAtRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(42))
	a := randomArena(rnd, 100, "n")
	root, _ := a.RootIndex()
	for i := range a.Len() {
		lineage := a.LineageForIndex(i)
		if i == root {
			if lineage != nil {
				t.Errorf("expected empty lineage for root")
			}
			continue
		}
		if lineage[len(lineage)-1] != root {
			t.Errorf("lineage of %d does not end at root: %v", i, lineage)
		}
		if p, _ := a.ParentFromIndex(i); lineage[0] != p {
			t.Errorf("lineage of %d does not start with parent %d: %v", i, p, lineage)
		}
	}
}
