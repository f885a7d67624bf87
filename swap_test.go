package arbor

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSwapSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	a := sampleArena(t)
	if err := a.SwapNodes(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
	n1, _ := a.Node(1)
	if n1.Value() != "b" || !slices.Equal(n1.Children(), []int{5}) {
		t.Errorf("expected b with child 5 at 1, have %q %v", n1.Value(), n1.Children())
	}
	root, _ := a.Root()
	if !slices.Equal(root.Children(), []int{2, 1}) {
		t.Errorf("expected root to list [2 1], has %v", root.Children())
	}
	if p, _ := a.ParentFromIndex(5); p != 1 {
		t.Errorf("expected b1 to follow b to 1, parent is %d", p)
	}
	if p, _ := a.ParentFromIndex(3); p != 2 {
		t.Errorf("expected a1 to follow a to 2, parent is %d", p)
	}
}

func TestSwapParentAndChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	a := sampleArena(t)
	if err := a.SwapNodes(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
	if r, _ := a.RootIndex(); r != 1 {
		t.Errorf("expected root to move to 1, is at %d", r)
	}
	root, _ := a.Root()
	if root.Value() != "root" || !slices.Equal(root.Children(), []int{0, 2}) {
		t.Errorf("unexpected root after swap: %q %v", root.Value(), root.Children())
	}
	n0, _ := a.Node(0)
	if p, _ := n0.Parent(); n0.Value() != "a" || p != 1 {
		t.Errorf("expected a below root at 0, have %q with parent %d", n0.Value(), p)
	}
	if lineage := a.LineageForIndex(6); !slices.Equal(lineage, []int{3, 0, 1}) {
		t.Errorf("unexpected lineage of a1x: %v", lineage)
	}
}

func TestSwapIsInvolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	a := sampleArena(t)
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < a.Len(); j++ {
			before := snapshot(a)
			root := a.root
			if err := a.SwapNodes(i, j); err != nil {
				t.Fatal(err)
			}
			if err := a.Check(); err != nil {
				t.Fatalf("swap(%d,%d): %v", i, j, err)
			}
			if err := a.SwapNodes(i, j); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(before, a.nodes) || root != a.root {
				t.Fatalf("swap(%d,%d) twice did not restore the arena", i, j)
			}
		}
	}
}

func TestSwapOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor")
	defer teardown()
	//
	a := sampleArena(t)
	before := snapshot(a)
	if err := a.SwapNodes(0, 7); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	if err := a.SwapNodes(-1, 2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	if !reflect.DeepEqual(before, a.nodes) {
		t.Errorf("failed swap modified the arena")
	}
}
