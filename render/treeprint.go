package render

import (
	"github.com/npillmayer/arbor"
	"github.com/xlab/treeprint"
)

// TreePrint converts an arena into a treeprint.Tree, drawing the tree
// structure with box-drawing characters when printed. Children appear in
// insertion order. Display names of payloads which have one are shown as
// meta information.
//
// For an empty arena an empty tree is returned.
func TreePrint[V comparable](a *arbor.Arena[V]) treeprint.Tree {
	root, ok := a.Root()
	if !ok {
		return treeprint.New()
	}
	tree := treeprint.NewWithRoot(root.String())
	addBranches(a, root.Index(), tree)
	return tree
}

// TreeString renders an arena with TreePrint.
func TreeString[V comparable](a *arbor.Arena[V]) string {
	return TreePrint(a).String()
}

func addBranches[V comparable](a *arbor.Arena[V], i int, tree treeprint.Tree) {
	for _, child := range a.Children(i) {
		var meta string
		if d, ok := any(child.Value()).(displayed); ok && d.HasDisplayName() {
			meta = d.Display()
		}
		if child.IsLeaf() {
			if meta != "" {
				tree.AddMetaNode(meta, child.String())
			} else {
				tree.AddNode(child.String())
			}
			continue
		}
		var branch treeprint.Tree
		if meta != "" {
			branch = tree.AddMetaBranch(meta, child.String())
		} else {
			branch = tree.AddBranch(child.String())
		}
		addBranches(a, child.Index(), branch)
	}
}
