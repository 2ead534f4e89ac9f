package rbtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree as an ASCII diagram for debugging and teaching.
// Each label shows "key=value (R|B)". An empty tree renders as "(empty)".
// Complexity: O(n).
func (t *Tree) Dump() string {
	if t == nil || t.root == t.sentinel {
		return "(empty)"
	}

	root := treeprint.NewWithRoot(t.label(t.root))
	t.addChildren(root, t.root)

	return root.String()
}

func (t *Tree) label(n *node) string {
	c := "R"
	if n.color == black {
		c = "B"
	}
	return fmt.Sprintf("%d=%d (%s)", n.key, n.value, c)
}

func (t *Tree) addChildren(branch treeprint.Tree, n *node) {
	if n.left != t.sentinel {
		t.addChildren(branch.AddBranch(t.label(n.left)), n.left)
	}
	if n.right != t.sentinel {
		t.addChildren(branch.AddBranch(t.label(n.right)), n.right)
	}
}
