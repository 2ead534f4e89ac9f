package avltree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the tree as an ASCII diagram for debugging and teaching.
// Each label shows "key=value (h=height)". An empty tree renders as "(empty)".
// Complexity: O(n).
func (t *Tree) Dump() string {
	if t == nil || t.root == nil {
		return "(empty)"
	}

	root := treeprint.NewWithRoot(label(t.root))
	addChildren(root, t.root)

	return root.String()
}

func label(n *node) string {
	return fmt.Sprintf("%d=%d (h=%d)", n.key, n.value, n.height)
}

func addChildren(branch treeprint.Tree, n *node) {
	if n.left != nil {
		addChildren(branch.AddBranch(label(n.left)), n.left)
	}
	if n.right != nil {
		addChildren(branch.AddBranch(label(n.right)), n.right)
	}
}
