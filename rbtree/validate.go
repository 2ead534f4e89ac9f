package rbtree

// Validate rechecks every red-black invariant from scratch:
//
//   - the root is black
//   - no red node has a red child
//   - every root-to-sentinel path crosses the same number of black nodes
//   - BST ordering holds
//   - recorded Size equals the actual node count
//
// It is a test aid, never called on a hot path.
// Complexity: O(n).
func (t *Tree) Validate() bool {
	if t == nil {
		return true
	}
	if t.root == t.sentinel {
		return t.size == 0
	}

	if t.root.color != black {
		return false
	}

	count := 0
	return t.validateNode(t.root, &count) != -1 && count == t.size
}

// validateNode returns the black-height of the subtree at n, or −1 if any
// invariant is broken below it. The sentinel counts as one black node.
func (t *Tree) validateNode(n *node, count *int) int {
	if n == t.sentinel {
		return 1
	}

	if n.color == red && (n.left.color == red || n.right.color == red) {
		return -1
	}

	if n.left != t.sentinel && n.left.key >= n.key {
		return -1
	}
	if n.right != t.sentinel && n.right.key <= n.key {
		return -1
	}

	leftBH := t.validateNode(n.left, count)
	rightBH := t.validateNode(n.right, count)
	if leftBH == -1 || rightBH == -1 || leftBH != rightBH {
		return -1
	}

	*count++

	if n.color == black {
		return leftBH + 1
	}
	return leftBH
}

// BlackHeight returns the number of black nodes on the leftmost
// root-to-sentinel path, counting the sentinel; 0 for an empty tree.
// Complexity: O(log n).
func (t *Tree) BlackHeight() int {
	if t == nil || t.root == t.sentinel {
		return 0
	}

	bh := 0
	x := t.root
	for x != t.sentinel {
		if x.color == black {
			bh++
		}
		x = x.left
	}

	return bh + 1
}

// Height returns the node-count height of the tree: 0 when empty, 1 for a
// single node.
// Complexity: O(n).
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.heightOf(t.root)
}

func (t *Tree) heightOf(n *node) int {
	if n == t.sentinel {
		return 0
	}

	hl := t.heightOf(n.left)
	hr := t.heightOf(n.right)
	if hl > hr {
		return 1 + hl
	}

	return 1 + hr
}
