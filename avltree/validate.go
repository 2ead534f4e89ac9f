package avltree

// Validate rechecks every structural invariant from scratch:
//
//   - BST ordering: left keys < node key < right keys
//   - AVL balance: child height difference within [−1, +1] at every node
//   - cached heights equal to 1 + max child height
//   - recorded Size equal to the actual node count
//
// It is a test aid, never called on a hot path.
// Complexity: O(n).
func (t *Tree) Validate() bool {
	if t == nil {
		return true
	}
	if t.root == nil {
		return t.size == 0
	}

	count := 0
	_, ok := checkNode(t.root, nil, nil, &count)

	return ok && count == t.size
}

// checkNode verifies the subtree rooted at n against exclusive (lo, hi)
// key bounds and returns its recomputed height.
func checkNode(n *node, lo, hi *int, count *int) (int, bool) {
	if n == nil {
		return 0, true
	}

	if lo != nil && n.key <= *lo {
		return 0, false
	}
	if hi != nil && n.key >= *hi {
		return 0, false
	}

	hl, ok := checkNode(n.left, lo, &n.key, count)
	if !ok {
		return 0, false
	}
	hr, ok := checkNode(n.right, &n.key, hi, count)
	if !ok {
		return 0, false
	}

	if bf := hl - hr; bf < -1 || bf > 1 {
		return 0, false
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if n.height != h {
		return 0, false
	}

	*count++

	return h, true
}
