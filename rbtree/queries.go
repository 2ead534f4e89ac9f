package rbtree

// Min returns the smallest key, or ok=false on an empty tree.
// Complexity: O(log n).
func (t *Tree) Min() (int, bool) {
	if t == nil || t.root == t.sentinel {
		return 0, false
	}
	return t.minimum(t.root).key, true
}

// Max returns the largest key, or ok=false on an empty tree.
// Complexity: O(log n).
func (t *Tree) Max() (int, bool) {
	if t == nil || t.root == t.sentinel {
		return 0, false
	}
	return t.maximum(t.root).key, true
}

// Successor returns the least key strictly greater than key, or ok=false
// when no such key exists. The argument itself need not be present.
// Complexity: O(log n).
func (t *Tree) Successor(key int) (int, bool) {
	if t == nil {
		return 0, false
	}

	succ := t.sentinel
	x := t.root
	for x != t.sentinel {
		if key < x.key {
			succ = x
			x = x.left
		} else {
			x = x.right
		}
	}

	if succ == t.sentinel {
		return 0, false
	}

	return succ.key, true
}

// Predecessor returns the greatest key strictly less than key, or ok=false
// when no such key exists.
// Complexity: O(log n).
func (t *Tree) Predecessor(key int) (int, bool) {
	if t == nil {
		return 0, false
	}

	pred := t.sentinel
	x := t.root
	for x != t.sentinel {
		if key > x.key {
			pred = x
			x = x.right
		} else {
			x = x.left
		}
	}

	if pred == t.sentinel {
		return 0, false
	}

	return pred.key, true
}

// Floor returns the greatest key ≤ value; an exact match returns the match.
// Complexity: O(log n).
func (t *Tree) Floor(value int) (int, bool) {
	if t == nil {
		return 0, false
	}

	floor := t.sentinel
	x := t.root
	for x != t.sentinel {
		switch {
		case x.key == value:
			return value, true
		case x.key < value:
			floor = x
			x = x.right
		default:
			x = x.left
		}
	}

	if floor == t.sentinel {
		return 0, false
	}

	return floor.key, true
}

// Ceiling returns the least key ≥ value; an exact match returns the match.
// Complexity: O(log n).
func (t *Tree) Ceiling(value int) (int, bool) {
	if t == nil {
		return 0, false
	}

	ceil := t.sentinel
	x := t.root
	for x != t.sentinel {
		switch {
		case x.key == value:
			return value, true
		case x.key > value:
			ceil = x
			x = x.left
		default:
			x = x.right
		}
	}

	if ceil == t.sentinel {
		return 0, false
	}

	return ceil.key, true
}

// KthSmallest returns the k-th smallest key, 1-indexed; ok=false for k=0
// or k greater than Size().
// Complexity: O(n) worst case (in-order walk with early exit).
func (t *Tree) KthSmallest(k int) (int, bool) {
	if t == nil || k <= 0 || k > t.size {
		return 0, false
	}

	var (
		seen   int
		result int
		found  bool
	)
	t.kthHelper(t.root, k, &seen, &result, &found)

	return result, found
}

func (t *Tree) kthHelper(n *node, k int, seen *int, result *int, found *bool) {
	if n == t.sentinel || *found {
		return
	}

	t.kthHelper(n.left, k, seen, result, found)
	if *found {
		return
	}

	*seen++
	if *seen == k {
		*result = n.key
		*found = true
		return
	}

	t.kthHelper(n.right, k, seen, result, found)
}

// CountInRange returns the number of keys in [lo, hi], inclusive on both
// sides. lo > hi yields zero.
// Complexity: O(log n + matches).
func (t *Tree) CountInRange(lo, hi int) int {
	if t == nil || lo > hi {
		return 0
	}

	var count int
	t.countRange(t.root, lo, hi, &count)

	return count
}

func (t *Tree) countRange(n *node, lo, hi int, count *int) {
	if n == t.sentinel {
		return
	}

	if n.key >= lo && n.key <= hi {
		*count++
	}

	if n.key > lo {
		t.countRange(n.left, lo, hi, count)
	}
	if n.key < hi {
		t.countRange(n.right, lo, hi, count)
	}
}
