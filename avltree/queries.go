package avltree

// Successor returns the least key strictly greater than key, or ok=false
// when no such key exists (including successor of the maximum).
// The argument itself need not be present.
// Complexity: O(log n).
func (t *Tree) Successor(key int) (int, bool) {
	if t == nil {
		return 0, false
	}

	var succ *node
	n := t.root
	for n != nil {
		if key < n.key {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}

	if succ == nil {
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

	var pred *node
	n := t.root
	for n != nil {
		if key > n.key {
			pred = n
			n = n.right
		} else {
			n = n.left
		}
	}

	if pred == nil {
		return 0, false
	}

	return pred.key, true
}

// KthSmallest returns the k-th smallest key, 1-indexed. It reports
// ok=false for k=0 or k greater than Size().
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
	kthHelper(t.root, k, &seen, &result, &found)

	return result, found
}

func kthHelper(n *node, k int, seen *int, result *int, found *bool) {
	if n == nil || *found {
		return
	}

	kthHelper(n.left, k, seen, result, found)
	if *found {
		return
	}

	*seen++
	if *seen == k {
		*result = n.key
		*found = true
		return
	}

	kthHelper(n.right, k, seen, result, found)
}

// Floor returns the greatest key ≤ value, or ok=false when every key is
// greater. An exact match returns the match.
// Complexity: O(log n).
func (t *Tree) Floor(value int) (int, bool) {
	if t == nil {
		return 0, false
	}

	var floor *node
	n := t.root
	for n != nil {
		switch {
		case n.key == value:
			return value, true
		case n.key < value:
			floor = n
			n = n.right
		default:
			n = n.left
		}
	}

	if floor == nil {
		return 0, false
	}

	return floor.key, true
}

// Ceiling returns the least key ≥ value, or ok=false when every key is
// smaller. An exact match returns the match.
// Complexity: O(log n).
func (t *Tree) Ceiling(value int) (int, bool) {
	if t == nil {
		return 0, false
	}

	var ceil *node
	n := t.root
	for n != nil {
		switch {
		case n.key == value:
			return value, true
		case n.key > value:
			ceil = n
			n = n.left
		default:
			n = n.right
		}
	}

	if ceil == nil {
		return 0, false
	}

	return ceil.key, true
}

// CountInRange returns the number of keys in [lo, hi], inclusive on both
// sides. lo > hi yields zero.
// Complexity: O(log n + matches).
func (t *Tree) CountInRange(lo, hi int) int {
	if t == nil || lo > hi {
		return 0
	}

	var count int
	countRange(t.root, lo, hi, &count)

	return count
}

func countRange(n *node, lo, hi int, count *int) {
	if n == nil {
		return
	}

	if n.key >= lo && n.key <= hi {
		*count++
	}

	// Prune subtrees that cannot intersect the range.
	if n.key > lo {
		countRange(n.left, lo, hi, count)
	}
	if n.key < hi {
		countRange(n.right, lo, hi, count)
	}
}
