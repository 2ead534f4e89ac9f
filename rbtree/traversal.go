package rbtree

// InOrder returns up to max keys in ascending order. max ≤ 0 yields nil.
// Complexity: O(min(n, max)).
func (t *Tree) InOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	t.inorder(t.root, &out, max)

	return out
}

func (t *Tree) inorder(n *node, out *[]int, max int) {
	if n == t.sentinel || len(*out) >= max {
		return
	}

	t.inorder(n.left, out, max)
	if len(*out) < max {
		*out = append(*out, n.key)
	}
	t.inorder(n.right, out, max)
}

// PreOrder returns up to max keys in root-left-right order.
// Complexity: O(min(n, max)).
func (t *Tree) PreOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	t.preorder(t.root, &out, max)

	return out
}

func (t *Tree) preorder(n *node, out *[]int, max int) {
	if n == t.sentinel || len(*out) >= max {
		return
	}

	*out = append(*out, n.key)
	t.preorder(n.left, out, max)
	t.preorder(n.right, out, max)
}

// PostOrder returns up to max keys in left-right-root order.
// Complexity: O(min(n, max)).
func (t *Tree) PostOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	t.postorder(t.root, &out, max)

	return out
}

func (t *Tree) postorder(n *node, out *[]int, max int) {
	if n == t.sentinel || len(*out) >= max {
		return
	}

	t.postorder(n.left, out, max)
	t.postorder(n.right, out, max)
	if len(*out) < max {
		*out = append(*out, n.key)
	}
}

// LevelOrder returns up to max keys in breadth-first order.
// Complexity: O(min(n, max)) time, O(n) auxiliary queue.
func (t *Tree) LevelOrder(max int) []int {
	if t == nil || t.root == t.sentinel || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	queue := make([]*node, 0, t.size)
	queue = append(queue, t.root)

	for len(queue) > 0 && len(out) < max {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.key)

		if n.left != t.sentinel {
			queue = append(queue, n.left)
		}
		if n.right != t.sentinel {
			queue = append(queue, n.right)
		}
	}

	return out
}

// Range returns up to max keys inside [lo, hi] in ascending order.
// lo > hi or max ≤ 0 yields nil.
// Complexity: O(log n + matches).
func (t *Tree) Range(lo, hi, max int) []int {
	if t == nil || lo > hi || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	t.rangeKeys(t.root, lo, hi, &out, max)

	return out
}

func (t *Tree) rangeKeys(n *node, lo, hi int, out *[]int, max int) {
	if n == t.sentinel || len(*out) >= max {
		return
	}

	if n.key > lo {
		t.rangeKeys(n.left, lo, hi, out, max)
	}

	if len(*out) < max && n.key >= lo && n.key <= hi {
		*out = append(*out, n.key)
	}

	if n.key < hi {
		t.rangeKeys(n.right, lo, hi, out, max)
	}
}

// capHint bounds the allocation for a traversal result.
func capHint(size, max int) int {
	if size < max {
		return size
	}
	return max
}
