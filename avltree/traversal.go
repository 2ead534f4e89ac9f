package avltree

// InOrder returns up to max keys in ascending order. max ≤ 0 yields nil.
// Complexity: O(min(n, max)).
func (t *Tree) InOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	inorder(t.root, &out, max)

	return out
}

func inorder(n *node, out *[]int, max int) {
	if n == nil || len(*out) >= max {
		return
	}

	inorder(n.left, out, max)
	if len(*out) < max {
		*out = append(*out, n.key)
	}
	inorder(n.right, out, max)
}

// PreOrder returns up to max keys in root-left-right order.
// Complexity: O(min(n, max)).
func (t *Tree) PreOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	preorder(t.root, &out, max)

	return out
}

func preorder(n *node, out *[]int, max int) {
	if n == nil || len(*out) >= max {
		return
	}

	*out = append(*out, n.key)
	preorder(n.left, out, max)
	preorder(n.right, out, max)
}

// PostOrder returns up to max keys in left-right-root order.
// Complexity: O(min(n, max)).
func (t *Tree) PostOrder(max int) []int {
	if t == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	postorder(t.root, &out, max)

	return out
}

func postorder(n *node, out *[]int, max int) {
	if n == nil || len(*out) >= max {
		return
	}

	postorder(n.left, out, max)
	postorder(n.right, out, max)
	if len(*out) < max {
		*out = append(*out, n.key)
	}
}

// LevelOrder returns up to max keys in breadth-first order, top level first.
// Complexity: O(min(n, max)) time, O(n) auxiliary queue.
func (t *Tree) LevelOrder(max int) []int {
	if t == nil || t.root == nil || max <= 0 {
		return nil
	}

	out := make([]int, 0, capHint(t.size, max))
	queue := make([]*node, 0, t.size)
	queue = append(queue, t.root)

	for len(queue) > 0 && len(out) < max {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.key)

		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}

// capHint bounds the allocation for a traversal result.
func capHint(size, max int) int {
	if size < max {
		return size
	}
	return max
}
