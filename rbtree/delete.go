package rbtree

// transplant replaces the subtree at u with the subtree at v in u's parent.
// v may be the sentinel; its parent is still set so deleteFixup can walk up.
func (t *Tree) transplant(u, v *node) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// Delete removes key and reports whether it was present.
// Complexity: O(log n).
func (t *Tree) Delete(key int) bool {
	if t == nil {
		return false
	}

	z := t.root
	for z != t.sentinel {
		switch {
		case key < z.key:
			z = z.left
		case key > z.key:
			z = z.right
		default:
			t.deleteNode(z)
			return true
		}
	}

	return false
}

// deleteNode unlinks z following CLRS: a node with fewer than two children
// is spliced out directly; otherwise its in-order successor takes its place
// and inherits its color. If the removed color was black, a double-black
// correction runs from the spliced-in position.
func (t *Tree) deleteNode(z *node) {
	y := z
	removed := y.color

	var x *node
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		removed = y.color
		x = y.right

		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	t.size--

	if removed == black {
		t.deleteFixup(x)
	}
}

// deleteFixup resolves the double-black at x. Four sibling cases per side:
// red sibling reduces to a black-sibling case by rotation; a black sibling
// with two black children pushes the problem upward by recoloring; a red
// far nephew finishes with one rotation; a red near nephew is rotated into
// the far-nephew case first.
func (t *Tree) deleteFixup(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right

			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}

			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left

			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}

			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}

	x.color = black
}
