package rbtree

// color of a node: red or black. The sentinel is always black.
type color bool

const (
	red   color = false
	black color = true
)

// node holds a key/value pair, its color, owning links to both children and
// a non-owning back-link to its parent. The parent link is consulted only
// during fixup walks and never exposed.
type node struct {
	key    int
	value  int
	color  color
	left   *node
	right  *node
	parent *node
}

// Tree is an ordered integer→integer map with the red-black invariants.
// Each Tree owns a private black sentinel standing in for every absent
// child; the sentinel's parent field is written transiently during fixup
// and must never be read outside an active operation.
// Construct with New; a nil *Tree is a benign empty map for reads.
type Tree struct {
	root     *node
	sentinel *node // sentinel leaf, always black
	size     int
}

// New returns an empty Tree with a freshly allocated sentinel.
// Complexity: O(1).
func New() *Tree {
	s := &node{color: black}
	return &Tree{root: s, sentinel: s}
}

// rotateLeft rotates the subtree at x leftward, keeping parent links and
// the root pointer consistent.
func (t *Tree) rotateLeft(x *node) {
	y := x.right

	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree) rotateRight(x *node) {
	y := x.left

	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}

// Insert stores value under key and reports whether a NEW key was added.
// An existing key gets its value updated and Insert returns false.
// Complexity: O(log n).
func (t *Tree) Insert(key, value int) bool {
	if t == nil {
		return false
	}

	// Standard BST descent to the attachment point.
	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			x.value = value
			return false
		}
	}

	z := &node{key: key, value: value, color: red, left: t.sentinel, right: t.sentinel, parent: y}

	switch {
	case y == t.sentinel:
		t.root = z
	case key < y.key:
		y.left = z
	default:
		y.right = z
	}

	t.size++
	t.insertFixup(z)

	return true
}

// insertFixup restores the red-black invariants after hanging the red node
// z. The loop runs while z's parent is red; each iteration resolves one of
// the three classic cases (red uncle recolor, inner-child rotation,
// outer-child rotation) or their mirrors.
func (t *Tree) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right

			if uncle.color == red {
				// Case 1: recolor and continue at the grandparent.
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// Case 2: inner child, rotate into case 3.
					z = z.parent
					t.rotateLeft(z)
				}
				// Case 3: outer child.
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left

			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}

	t.root.color = black
}

// Get returns the value stored under key and whether it is present.
// Complexity: O(log n).
func (t *Tree) Get(key int) (int, bool) {
	if t == nil {
		return 0, false
	}

	x := t.root
	for x != t.sentinel {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			return x.value, true
		}
	}

	return 0, false
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool {
	_, ok := t.Get(key)
	return ok
}

// Size returns the number of keys.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.Size() == 0
}

// Clear removes every key, leaving the empty shell reusable.
func (t *Tree) Clear() {
	if t == nil {
		return
	}
	t.root = t.sentinel
	t.size = 0
}

// minimum returns the leftmost node of the subtree at x (x ≠ sentinel).
func (t *Tree) minimum(x *node) *node {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

// maximum returns the rightmost node of the subtree at x (x ≠ sentinel).
func (t *Tree) maximum(x *node) *node {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}
