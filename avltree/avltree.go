package avltree

// node is a single tree node. height is cached and always equals
// 1 + max(height(left), height(right)); a leaf has height 1.
type node struct {
	key    int
	value  int
	left   *node
	right  *node
	height int
}

// Tree is an ordered integer→integer map with the AVL balance invariant:
// for every node the heights of its subtrees differ by at most one.
// The zero value is not usable; construct with New. A nil *Tree is treated
// as a benign empty map by every read operation.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
// Complexity: O(1).
func New() *Tree {
	return &Tree{}
}

// height returns the cached height of n, 0 for an absent subtree.
func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance returns the balance factor of n: height(left) − height(right).
func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// updateHeight recomputes n's cached height from its children.
func updateHeight(n *node) {
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		n.height = 1 + hl
	} else {
		n.height = 1 + hr
	}
}

// rotateRight rotates the subtree rooted at y to the right and returns the
// new subtree root. Heights are refreshed bottom-up: the rotated descendant
// first, then the new parent.
func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft rotates the subtree rooted at x to the left and returns the
// new subtree root.
func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	updateHeight(x)
	updateHeight(y)

	return y
}

// rebalance refreshes n's height and applies at most two rotations to
// restore the AVL invariant, returning the subtree's new root.
func rebalance(n *node) *node {
	if n == nil {
		return nil
	}

	updateHeight(n)
	bf := balance(n)

	// Left heavy: LL or LR.
	if bf > 1 {
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	// Right heavy: RR or RL.
	if bf < -1 {
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// Insert adds key with the given value and reports whether a new key was
// added. Inserting an existing key is rejected: the stored value is left
// untouched and Insert returns false.
// Complexity: O(log n).
func (t *Tree) Insert(key, value int) bool {
	if t == nil {
		return false
	}

	var inserted bool
	t.root = insertNode(t.root, key, value, &inserted)
	if inserted {
		t.size++
	}

	return inserted
}

func insertNode(n *node, key, value int, inserted *bool) *node {
	if n == nil {
		*inserted = true
		return &node{key: key, value: value, height: 1}
	}

	switch {
	case key < n.key:
		n.left = insertNode(n.left, key, value, inserted)
	case key > n.key:
		n.right = insertNode(n.right, key, value, inserted)
	default:
		// Duplicate key: reject, keep the stored value.
		*inserted = false
		return n
	}

	return rebalance(n)
}

// Delete removes key and reports whether it was present.
// Complexity: O(log n).
func (t *Tree) Delete(key int) bool {
	if t == nil || t.root == nil {
		return false
	}

	var deleted bool
	t.root = deleteNode(t.root, key, &deleted)
	if deleted {
		t.size--
	}

	return deleted
}

func deleteNode(n *node, key int, deleted *bool) *node {
	if n == nil {
		*deleted = false
		return nil
	}

	switch {
	case key < n.key:
		n.left = deleteNode(n.left, key, deleted)
	case key > n.key:
		n.right = deleteNode(n.right, key, deleted)
	default:
		*deleted = true

		// Zero or one child: splice the child up.
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}

		// Two children: adopt the in-order successor's key/value, then
		// delete that successor from the right subtree.
		succ := minNode(n.right)
		n.key, n.value = succ.key, succ.value
		n.right = deleteNode(n.right, succ.key, deleted)
	}

	return rebalance(n)
}

// minNode returns the leftmost node of a non-empty subtree.
func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Get returns the value stored under key and whether the key is present.
// Complexity: O(log n).
func (t *Tree) Get(key int) (int, bool) {
	if t == nil {
		return 0, false
	}

	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}

	return 0, false
}

// Contains reports whether key is present.
// Complexity: O(log n).
func (t *Tree) Contains(key int) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key, or ok=false on an empty tree.
// Complexity: O(log n).
func (t *Tree) Min() (int, bool) {
	if t == nil || t.root == nil {
		return 0, false
	}
	return minNode(t.root).key, true
}

// Max returns the largest key, or ok=false on an empty tree.
// Complexity: O(log n).
func (t *Tree) Max() (int, bool) {
	if t == nil || t.root == nil {
		return 0, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Height returns the edge-count height of the tree: −1 for an empty tree,
// 0 for a single node.
// Complexity: O(1) thanks to cached node heights.
func (t *Tree) Height() int {
	if t == nil || t.root == nil {
		return -1
	}
	return t.root.height - 1
}

// BalanceFactor returns the balance factor of the root (0 when empty).
func (t *Tree) BalanceFactor() int {
	if t == nil {
		return 0
	}
	return balance(t.root)
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
	t.root = nil
	t.size = 0
}
