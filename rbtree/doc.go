// Package rbtree provides an ordered integer→integer map backed by a
// red-black (color-balanced) binary search tree.
//
// 🚀 What is rbtree?
//
//	A self-balancing BST that maintains the classic red-black invariants:
//	  • every node is red or black, the root is black
//	  • a red node never has a red child
//	  • every root-to-leaf path crosses the same number of black nodes
//	A single black sentinel node stands in for every conceptual leaf, which
//	keeps the insert and delete fixup case analysis free of nil checks. The
//	sentinel never escapes the API.
//
// ✨ Key properties:
//   - Insert reports whether a NEW key was added; inserting an existing key
//     updates the stored value and returns false. This is the opposite of
//     avltree's reject-duplicates convention; both are kept deliberately
//     so the two maps can be contrasted in teaching material.
//   - Absence is a (value, ok) pair, never a sentinel value
//   - Height stays ≤ 2·log₂(n+1); Validate() rechecks every invariant
//   - BlackHeight() exposes the black-node count of the leftmost path
//
// ⚙️ Usage:
//
//	t := rbtree.New()
//	t.Insert(1, 10)  // true: new key
//	t.Insert(1, 11)  // false: existing key, value updated
//	v, ok := t.Get(1) // 11, true
//	keys := t.Range(0, 5, 10)
//
// Performance:
//
//   - Insert / Delete / Get: O(log n)
//   - Ordered queries:       O(log n), KthSmallest O(n) worst case
//   - Traversals / Range:    O(n)
package rbtree
