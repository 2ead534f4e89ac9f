// Package avltree provides an ordered integer→integer map backed by a
// height-balanced (AVL) binary search tree.
//
// 🚀 What is avltree?
//
//	A self-balancing BST that keeps the heights of every node's two
//	subtrees within one of each other, guaranteeing O(log n) inserts,
//	deletes and lookups. On top of the map surface it answers ordered
//	queries:
//	  • Min / Max, Successor / Predecessor
//	  • Floor / Ceiling (greatest ≤ / least ≥)
//	  • KthSmallest (1-indexed order statistics)
//	  • CountInRange (inclusive range counting)
//	  • In-/pre-/post-/level-order key enumeration
//
// ✨ Key properties:
//   - Duplicate inserts are rejected: Insert reports whether a new key
//     was added and never overwrites an existing value (rbtree chooses
//     the opposite convention; see its docs)
//   - Absence is a (value, ok) pair, never a sentinel value
//   - Height stays ≤ 1.44·log₂(n+2); Validate() rechecks every invariant
//   - A nil *Tree behaves as a frozen empty map for all read operations
//
// ⚙️ Usage:
//
//	t := avltree.New()
//	t.Insert(10, 100)
//	t.Insert(5, 50)
//	if v, ok := t.Get(5); ok {
//	    fmt.Println(v) // 50
//	}
//	keys := t.InOrder(t.Size()) // [5 10]
//
// Performance:
//
//   - Insert / Delete / Get: O(log n)
//   - Ordered queries:       O(log n), KthSmallest O(n) worst case
//   - Traversals:            O(n)
package avltree
