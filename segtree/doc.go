// Package segtree provides a segment tree for range queries with point
// updates, in sum, minimum and maximum flavors.
//
// 🚀 How it works
//
//	A complete binary tree stored in a flat array: node 1 covers the
//	whole range, node i's children 2i and 2i+1 cover its halves, leaves
//	hold the elements. Queries descend only into nodes overlapping the
//	requested range; updates rebuild the single root-to-leaf path.
//
// ✨ Key properties:
//   - Kind selects the combining operation at construction: KindSum,
//     KindMin or KindMax; the identity element follows the kind
//   - Query(l, r) is inclusive on both ends; Update assigns, Add applies
//     a delta
//   - FromSlice builds bottom-up in O(n)
//   - Out-of-range indices are reported with ErrIndexOutOfRange
//
// ⚙️ Usage:
//
//	st, err := segtree.FromSlice([]int{1, 3, 5, 7}, segtree.KindSum)
//	if err != nil { ... }
//	sum, _ := st.Query(1, 2)   // 8
//	_ = st.Update(1, 10)
//
// Performance: Query / Update / Add are O(log n); build is O(n).
package segtree
