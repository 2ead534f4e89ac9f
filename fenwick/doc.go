// Package fenwick provides a binary indexed tree for prefix sums with
// point updates.
//
// 🚀 How it works
//
//	The internal array is 1-indexed; cell i covers the lowbit(i) = i&(−i)
//	elements ending at i. Walking indices by adding or stripping the
//	lowest set bit yields O(log n) updates and prefix queries. The public
//	API is 0-indexed.
//
// ✨ Key properties:
//   - Add applies a delta, Set assigns an absolute value
//   - PrefixSum(i) sums elements 0..i inclusive; RangeSum(l, r) is
//     inclusive on both ends
//   - FromSlice builds in O(n) by propagating partial sums upward
//   - LowerBound finds the first index whose prefix sum reaches a
//     target, assuming no negative elements
//   - Out-of-range indices are reported with ErrIndexOutOfRange
//
// ⚙️ Usage:
//
//	ft, err := fenwick.FromSlice([]int{1, 3, 5, 7})
//	if err != nil { ... }
//	sum, _ := ft.RangeSum(1, 2)  // 8
//	_ = ft.Add(0, 10)
//
// Performance: Add / Set / PrefixSum / RangeSum are O(log n); build is
// O(n).
package fenwick
