// Package searching provides array search algorithms: linear scan,
// binary search and its boundary variants, plus searches over rotated
// and unimodal arrays.
//
// 🚀 What's inside
//
//	Linear and binary search return the index of a match or −1. The
//	boundary family (LowerBound, UpperBound, FindFirst, FindLast,
//	SearchInsert) answers positional questions about sorted arrays with
//	duplicates. SearchRotated, FindRotationPoint and FindPeak handle the
//	classic rotated-array and unimodal shapes.
//
// ✨ Key properties:
//   - Sorted-input functions assume ascending order and never verify it
//   - LowerBound/UpperBound/SearchInsert return len(arr) when every
//     element is below the target
//   - FindFirst/FindLast pin down the span of a duplicated value
//   - All functions treat empty and nil slices as "not found"
//
// ⚙️ Usage:
//
//	arr := []int{1, 3, 3, 5, 8}
//	searching.Binary(arr, 5)      // 3
//	searching.LowerBound(arr, 3)  // 1
//	searching.UpperBound(arr, 3)  // 3
//
// Performance: Linear is O(n); every other function is O(log n).
package searching
