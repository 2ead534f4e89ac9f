// Package sorting provides classic comparison and counting sorts over
// int slices, all operating in place.
//
// 🚀 What's inside
//
//	Quadratic teaching sorts (Bubble, Selection, Insertion, Shell) next to
//	the linearithmic workhorses (Merge, Quick, Heap) and the linear-range
//	Counting sort. QuickSelect finds order statistics without a full sort.
//
// ✨ Key properties:
//   - Every sort mutates its argument; pass a copy to keep the original
//   - Bubble, Insertion, Merge and Counting are stable; the rest are not
//   - Counting handles negative values by offsetting against the minimum
//   - QuickSelect partially reorders its input and answers in O(n) average
//   - IsSorted / IsSortedDesc verify order in a single pass
//
// ⚙️ Usage:
//
//	data := []int{5, 2, 9, 1}
//	sorting.Quick(data)            // data is now [1 2 5 9]
//	v, ok := sorting.QuickSelect([]int{7, 3, 5}, 2)
//	// v == 5, ok == true (2nd smallest, 1-indexed)
//
// Performance: Merge, Quick and Heap run in O(n log n); Counting in
// O(n + k) for value range k; the teaching sorts in O(n²).
package sorting
