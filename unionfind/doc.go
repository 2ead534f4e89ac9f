// Package unionfind provides a disjoint-set union structure with union
// by rank and path compression.
//
// 🚀 How it works
//
//	Elements 0..n−1 start in singleton sets. Union merges the sets of
//	two elements, attaching the shorter tree under the taller one;
//	Find walks to the set representative and compresses the path so the
//	next walk is a single hop.
//
// ✨ Key properties:
//   - Find / Union / Connected run in O(α(n)) amortized, effectively
//     constant for any realistic n
//   - ComponentSize and Components track set sizes and the number of
//     disjoint sets as unions happen
//   - Out-of-range elements answer −1 / false / 0; nothing panics
//   - Clear resets every element to its own singleton set
//
// ⚙️ Usage:
//
//	uf, err := unionfind.New(5)
//	if err != nil { ... }
//	uf.Union(0, 1)
//	uf.Union(2, 3)
//	uf.Connected(0, 1)  // true
//	uf.Components()     // 3
//
// Performance: O(n) space, near-O(1) amortized per operation.
package unionfind
