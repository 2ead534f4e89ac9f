// Package strmatch provides substring search: the naive scan, KMP,
// Rabin–Karp and the Z-function algorithm.
//
// 🚀 What's inside
//
//	Each algorithm comes in two forms: Index* returns the first match
//	position (−1 for none), IndexAll* returns every match position
//	including overlapping ones. Count tallies matches, and the LPS and
//	ZArray table builders are exported for their own pedagogical value.
//
// ✨ Key properties:
//   - An empty pattern matches at index 0 (and at every position for
//     the IndexAll forms, matching positions 0..len(text))
//   - Matches may overlap: "aaa" contains "aa" at 0 and 1
//   - Rabin–Karp verifies every hash hit, so collisions never produce
//     false positives
//   - All four algorithms agree on every input; the tests cross-check them
//
// ⚙️ Usage:
//
//	strmatch.IndexKMP("abxabcabcaby", "abcaby")   // 6
//	strmatch.IndexAllZ("aaaa", "aa")              // [0 1 2]
//	strmatch.Count("abababa", "aba")              // 3
//
// Performance: naive is O(n·m); KMP and Z are O(n + m); Rabin–Karp is
// O(n + m) expected.
package strmatch
