// Package list implements a doubly linked list of ints with positional
// access from both ends.
//
// 🚀 How it works
//
//	Entries live between two sentinel nodes, so every link operation
//	touches valid neighbors and needs no nil checks. Positional lookups
//	walk from the nearer end, halving the average scan.
//
// ✨ Key properties:
//   - O(1) push/pop/peek at either end
//   - Insert, Get, Set and Remove by index; Find and RemoveValue by value
//   - Absence is a (value, ok) pair, out-of-range indexes report false
//   - A nil *List answers every read as an empty list
//   - Not goroutine-safe: wrap externally
//
// ⚙️ Usage:
//
//	l := list.New()
//	l.PushBack(1)
//	l.PushBack(2)
//	l.PushFront(0)
//	v, ok := l.Get(1)        // 1, true
//	l.Values()               // [0 1 2]
//
// Performance: end operations are O(1); positional and value operations
// are O(n) with at most n/2 links walked per index lookup.
package list
