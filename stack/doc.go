// Package stack implements a slice-backed LIFO stack of ints, plus a
// MinStack variant that answers the current minimum in constant time.
//
// 🚀 How it works
//
//	Push appends to a slice, Pop trims it. MinStack shadows the value
//	stack with a stack of running minimums, so Min is a single read.
//
// ✨ Key properties:
//   - O(1) amortized Push, O(1) Pop, Peek and Len
//   - Absence is a (value, ok) pair: popping an empty stack reports false
//   - A nil *Stack answers every read as an empty stack
//   - Not goroutine-safe: wrap externally
//
// ⚙️ Usage:
//
//	s := stack.New()
//	s.Push(1)
//	s.Push(2)
//	v, _ := s.Pop()    // 2
//
//	ms := stack.NewMin()
//	ms.Push(5)
//	ms.Push(3)
//	ms.Push(7)
//	mn, _ := ms.Min()  // 3
//
// Performance: every operation is O(1); backing slices grow by Go's
// append doubling and never shrink until Clear.
package stack
