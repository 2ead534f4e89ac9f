// Package queue implements a growable ring-buffer FIFO queue of ints.
//
// 🚀 How it works
//
//	Entries live in a circular slice between a head index and a count.
//	Enqueue writes at (head+count) mod len, Dequeue reads at head; when
//	the buffer fills it doubles and the wrapped run is straightened out.
//
// ✨ Key properties:
//   - O(1) amortized Enqueue, O(1) Dequeue, Front and Len
//   - No per-entry allocation: one backing slice, reused as a ring
//   - Absence is a (value, ok) pair: dequeuing empty reports false
//   - A nil *Queue answers every read as an empty queue
//   - Not goroutine-safe: wrap externally
//
// ⚙️ Usage:
//
//	q := queue.New()
//	q.Enqueue(1)
//	q.Enqueue(2)
//	v, _ := q.Dequeue()  // 1
//
// Performance: every operation is O(1) amortized; a grow copies the
// live entries once into a buffer twice the size.
package queue
