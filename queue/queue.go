package queue

// minBufSize is the smallest ring allocated on the first enqueue.
const minBufSize = 8

// Queue is a growable ring-buffer FIFO queue of ints. Construct with
// New; a nil *Queue is a benign empty queue for reads.
type Queue struct {
	buf   []int
	head  int // index of the front entry
	count int
}

// New returns an empty Queue.
// Complexity: O(1).
func New() *Queue {
	return &Queue{}
}

// grow moves the live entries into a buffer twice the size, with the
// front entry back at index 0.
func (q *Queue) grow() {
	size := len(q.buf) * 2
	if size < minBufSize {
		size = minBufSize
	}

	buf := make([]int, size)
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])

	q.buf = buf
	q.head = 0
}

// Enqueue appends value to the back of the queue.
// Complexity: O(1) amortized.
func (q *Queue) Enqueue(value int) {
	if q == nil {
		return
	}

	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = value
	q.count++
}

// Dequeue removes and returns the front value, or ok=false when empty.
// Complexity: O(1).
func (q *Queue) Dequeue() (int, bool) {
	if q == nil || q.count == 0 {
		return 0, false
	}

	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return v, true
}

// Front returns the front value without removing it, or ok=false when
// empty.
// Complexity: O(1).
func (q *Queue) Front() (int, bool) {
	if q == nil || q.count == 0 {
		return 0, false
	}
	return q.buf[q.head], true
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes every value and releases the ring.
func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.buf = nil
	q.head = 0
	q.count = 0
}

// Values returns the entries front to back as a fresh slice; nil when
// empty.
// Complexity: O(n).
func (q *Queue) Values() []int {
	if q == nil || q.count == 0 {
		return nil
	}

	out := make([]int, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}
