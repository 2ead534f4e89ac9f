package queue_test

import (
	"testing"

	"github.com/mkravets/algokit/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnqueueDequeue_FIFO verifies that values come back in arrival order.
func TestEnqueueDequeue_FIFO(t *testing.T) {
	q := queue.New()
	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
	}

	require.Equal(t, 3, q.Len())

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)
	assert.Equal(t, 3, q.Len(), "Front does not remove")

	for _, want := range []int{1, 2, 3} {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok = q.Dequeue()
	assert.False(t, ok, "dequeuing an empty queue reports false")
	assert.True(t, q.IsEmpty())
}

// TestWrapAround_KeepsOrder interleaves dequeues with enqueues so the
// ring head wraps, then checks order survives a grow.
func TestWrapAround_KeepsOrder(t *testing.T) {
	q := queue.New()

	// Fill the initial ring, then advance the head.
	for v := 0; v < 8; v++ {
		q.Enqueue(v)
	}
	for v := 0; v < 5; v++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, v, got)
	}

	// These wrap around the ring end, then force a grow.
	for v := 8; v < 20; v++ {
		q.Enqueue(v)
	}

	want := make([]int, 0, 15)
	for v := 5; v < 20; v++ {
		want = append(want, v)
	}
	assert.Equal(t, want, q.Values())
	assert.Equal(t, 15, q.Len())
}

// TestClear_Reuse verifies that Clear leaves a reusable empty queue.
func TestClear_Reuse(t *testing.T) {
	q := queue.New()
	q.Enqueue(1)
	q.Enqueue(2)

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Values())
	_, ok := q.Front()
	assert.False(t, ok)

	q.Enqueue(9)
	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

// TestNilReceiver confirms the benign-empty policy for a nil *Queue.
func TestNilReceiver(t *testing.T) {
	var q *queue.Queue

	assert.Equal(t, 0, q.Len())
	assert.True(t, q.IsEmpty())
	assert.Nil(t, q.Values())
	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Front()
	assert.False(t, ok)
}
