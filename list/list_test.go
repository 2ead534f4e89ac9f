package list_test

import (
	"testing"

	"github.com/mkravets/algokit/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPushPop_BothEnds drives the four end operations and checks the
// order they imply.
func TestPushPop_BothEnds(t *testing.T) {
	l := list.New()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)

	require.Equal(t, []int{1, 2, 3}, l.Values())

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 1, l.Len())

	v, ok = l.Front()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = l.Back()
	require.True(t, ok)
	assert.Equal(t, 2, v, "single entry is both front and back")
}

// TestPop_Empty reports ok=false on an empty list from either end.
func TestPop_Empty(t *testing.T) {
	l := list.New()

	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)
	_, ok = l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
}

// TestInsert_Positions inserts at the head, the middle, the tail and an
// out-of-range index.
func TestInsert_Positions(t *testing.T) {
	l := list.New()
	for _, v := range []int{10, 30} {
		l.PushBack(v)
	}

	assert.True(t, l.Insert(1, 20), "middle insert shifts later entries")
	assert.True(t, l.Insert(0, 5), "index 0 prepends")
	assert.True(t, l.Insert(l.Len(), 40), "index Len appends")
	assert.Equal(t, []int{5, 10, 20, 30, 40}, l.Values())

	assert.False(t, l.Insert(-1, 99))
	assert.False(t, l.Insert(l.Len()+1, 99))
	assert.Equal(t, 5, l.Len(), "rejected inserts leave the list unchanged")
}

// TestRemove_ByIndexAndValue covers positional removal, first-occurrence
// value removal and the absent cases.
func TestRemove_ByIndexAndValue(t *testing.T) {
	l := list.New()
	for _, v := range []int{1, 2, 3, 2, 4} {
		l.PushBack(v)
	}

	v, ok := l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2, 2, 4}, l.Values())

	assert.True(t, l.RemoveValue(2), "removes only the first occurrence")
	assert.Equal(t, []int{1, 2, 4}, l.Values())

	assert.False(t, l.RemoveValue(9))
	_, ok = l.Remove(3)
	assert.False(t, ok, "index past the end is absent")
	_, ok = l.Remove(-1)
	assert.False(t, ok)
}

// TestGetSetFind exercises positional reads and writes plus value search
// from both halves of the list.
func TestGetSetFind(t *testing.T) {
	l := list.New()
	for _, v := range []int{5, 6, 7, 8, 9} {
		l.PushBack(v)
	}

	v, ok := l.Get(0)
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = l.Get(4)
	require.True(t, ok)
	assert.Equal(t, 9, v, "lookups near the tail walk backwards")

	_, ok = l.Get(5)
	assert.False(t, ok)

	assert.True(t, l.Set(2, 70))
	assert.False(t, l.Set(5, 0))
	assert.Equal(t, []int{5, 6, 70, 8, 9}, l.Values())

	assert.Equal(t, 2, l.Find(70))
	assert.Equal(t, -1, l.Find(7), "overwritten value is gone")
	assert.True(t, l.Contains(9))
	assert.False(t, l.Contains(7))
}

// TestClear_Reuse verifies that Clear leaves a reusable empty shell.
func TestClear_Reuse(t *testing.T) {
	l := list.New()
	l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Values())

	l.PushBack(3)
	assert.Equal(t, []int{3}, l.Values(), "cleared list accepts entries again")
}

// TestNilReceiver confirms the benign-empty policy for a nil *List.
func TestNilReceiver(t *testing.T) {
	var l *list.List

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, -1, l.Find(1))
	assert.False(t, l.Contains(1))
	assert.False(t, l.Insert(0, 1))
	assert.False(t, l.RemoveValue(1))
	assert.Nil(t, l.Values())

	_, ok := l.PopFront()
	assert.False(t, ok)
	_, ok = l.Get(0)
	assert.False(t, ok)
}
