package list

// node is a single list entry. The list runs head→tail between two
// sentinel nodes, so prev and next are always valid on live entries.
type node struct {
	value int
	prev  *node
	next  *node
}

// List is a doubly linked list of ints. Construct with New; a nil *List
// is a benign empty list for every read operation.
type List struct {
	head *node // sentinel: head.next is the first entry
	tail *node // sentinel: tail.prev is the last entry
	size int
}

// New returns an empty List.
// Complexity: O(1).
func New() *List {
	l := &List{head: &node{}, tail: &node{}}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// insertAfter links a fresh node carrying value right after prev.
func (l *List) insertAfter(prev *node, value int) {
	n := &node{value: value, prev: prev, next: prev.next}
	prev.next.prev = n
	prev.next = n
	l.size++
}

// unlink detaches n and returns its value.
func (l *List) unlink(n *node) int {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.size--
	return n.value
}

// nodeAt returns the live node at index i, walking from the nearer end.
// The index must be in [0, size).
func (l *List) nodeAt(i int) *node {
	if i < l.size/2 {
		n := l.head.next
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}

	n := l.tail.prev
	for i = l.size - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

// PushFront prepends value.
// Complexity: O(1).
func (l *List) PushFront(value int) {
	if l == nil {
		return
	}
	l.insertAfter(l.head, value)
}

// PushBack appends value.
// Complexity: O(1).
func (l *List) PushBack(value int) {
	if l == nil {
		return
	}
	l.insertAfter(l.tail.prev, value)
}

// Insert places value at index i, shifting later entries right. Valid
// indexes are 0 through Len inclusive; Insert(Len, v) appends.
// Reports whether the index was in range.
// Complexity: O(n).
func (l *List) Insert(i, value int) bool {
	if l == nil || i < 0 || i > l.size {
		return false
	}

	if i == l.size {
		l.insertAfter(l.tail.prev, value)
	} else {
		l.insertAfter(l.nodeAt(i).prev, value)
	}
	return true
}

// PopFront removes and returns the first value, or ok=false when empty.
// Complexity: O(1).
func (l *List) PopFront() (int, bool) {
	if l == nil || l.size == 0 {
		return 0, false
	}
	return l.unlink(l.head.next), true
}

// PopBack removes and returns the last value, or ok=false when empty.
// Complexity: O(1).
func (l *List) PopBack() (int, bool) {
	if l == nil || l.size == 0 {
		return 0, false
	}
	return l.unlink(l.tail.prev), true
}

// Remove deletes the entry at index i and returns its value, or
// ok=false when the index is out of range.
// Complexity: O(n).
func (l *List) Remove(i int) (int, bool) {
	if l == nil || i < 0 || i >= l.size {
		return 0, false
	}
	return l.unlink(l.nodeAt(i)), true
}

// RemoveValue deletes the first entry equal to value and reports
// whether one was found.
// Complexity: O(n).
func (l *List) RemoveValue(value int) bool {
	if l == nil {
		return false
	}

	for n := l.head.next; n != l.tail; n = n.next {
		if n.value == value {
			l.unlink(n)
			return true
		}
	}
	return false
}

// Front returns the first value without removing it.
// Complexity: O(1).
func (l *List) Front() (int, bool) {
	if l == nil || l.size == 0 {
		return 0, false
	}
	return l.head.next.value, true
}

// Back returns the last value without removing it.
// Complexity: O(1).
func (l *List) Back() (int, bool) {
	if l == nil || l.size == 0 {
		return 0, false
	}
	return l.tail.prev.value, true
}

// Get returns the value at index i, or ok=false when out of range.
// Complexity: O(n).
func (l *List) Get(i int) (int, bool) {
	if l == nil || i < 0 || i >= l.size {
		return 0, false
	}
	return l.nodeAt(i).value, true
}

// Set overwrites the value at index i and reports whether the index was
// in range.
// Complexity: O(n).
func (l *List) Set(i, value int) bool {
	if l == nil || i < 0 || i >= l.size {
		return false
	}
	l.nodeAt(i).value = value
	return true
}

// Find returns the index of the first entry equal to value, −1 when
// absent.
// Complexity: O(n).
func (l *List) Find(value int) int {
	if l == nil {
		return -1
	}

	i := 0
	for n := l.head.next; n != l.tail; n = n.next {
		if n.value == value {
			return i
		}
		i++
	}
	return -1
}

// Contains reports whether value occurs in the list.
// Complexity: O(n).
func (l *List) Contains(value int) bool {
	return l.Find(value) >= 0
}

// Len returns the number of entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list holds no entries.
func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// Clear removes every entry, leaving the empty shell reusable.
func (l *List) Clear() {
	if l == nil {
		return
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.size = 0
}

// Values returns the entries front to back as a fresh slice; nil when
// empty.
// Complexity: O(n).
func (l *List) Values() []int {
	if l == nil || l.size == 0 {
		return nil
	}

	out := make([]int, 0, l.size)
	for n := l.head.next; n != l.tail; n = n.next {
		out = append(out, n.value)
	}
	return out
}
