package stack

// Stack is a slice-backed LIFO stack of ints. Construct with New or
// NewWithCapacity; a nil *Stack is a benign empty stack for reads.
type Stack struct {
	items []int
}

// New returns an empty Stack.
// Complexity: O(1).
func New() *Stack {
	return &Stack{}
}

// NewWithCapacity returns an empty Stack with room for n pushes before
// the backing slice reallocates. Non-positive n is treated as zero.
// Complexity: O(n).
func NewWithCapacity(n int) *Stack {
	if n < 1 {
		return &Stack{}
	}
	return &Stack{items: make([]int, 0, n)}
}

// Push places value on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack) Push(value int) {
	if s == nil {
		return
	}
	s.items = append(s.items, value)
}

// Pop removes and returns the top value, or ok=false when empty.
// Complexity: O(1).
func (s *Stack) Pop() (int, bool) {
	if s == nil || len(s.items) == 0 {
		return 0, false
	}

	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top value without removing it, or ok=false when
// empty.
// Complexity: O(1).
func (s *Stack) Peek() (int, bool) {
	if s == nil || len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of stacked values.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes every value and releases the backing slice.
func (s *Stack) Clear() {
	if s == nil {
		return
	}
	s.items = nil
}

// MinStack is a Stack that also answers the minimum of its live values
// in O(1), at the cost of one shadow int per entry.
// Construct with NewMin.
type MinStack struct {
	items []int
	mins  []int // mins[i] is the minimum of items[:i+1]
}

// NewMin returns an empty MinStack.
// Complexity: O(1).
func NewMin() *MinStack {
	return &MinStack{}
}

// Push places value on top and updates the running minimum.
// Complexity: O(1) amortized.
func (s *MinStack) Push(value int) {
	if s == nil {
		return
	}

	s.items = append(s.items, value)
	if len(s.mins) > 0 && s.mins[len(s.mins)-1] < value {
		value = s.mins[len(s.mins)-1]
	}
	s.mins = append(s.mins, value)
}

// Pop removes and returns the top value, or ok=false when empty.
// Complexity: O(1).
func (s *MinStack) Pop() (int, bool) {
	if s == nil || len(s.items) == 0 {
		return 0, false
	}

	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.mins = s.mins[:len(s.mins)-1]
	return top, true
}

// Peek returns the top value without removing it, or ok=false when
// empty.
// Complexity: O(1).
func (s *MinStack) Peek() (int, bool) {
	if s == nil || len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// Min returns the smallest live value, or ok=false when empty.
// Complexity: O(1).
func (s *MinStack) Min() (int, bool) {
	if s == nil || len(s.mins) == 0 {
		return 0, false
	}
	return s.mins[len(s.mins)-1], true
}

// Len returns the number of stacked values.
func (s *MinStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the stack holds no values.
func (s *MinStack) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes every value and releases both backing slices.
func (s *MinStack) Clear() {
	if s == nil {
		return
	}
	s.items = nil
	s.mins = nil
}
