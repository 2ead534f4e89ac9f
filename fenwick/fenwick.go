package fenwick

import "errors"

var (
	// ErrInvalidSize indicates a non-positive element count.
	ErrInvalidSize = errors.New("fenwick: size must be positive")
	// ErrIndexOutOfRange indicates an index outside 0..Len()−1.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
)

// Tree is a binary indexed tree over n int elements. The zero value is
// not usable; construct with New or FromSlice.
type Tree struct {
	bit []int // 1-indexed, bit[i] covers lowbit(i) elements ending at i
	n   int
}

// New returns a Tree of n zero elements.
// Returns ErrInvalidSize when n < 1.
// Complexity: O(n).
func New(n int) (*Tree, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	return &Tree{bit: make([]int, n+1), n: n}, nil
}

// FromSlice returns a Tree initialized with the elements of arr.
// Returns ErrInvalidSize when arr is empty.
// Complexity: O(n).
func FromSlice(arr []int) (*Tree, error) {
	t, err := New(len(arr))
	if err != nil {
		return nil, err
	}

	// O(n) build: place each value, then push its partial sum to the
	// parent cell that covers it.
	for i, v := range arr {
		j := i + 1
		t.bit[j] += v
		if parent := j + (j & -j); parent <= t.n {
			t.bit[parent] += t.bit[j]
		}
	}

	return t, nil
}

// Add applies delta to the element at index i.
// Complexity: O(log n).
func (t *Tree) Add(i, delta int) error {
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	for j := i + 1; j <= t.n; j += j & -j {
		t.bit[j] += delta
	}
	return nil
}

// Set assigns value to the element at index i.
// Complexity: O(log n).
func (t *Tree) Set(i, value int) error {
	current, err := t.Get(i)
	if err != nil {
		return err
	}
	return t.Add(i, value-current)
}

// Get returns the element at index i.
// Complexity: O(log n).
func (t *Tree) Get(i int) (int, error) {
	if i < 0 || i >= t.n {
		return 0, ErrIndexOutOfRange
	}
	if i == 0 {
		return t.prefix(0), nil
	}
	return t.prefix(i) - t.prefix(i-1), nil
}

// PrefixSum returns the sum of elements 0..i inclusive.
// Complexity: O(log n).
func (t *Tree) PrefixSum(i int) (int, error) {
	if i < 0 || i >= t.n {
		return 0, ErrIndexOutOfRange
	}
	return t.prefix(i), nil
}

// RangeSum returns the sum of elements l..r inclusive.
// Returns ErrIndexOutOfRange when the bounds are invalid or l > r.
// Complexity: O(log n).
func (t *Tree) RangeSum(l, r int) (int, error) {
	if l < 0 || r >= t.n || l > r {
		return 0, ErrIndexOutOfRange
	}
	if l == 0 {
		return t.prefix(r), nil
	}
	return t.prefix(r) - t.prefix(l-1), nil
}

// prefix sums elements 0..i inclusive, i assumed valid.
func (t *Tree) prefix(i int) int {
	sum := 0
	for j := i + 1; j > 0; j -= j & -j {
		sum += t.bit[j]
	}
	return sum
}

// Len returns the number of elements.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// LowerBound returns the smallest index i with PrefixSum(i) >= target,
// or Len() when the total falls short. Requires all elements to be
// non-negative; a zero or negative target answers 0.
// Complexity: O(log n).
func (t *Tree) LowerBound(target int) int {
	if t == nil || target <= 0 {
		return 0
	}

	pos, remaining := 0, target
	// Descend from the highest power-of-two block size.
	logn := 1
	for logn*2 <= t.n {
		logn *= 2
	}
	for block := logn; block > 0; block /= 2 {
		next := pos + block
		if next <= t.n && t.bit[next] < remaining {
			remaining -= t.bit[next]
			pos = next
		}
	}

	return pos // 0-indexed: pos elements have sum < target
}
