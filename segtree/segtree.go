package segtree

import (
	"errors"
	"math"
)

var (
	// ErrInvalidSize indicates a non-positive element count.
	ErrInvalidSize = errors.New("segtree: size must be positive")
	// ErrIndexOutOfRange indicates an index outside 0..Len()−1.
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
	// ErrUnknownKind indicates a Kind value outside the defined set.
	ErrUnknownKind = errors.New("segtree: unknown kind")
)

// Kind selects the combining operation of a Tree.
type Kind int

const (
	// KindSum combines ranges by addition.
	KindSum Kind = iota
	// KindMin combines ranges by minimum.
	KindMin
	// KindMax combines ranges by maximum.
	KindMax
)

// Tree is a segment tree over n int elements. The zero value is not
// usable; construct with New or FromSlice.
type Tree struct {
	nodes    []int // 1-indexed heap layout, node i's children are 2i, 2i+1
	n        int
	kind     Kind
	identity int
}

// New returns a Tree of n elements, each set to the identity of kind
// (0 for sum, +inf/−inf for min/max).
// Returns ErrInvalidSize when n < 1 and ErrUnknownKind for an undefined
// kind. Complexity: O(n).
func New(n int, kind Kind) (*Tree, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	identity, err := identityOf(kind)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		nodes:    make([]int, 4*n),
		n:        n,
		kind:     kind,
		identity: identity,
	}
	if identity != 0 {
		for i := range t.nodes {
			t.nodes[i] = identity
		}
	}

	return t, nil
}

// FromSlice returns a Tree initialized with the elements of arr.
// Returns ErrInvalidSize when arr is empty.
// Complexity: O(n).
func FromSlice(arr []int, kind Kind) (*Tree, error) {
	t, err := New(len(arr), kind)
	if err != nil {
		return nil, err
	}
	t.build(arr, 1, 0, t.n-1)
	return t, nil
}

func identityOf(kind Kind) (int, error) {
	switch kind {
	case KindSum:
		return 0, nil
	case KindMin:
		return math.MaxInt, nil
	case KindMax:
		return math.MinInt, nil
	default:
		return 0, ErrUnknownKind
	}
}

// combine folds two child results according to the tree's kind.
func (t *Tree) combine(a, b int) int {
	switch t.kind {
	case KindMin:
		if a < b {
			return a
		}
		return b
	case KindMax:
		if a > b {
			return a
		}
		return b
	default:
		return a + b
	}
}

// build fills node covering arr[lo..hi] bottom-up.
func (t *Tree) build(arr []int, node, lo, hi int) {
	if lo == hi {
		t.nodes[node] = arr[lo]
		return
	}
	mid := lo + (hi-lo)/2
	t.build(arr, 2*node, lo, mid)
	t.build(arr, 2*node+1, mid+1, hi)
	t.nodes[node] = t.combine(t.nodes[2*node], t.nodes[2*node+1])
}

// Query folds the elements l..r inclusive with the tree's operation.
// Returns ErrIndexOutOfRange when the bounds are invalid or l > r.
// Complexity: O(log n).
func (t *Tree) Query(l, r int) (int, error) {
	if l < 0 || r >= t.n || l > r {
		return 0, ErrIndexOutOfRange
	}
	return t.query(1, 0, t.n-1, l, r), nil
}

func (t *Tree) query(node, lo, hi, l, r int) int {
	if r < lo || hi < l {
		return t.identity
	}
	if l <= lo && hi <= r {
		return t.nodes[node]
	}
	mid := lo + (hi-lo)/2
	return t.combine(
		t.query(2*node, lo, mid, l, r),
		t.query(2*node+1, mid+1, hi, l, r),
	)
}

// Update assigns value to the element at index i.
// Complexity: O(log n).
func (t *Tree) Update(i, value int) error {
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	t.update(1, 0, t.n-1, i, value)
	return nil
}

func (t *Tree) update(node, lo, hi, i, value int) {
	if lo == hi {
		t.nodes[node] = value
		return
	}
	mid := lo + (hi-lo)/2
	if i <= mid {
		t.update(2*node, lo, mid, i, value)
	} else {
		t.update(2*node+1, mid+1, hi, i, value)
	}
	t.nodes[node] = t.combine(t.nodes[2*node], t.nodes[2*node+1])
}

// Add applies delta to the element at index i.
// Complexity: O(log n).
func (t *Tree) Add(i, delta int) error {
	current, err := t.Get(i)
	if err != nil {
		return err
	}
	return t.Update(i, current+delta)
}

// Get returns the element at index i.
// Complexity: O(log n).
func (t *Tree) Get(i int) (int, error) {
	if i < 0 || i >= t.n {
		return 0, ErrIndexOutOfRange
	}

	node, lo, hi := 1, 0, t.n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if i <= mid {
			node, hi = 2*node, mid
		} else {
			node, lo = 2*node+1, mid+1
		}
	}

	return t.nodes[node], nil
}

// Len returns the number of elements.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}
