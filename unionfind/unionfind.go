package unionfind

import "errors"

// ErrInvalidSize indicates a non-positive element count passed to New.
var ErrInvalidSize = errors.New("unionfind: size must be positive")

// UF is a disjoint-set union over elements 0..n−1. Construct with New.
type UF struct {
	parent     []int
	rank       []int
	size       []int
	components int
}

// New returns a UF of n singleton sets over elements 0..n−1.
// Returns ErrInvalidSize when n < 1.
// Complexity: O(n).
func New(n int) (*UF, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	uf := &UF{
		parent:     make([]int, n),
		rank:       make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	uf.reset()

	return uf, nil
}

func (uf *UF) reset() {
	for i := range uf.parent {
		uf.parent[i] = i
		uf.rank[i] = 0
		uf.size[i] = 1
	}
	uf.components = len(uf.parent)
}

// Find returns the representative of the set containing x, compressing
// the path along the way. Returns −1 when x is out of range.
// Complexity: O(α(n)) amortized.
func (uf *UF) Find(x int) int {
	if uf == nil || x < 0 || x >= len(uf.parent) {
		return -1
	}

	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression: point every node on the walk at the root.
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}

	return root
}

// Union merges the sets containing x and y, attaching by rank, and
// reports whether a merge happened. Returns false when x and y already
// share a set or either is out of range.
// Complexity: O(α(n)) amortized.
func (uf *UF) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}

	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	uf.components--

	return true
}

// Connected reports whether x and y share a set.
// Complexity: O(α(n)) amortized.
func (uf *UF) Connected(x, y int) bool {
	rx := uf.Find(x)
	return rx >= 0 && rx == uf.Find(y)
}

// ComponentSize returns the size of the set containing x, or 0 when x
// is out of range.
// Complexity: O(α(n)) amortized.
func (uf *UF) ComponentSize(x int) int {
	root := uf.Find(x)
	if root < 0 {
		return 0
	}
	return uf.size[root]
}

// Components returns the current number of disjoint sets.
func (uf *UF) Components() int {
	if uf == nil {
		return 0
	}
	return uf.components
}

// Len returns the total number of elements.
func (uf *UF) Len() int {
	if uf == nil {
		return 0
	}
	return len(uf.parent)
}

// IsRoot reports whether x is the representative of its set.
func (uf *UF) IsRoot(x int) bool {
	if uf == nil || x < 0 || x >= len(uf.parent) {
		return false
	}
	return uf.parent[x] == x
}

// Clear returns every element to its own singleton set.
// Complexity: O(n).
func (uf *UF) Clear() {
	if uf == nil {
		return
	}
	uf.reset()
}
