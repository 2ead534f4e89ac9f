package segtree_test

import (
	"fmt"

	"github.com/mkravets/algokit/segtree"
)

// ExampleTree answers mutable range-minimum queries.
func ExampleTree() {
	st, _ := segtree.FromSlice([]int{5, 2, 8, 1, 9}, segtree.KindMin)

	v, _ := st.Query(0, 4)
	fmt.Println("min:", v)

	_ = st.Update(3, 100)
	v, _ = st.Query(0, 4)
	fmt.Println("after update:", v)
	// Output:
	// min: 1
	// after update: 2
}
