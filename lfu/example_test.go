package lfu_test

import (
	"fmt"

	"github.com/mkravets/algokit/lfu"
)

// ExampleCache replays the canonical capacity-2 scenario with a
// frequency tie broken by recency.
func ExampleCache() {
	c, _ := lfu.New(2)

	c.Put(1, 1)
	c.Put(2, 2)

	v, _ := c.Get(1) // frequency 1 → 2
	fmt.Println("get 1:", v)

	c.Put(3, 3) // evicts 2, the only frequency-1 entry

	_, ok := c.Get(2)
	fmt.Println("2 present:", ok)
	fmt.Println("freq of 1:", c.FrequencyOf(1))
	// Output:
	// get 1: 1
	// 2 present: false
	// freq of 1: 2
}
