package dp_test

import (
	"fmt"

	"github.com/mkravets/algokit/dp"
)

// ExampleCoinChangeMin makes change for 11 from the {1, 2, 5} coin set.
func ExampleCoinChangeMin() {
	coins := []int{1, 2, 5}

	fmt.Println(dp.CoinChangeMin(coins, 11))
	fmt.Println(dp.CoinChangeWays(coins, 5))
	fmt.Println(dp.CoinChangeMin([]int{2}, 3))

	// Output:
	// 3
	// 4
	// -1
}

// ExampleLCS compares two short strings three ways.
func ExampleLCS() {
	fmt.Println(dp.LCS("abcde", "ace"))
	fmt.Println(dp.EditDistance("horse", "ros"))
	fmt.Println(dp.LIS([]int{10, 9, 2, 5, 3, 7, 101, 18}))

	// Output:
	// 3
	// 3
	// 4
}
