package dp_test

import (
	"testing"

	"github.com/mkravets/algokit/dp"
	"github.com/stretchr/testify/assert"
)

// TestFib walks the base cases and a few known values, including the
// negative-index identity.
func TestFib(t *testing.T) {
	assert.Equal(t, 0, dp.Fib(-3))
	assert.Equal(t, 0, dp.Fib(0))
	assert.Equal(t, 1, dp.Fib(1))
	assert.Equal(t, 1, dp.Fib(2))
	assert.Equal(t, 55, dp.Fib(10))
	assert.Equal(t, 6765, dp.Fib(20))
}

// TestTribonacci checks the three seeds and the published small values.
func TestTribonacci(t *testing.T) {
	assert.Equal(t, 0, dp.Tribonacci(0))
	assert.Equal(t, 1, dp.Tribonacci(1))
	assert.Equal(t, 1, dp.Tribonacci(2))
	assert.Equal(t, 2, dp.Tribonacci(3))
	assert.Equal(t, 4, dp.Tribonacci(4))
	assert.Equal(t, 149, dp.Tribonacci(10))
}

// TestClimbingStairs verifies the shifted Fibonacci identity: one way for
// zero stairs, none for a negative count.
func TestClimbingStairs(t *testing.T) {
	assert.Equal(t, 0, dp.ClimbingStairs(-1))
	assert.Equal(t, 1, dp.ClimbingStairs(0))
	assert.Equal(t, 1, dp.ClimbingStairs(1))
	assert.Equal(t, 2, dp.ClimbingStairs(2))
	assert.Equal(t, 8, dp.ClimbingStairs(5))
}

// TestKnapsack01 replays the classic three-item fixture and the
// degenerate capacities.
func TestKnapsack01(t *testing.T) {
	weights := []int{1, 3, 4}
	values := []int{15, 20, 30}

	assert.Equal(t, 35, dp.Knapsack01(weights, values, 4))
	assert.Equal(t, 45, dp.Knapsack01(weights, values, 5))
	assert.Equal(t, 65, dp.Knapsack01(weights, values, 8))
	assert.Equal(t, 0, dp.Knapsack01(weights, values, 0))
	assert.Equal(t, 0, dp.Knapsack01(weights, values, -1))
	assert.Equal(t, 0, dp.Knapsack01(nil, nil, 10))
}

// TestKnapsack01_MismatchedSlices pairs items by index and ignores the
// tail of the longer slice.
func TestKnapsack01_MismatchedSlices(t *testing.T) {
	// Only {w:2,v:10} and {w:3,v:5} are paired; the third weight has no value.
	assert.Equal(t, 15, dp.Knapsack01([]int{2, 3, 1}, []int{10, 5}, 5))
}

// TestKnapsackUnbounded allows item re-use: one weight-1 item dominates.
func TestKnapsackUnbounded(t *testing.T) {
	weights := []int{1, 3, 4}
	values := []int{15, 20, 30}

	assert.Equal(t, 60, dp.KnapsackUnbounded(weights, values, 4))
	assert.Equal(t, 120, dp.KnapsackUnbounded(weights, values, 8))
	assert.Equal(t, 0, dp.KnapsackUnbounded(weights, values, 0))
	assert.Equal(t, 0, dp.KnapsackUnbounded(weights, values, -2))
}

// TestSubsetSum covers the empty-subset identity, reachable and
// unreachable targets, and tolerance of negative entries.
func TestSubsetSum(t *testing.T) {
	nums := []int{3, 34, 4, 12, 5, 2}

	assert.True(t, dp.SubsetSum(nums, 0), "empty subset sums to zero")
	assert.True(t, dp.SubsetSum(nums, 9))
	assert.True(t, dp.SubsetSum(nums, 21))
	assert.False(t, dp.SubsetSum(nums, 30))
	assert.False(t, dp.SubsetSum(nums, -1))
	assert.True(t, dp.SubsetSum([]int{-7, 4, 5}, 9), "negative entries are skipped")
	assert.False(t, dp.SubsetSum(nil, 1))
}

// TestLCS checks the textbook pairs in both argument orders plus the
// empty-string and disjoint-alphabet edges.
func TestLCS(t *testing.T) {
	assert.Equal(t, 3, dp.LCS("abcde", "ace"))
	assert.Equal(t, 3, dp.LCS("ace", "abcde"))
	assert.Equal(t, 4, dp.LCS("AGGTAB", "GXTXAYB"))
	assert.Equal(t, 0, dp.LCS("abc", "xyz"))
	assert.Equal(t, 0, dp.LCS("", "abc"))
	assert.Equal(t, 3, dp.LCS("abc", "abc"))
}

// TestEditDistance checks the Levenshtein classics and the degenerate
// one-empty-string cases where the distance is the other length.
func TestEditDistance(t *testing.T) {
	assert.Equal(t, 3, dp.EditDistance("horse", "ros"))
	assert.Equal(t, 5, dp.EditDistance("intention", "execution"))
	assert.Equal(t, 0, dp.EditDistance("same", "same"))
	assert.Equal(t, 4, dp.EditDistance("", "abcd"))
	assert.Equal(t, 4, dp.EditDistance("abcd", ""))
}

// TestLIS requires strict increase: duplicates do not extend a run.
func TestLIS(t *testing.T) {
	assert.Equal(t, 4, dp.LIS([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	assert.Equal(t, 1, dp.LIS([]int{7, 7, 7, 7}))
	assert.Equal(t, 5, dp.LIS([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 1, dp.LIS([]int{5, 4, 3, 2, 1}))
	assert.Equal(t, 0, dp.LIS(nil))
}

// TestMaxSubarraySum covers the classic mixed array, an all-negative
// array (best single element) and the empty identity.
func TestMaxSubarraySum(t *testing.T) {
	assert.Equal(t, 6, dp.MaxSubarraySum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}))
	assert.Equal(t, -1, dp.MaxSubarraySum([]int{-8, -3, -1, -4}))
	assert.Equal(t, 15, dp.MaxSubarraySum([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, dp.MaxSubarraySum(nil))
}

// TestCoinChangeMin answers −1 for unreachable amounts and skips
// non-positive denominations.
func TestCoinChangeMin(t *testing.T) {
	assert.Equal(t, 3, dp.CoinChangeMin([]int{1, 2, 5}, 11))
	assert.Equal(t, 0, dp.CoinChangeMin([]int{1, 2, 5}, 0))
	assert.Equal(t, -1, dp.CoinChangeMin([]int{2}, 3))
	assert.Equal(t, -1, dp.CoinChangeMin([]int{5, 10}, -4))
	assert.Equal(t, 2, dp.CoinChangeMin([]int{0, -3, 7}, 14), "non-positive coins are skipped")
}

// TestCoinChangeWays counts combinations, not permutations: {1,2} and
// {2,1} are one way.
func TestCoinChangeWays(t *testing.T) {
	assert.Equal(t, 4, dp.CoinChangeWays([]int{1, 2, 5}, 5))
	assert.Equal(t, 1, dp.CoinChangeWays([]int{3}, 9))
	assert.Equal(t, 0, dp.CoinChangeWays([]int{2}, 3))
	assert.Equal(t, 1, dp.CoinChangeWays([]int{1, 2}, 0), "one empty combination for amount 0")
	assert.Equal(t, 0, dp.CoinChangeWays([]int{1}, -1))
}

// TestUniquePaths checks the lattice counts including the single-cell
// grid and the invalid-dimension identity.
func TestUniquePaths(t *testing.T) {
	assert.Equal(t, 28, dp.UniquePaths(3, 7))
	assert.Equal(t, 28, dp.UniquePaths(7, 3))
	assert.Equal(t, 1, dp.UniquePaths(1, 1))
	assert.Equal(t, 1, dp.UniquePaths(1, 9))
	assert.Equal(t, 0, dp.UniquePaths(0, 5))
}

// TestHouseRobber verifies the non-adjacency constraint on the classic
// fixtures and the empty identity.
func TestHouseRobber(t *testing.T) {
	assert.Equal(t, 4, dp.HouseRobber([]int{1, 2, 3, 1}))
	assert.Equal(t, 12, dp.HouseRobber([]int{2, 7, 9, 3, 1}))
	assert.Equal(t, 7, dp.HouseRobber([]int{7}))
	assert.Equal(t, 0, dp.HouseRobber(nil))
}
