package dp

import "github.com/mkravets/algokit/searching"

// Fib returns the nth Fibonacci number (0-indexed: Fib(0)=0, Fib(1)=1);
// negative n answers 0.
// Complexity: O(n) time, O(1) space.
func Fib(n int) int {
	if n < 1 {
		return 0
	}

	prev, cur := 0, 1
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// Tribonacci returns the nth Tribonacci number: T(0)=0, T(1)=T(2)=1,
// T(n)=T(n−1)+T(n−2)+T(n−3).
// Complexity: O(n) time, O(1) space.
func Tribonacci(n int) int {
	if n < 1 {
		return 0
	}
	if n < 3 {
		return 1
	}

	a, b, c := 0, 1, 1
	for i := 3; i <= n; i++ {
		a, b, c = b, c, a+b+c
	}
	return c
}

// ClimbingStairs returns the number of ways to climb n stairs taking 1
// or 2 steps at a time; 1 way for zero stairs.
// Complexity: O(n) time, O(1) space.
func ClimbingStairs(n int) int {
	if n < 0 {
		return 0
	}
	return Fib(n + 1)
}

// Knapsack01 returns the maximum value achievable by selecting items at
// most once within the weight capacity. weights and values are paired
// by index; extra entries of the longer slice are ignored.
// Complexity: O(n·capacity) time, O(capacity) space.
func Knapsack01(weights, values []int, capacity int) int {
	if capacity < 0 {
		return 0
	}
	n := min(len(weights), len(values))

	best := make([]int, capacity+1)
	for i := 0; i < n; i++ {
		if weights[i] < 0 {
			continue
		}
		// Walk capacity downward so each item is counted once.
		for w := capacity; w >= weights[i]; w-- {
			if v := best[w-weights[i]] + values[i]; v > best[w] {
				best[w] = v
			}
		}
	}
	return best[capacity]
}

// KnapsackUnbounded is Knapsack01 with unlimited copies of each item.
// Complexity: O(n·capacity) time, O(capacity) space.
func KnapsackUnbounded(weights, values []int, capacity int) int {
	if capacity < 0 {
		return 0
	}
	n := min(len(weights), len(values))

	best := make([]int, capacity+1)
	for i := 0; i < n; i++ {
		if weights[i] < 1 {
			continue
		}
		// Walk capacity upward so an item can be re-used.
		for w := weights[i]; w <= capacity; w++ {
			if v := best[w-weights[i]] + values[i]; v > best[w] {
				best[w] = v
			}
		}
	}
	return best[capacity]
}

// SubsetSum reports whether some subset of nums sums exactly to target.
// The empty subset covers target 0. Assumes non-negative numbers.
// Complexity: O(n·target) time, O(target) space.
func SubsetSum(nums []int, target int) bool {
	if target < 0 {
		return false
	}

	reachable := make([]bool, target+1)
	reachable[0] = true
	for _, x := range nums {
		if x < 0 {
			continue
		}
		for s := target; s >= x; s-- {
			if reachable[s-x] {
				reachable[s] = true
			}
		}
	}
	return reachable[target]
}

// LCS returns the length of the longest common subsequence of a and b.
// Complexity: O(n·m) time, O(min(n,m)) space.
func LCS(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// EditDistance returns the minimum number of single-character inserts,
// deletes and substitutions transforming a into b.
// Complexity: O(n·m) time, O(min(n,m)) space.
func EditDistance(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			best := prev[j-1] // substitute
			if prev[j] < best {
				best = prev[j] // delete from a
			}
			if cur[j-1] < best {
				best = cur[j-1] // insert into a
			}
			cur[j] = best + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// LIS returns the length of the longest strictly increasing subsequence
// of nums, replacing patience tails through binary search.
// Complexity: O(n log n) time, O(n) space.
func LIS(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, x := range nums {
		i := searching.LowerBound(tails, x)
		if i == len(tails) {
			tails = append(tails, x)
		} else {
			tails[i] = x
		}
	}
	return len(tails)
}

// MaxSubarraySum returns the largest sum of a non-empty contiguous
// subarray (Kadane); 0 for an empty slice.
// Complexity: O(n) time, O(1) space.
func MaxSubarraySum(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	best, cur := nums[0], nums[0]
	for _, x := range nums[1:] {
		if cur < 0 {
			cur = x
		} else {
			cur += x
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// CoinChangeMin returns the minimum number of coins summing to amount,
// or −1 when no combination exists. Coins are unlimited.
// Complexity: O(n·amount) time, O(amount) space.
func CoinChangeMin(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}

	const unset = -1
	need := make([]int, amount+1)
	for s := 1; s <= amount; s++ {
		need[s] = unset
	}
	for _, c := range coins {
		if c < 1 {
			continue
		}
		for s := c; s <= amount; s++ {
			if need[s-c] == unset {
				continue
			}
			if need[s] == unset || need[s-c]+1 < need[s] {
				need[s] = need[s-c] + 1
			}
		}
	}
	return need[amount]
}

// CoinChangeWays returns the number of distinct coin combinations
// (order-insensitive) summing to amount. Coins are unlimited.
// Complexity: O(n·amount) time, O(amount) space.
func CoinChangeWays(coins []int, amount int) int {
	if amount < 0 {
		return 0
	}

	ways := make([]int, amount+1)
	ways[0] = 1
	for _, c := range coins {
		if c < 1 {
			continue
		}
		for s := c; s <= amount; s++ {
			ways[s] += ways[s-c]
		}
	}
	return ways[amount]
}

// UniquePaths returns the number of monotone lattice paths across an
// m×n grid from the top-left to the bottom-right cell.
// Complexity: O(m·n) time, O(n) space.
func UniquePaths(m, n int) int {
	if m < 1 || n < 1 {
		return 0
	}

	row := make([]int, n)
	for j := range row {
		row[j] = 1
	}
	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			row[j] += row[j-1]
		}
	}
	return row[n-1]
}

// HouseRobber returns the maximum sum of non-adjacent elements of nums.
// Complexity: O(n) time, O(1) space.
func HouseRobber(nums []int) int {
	skip, take := 0, 0
	for _, x := range nums {
		skip, take = max(skip, take), skip+x
	}
	return max(skip, take)
}
