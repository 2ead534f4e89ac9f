// Package dp provides classic dynamic-programming recurrences over ints
// and strings, each in its space-optimized bottom-up form.
//
// 🚀 What's inside
//
//	Sequence counting (Fib, Tribonacci, ClimbingStairs, UniquePaths),
//	knapsack-class selection (Knapsack01, KnapsackUnbounded, SubsetSum,
//	CoinChangeMin, CoinChangeWays, HouseRobber), string comparison (LCS,
//	EditDistance) and array recurrences (LIS, MaxSubarraySum).
//
// ✨ Key properties:
//   - Every function is a pure computation: inputs are never mutated
//   - Rolling arrays throughout: the 2D tables collapse to one row
//   - LIS runs in O(n log n) via patience tails and binary search
//   - Negative indices and empty inputs answer the identity of the
//     recurrence (0 ways, 0 length, 0 profit) instead of panicking
//
// ⚙️ Usage:
//
//	dp.Fib(10)                              // 55
//	dp.LCS("abcde", "ace")                  // 3
//	dp.CoinChangeMin([]int{1, 2, 5}, 11)    // 3
//	dp.Knapsack01([]int{1, 3, 4}, []int{15, 20, 30}, 4)  // 35
//
// Performance: string and knapsack recurrences are O(n·m) time with
// O(min) or O(capacity) space; the sequence recurrences are O(n).
package dp
