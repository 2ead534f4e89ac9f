// Package lfu provides a bounded integer→integer cache that evicts the
// least-frequently-used entry, breaking frequency ties by recency.
//
// 🚀 How it works
//
//	Every entry carries a frequency counter (1 on insert). Entries at the
//	same frequency live in a bucket, a doubly-linked list ordered most-
//	recently-touched first, and a frequency→bucket map plus a minFreq
//	scalar locate the eviction bucket in O(1):
//	  • Get and Put (update or insert) count as one access and move the
//	    entry to the head of the next frequency bucket
//	  • Inserting a new key at full capacity evicts the tail of the
//	    minFreq bucket, the least recently touched among the least
//	    frequently used
//	  • Contains and FrequencyOf are pure reads: they never count
//
// ✨ Key properties:
//   - Fixed positive capacity chosen at construction (ErrInvalidCapacity
//     otherwise); updates are hits and never evict
//   - FrequencyOf reports −1 for absent keys, MinFrequency 0 when empty
//   - Deleting the last entry of the minFreq bucket leaves minFreq lazy:
//     the next insert forces it back to one, so the API never notices
//   - Optional metrics hook (cachemetrics) for hits/misses/evictions
//   - Not goroutine-safe: wrap externally if you need concurrency
//
// ⚙️ Usage:
//
//	c, err := lfu.New(2)
//	if err != nil { ... }
//	c.Put(1, 1)
//	c.Get(1)            // frequency 1 → 2
//	c.Put(2, 2)
//	c.Put(3, 3)         // evicts 2 (frequency 1)
//
// Performance: Get / Put / Delete are O(1) amortized.
package lfu
