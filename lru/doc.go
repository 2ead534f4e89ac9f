// Package lru provides a bounded integer→integer cache that evicts the
// least-recently-used entry when a new key is inserted at full capacity.
//
// 🚀 How it works
//
//	A doubly-linked recency list with sentinel head and tail nodes keeps
//	entries ordered from most- to least-recently used, and a key→node map
//	makes every operation O(1):
//	  • Get promotes the entry to most-recent and returns its value
//	  • Put inserts or updates (updates also promote); inserting at full
//	    capacity first evicts the entry next to the tail sentinel
//	  • Contains reads only the index and never promotes
//
// ✨ Key properties:
//   - Fixed positive capacity chosen at construction (ErrInvalidCapacity
//     otherwise); updates never evict, even at capacity
//   - PeekOldest always names the next eviction victim
//   - Optional metrics hook (cachemetrics) for hits/misses/evictions
//   - Not goroutine-safe: wrap externally if you need concurrency
//
// ⚙️ Usage:
//
//	c, err := lru.New(2)
//	if err != nil { ... }
//	c.Put(1, 1)
//	c.Put(2, 2)
//	c.Get(1)    // promotes 1
//	c.Put(3, 3) // evicts 2
//
// Performance: Get / Put / Delete are O(1) amortized.
package lru
