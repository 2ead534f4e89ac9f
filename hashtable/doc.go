// Package hashtable implements a string→int hash table with separate
// chaining, built from first principles rather than on Go's map.
//
// 🚀 How it works
//
//	Keys are hashed with FNV-1a into a power-of-two bucket array; each
//	bucket is a short singly linked chain. When the load factor passes
//	0.75 the bucket count doubles and every entry is rehashed.
//
// ✨ Key properties:
//   - O(1) expected Put, Get, Contains and Delete
//   - Put reports whether the key was new; updates never grow the table
//   - Absence is a (value, ok) pair, never a sentinel value
//   - A nil *Table answers every read as an empty table
//   - Not goroutine-safe: wrap externally
//
// ⚙️ Usage:
//
//	ht := hashtable.New()
//	ht.Put("one", 1)
//	ht.Put("two", 2)
//	v, ok := ht.Get("one")   // 1, true
//	ht.Keys()                // ["one", "two"] in no particular order
//
// Performance: expected O(1) per operation with chains averaging under
// one entry; a resize rehashes all n entries once.
package hashtable
