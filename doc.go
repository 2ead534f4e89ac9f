// Package algokit is an in-memory playground of fundamental data structures
// and algorithms: a reference toolkit for learning and for solving
// algorithmic problems.
//
// 🚀 What is algokit?
//
//	A collection of small, focused packages, each owning its storage and
//	exposing a narrow value-semantics API:
//		• Ordered maps: avltree (height-balanced), rbtree (color-balanced)
//		• Bounded caches: lru (recency eviction), lfu (frequency eviction)
//		• Range trees: fenwick (binary indexed tree), segtree (segment tree)
//		• Disjoint sets: unionfind
//		• Simple containers: list, stack, queue, hashtable
//		• Classic algorithms: sorting, searching, strmatch, dp
//		• Graph basics: graphs (adjacency list + BFS/DFS, Dijkstra,
//		  topological sort, Kruskal MST)
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal APIs, clear, intuitive naming
//   - Honest contracts – absence is a (value, ok) pair, never a sentinel value
//   - Pure in-memory – no persistence, no network, no hidden goroutines
//   - Observable – optional Prometheus metrics for the caches (cachemetrics)
//
// Every structure is single-threaded on purpose: callers that need
// concurrency wrap an instance externally. Constructors validate their
// arguments and return sentinel errors; all lookups report absence through
// a boolean, so zero values stay honest.
//
// See the per-package doc.go files for detailed contracts, complexity notes
// and usage sketches, and examples/ for runnable demos.
package algokit
