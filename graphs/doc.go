// Package graphs provides a small adjacency-list graph over integer
// vertices with traversals, shortest paths, topological sort and
// minimum spanning trees.
//
// 🚀 What's inside
//
//	A Graph holds vertices 0..n−1 and weighted edges, directed or
//	undirected, as per-vertex adjacency slices in insertion order. BFS
//	and DFS return a Traversal: the visit order plus per-vertex depth
//	and parent arrays describing the traversal tree. Dijkstra computes
//	single-source shortest paths, TopoSort orders a DAG, and KruskalMST
//	joins components through a disjoint-set union.
//
// ✨ Key properties:
//   - Parallel edges are allowed; AddEdge never deduplicates
//   - BFS depth is the edge distance from the start; DFS depth is the
//     discovery depth; unreachable vertices carry depth −1
//   - Neighbors are visited in edge insertion order, so traversals are
//     deterministic
//   - Dijkstra requires non-negative weights (ErrNegativeWeight),
//     TopoSort a directed acyclic graph (ErrNotDirected, ErrCycle),
//     KruskalMST a connected undirected graph (ErrDisconnected)
//   - Out-of-range vertices are reported with ErrVertexOutOfRange
//
// ⚙️ Usage:
//
//	g, err := graphs.New(4, true)
//	if err != nil { ... }
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	tr, _ := g.BFS(0)
//	// tr.Order == [0 1 2], tr.Depth[2] == 2
//
// Performance: AddEdge is O(1); BFS, DFS and TopoSort run in O(V + E);
// Dijkstra in O((V + E) log V); KruskalMST in O(E log E).
package graphs
