package graphs

import "errors"

var (
	// ErrNotDirected indicates a directed-only operation on an
	// undirected graph.
	ErrNotDirected = errors.New("graphs: graph is not directed")
	// ErrCycle indicates a cycle where a DAG was required.
	ErrCycle = errors.New("graphs: graph contains a cycle")
)

// TopoSort returns a topological order of a directed acyclic graph
// using Kahn's algorithm. Vertices with equal in-degree come out in
// vertex order. Returns ErrCycle when the graph has a cycle and
// ErrNotDirected for undirected graphs.
// Complexity: O(V + E).
func (g *Graph) TopoSort() ([]int, error) {
	if g == nil || !g.directed {
		return nil, ErrNotDirected
	}

	inDeg := make([]int, len(g.adj))
	for _, edges := range g.adj {
		for _, e := range edges {
			inDeg[e.to]++
		}
	}

	queue := make([]int, 0, len(g.adj))
	for v, d := range inDeg {
		if d == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, len(g.adj))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		for _, e := range g.adj[u] {
			inDeg[e.to]--
			if inDeg[e.to] == 0 {
				queue = append(queue, e.to)
			}
		}
	}

	if len(order) != len(g.adj) {
		return nil, ErrCycle
	}
	return order, nil
}
