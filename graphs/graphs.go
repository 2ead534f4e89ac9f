package graphs

import "errors"

var (
	// ErrInvalidSize indicates a non-positive vertex count passed to New.
	ErrInvalidSize = errors.New("graphs: vertex count must be positive")
	// ErrVertexOutOfRange indicates a vertex outside 0..VertexCount()−1.
	ErrVertexOutOfRange = errors.New("graphs: vertex out of range")
)

// edge is one adjacency entry.
type edge struct {
	to     int
	weight int
}

// Graph is an adjacency-list graph over vertices 0..n−1. Construct
// with New.
type Graph struct {
	directed bool
	adj      [][]edge
	edges    int
}

// New returns an empty Graph with n vertices.
// Returns ErrInvalidSize when n < 1.
// Complexity: O(n).
func New(n int, directed bool) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	return &Graph{directed: directed, adj: make([][]edge, n)}, nil
}

// AddEdge adds an edge from u to v with the given weight; undirected
// graphs get the reverse edge too. Parallel edges accumulate.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v, weight int) error {
	if err := g.check(u, v); err != nil {
		return err
	}

	g.adj[u] = append(g.adj[u], edge{to: v, weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], edge{to: u, weight: weight})
	}
	g.edges++

	return nil
}

// HasEdge reports whether an edge from u to v exists.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if g == nil || g.check(u, v) != nil {
		return false
	}
	for _, e := range g.adj[u] {
		if e.to == v {
			return true
		}
	}
	return false
}

// Weight returns the weight of the first edge from u to v; ok is false
// when no such edge exists.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (int, bool) {
	if g == nil || g.check(u, v) != nil {
		return 0, false
	}
	for _, e := range g.adj[u] {
		if e.to == v {
			return e.weight, true
		}
	}
	return 0, false
}

// Neighbors returns the out-neighbors of v in edge insertion order.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if g == nil || v < 0 || v >= len(g.adj) {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	for i, e := range g.adj[v] {
		out[i] = e.to
	}
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	return len(g.adj)
}

// EdgeCount returns the number of AddEdge calls that succeeded; an
// undirected edge counts once.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return g.edges
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	return g != nil && g.directed
}

// OutDegree returns the number of edges leaving v, or 0 when v is out
// of range.
func (g *Graph) OutDegree(v int) int {
	if g == nil || v < 0 || v >= len(g.adj) {
		return 0
	}
	return len(g.adj[v])
}

// InDegree returns the number of edges entering v, or 0 when v is out
// of range. Complexity: O(V + E) for directed graphs.
func (g *Graph) InDegree(v int) int {
	if g == nil || v < 0 || v >= len(g.adj) {
		return 0
	}
	if !g.directed {
		return len(g.adj[v])
	}

	in := 0
	for _, edges := range g.adj {
		for _, e := range edges {
			if e.to == v {
				in++
			}
		}
	}
	return in
}

func (g *Graph) check(vertices ...int) error {
	for _, v := range vertices {
		if v < 0 || v >= len(g.adj) {
			return ErrVertexOutOfRange
		}
	}
	return nil
}
