package graphs

import (
	"errors"
	"sort"

	"github.com/mkravets/algokit/unionfind"
)

var (
	// ErrNotUndirected indicates an undirected-only operation on a
	// directed graph.
	ErrNotUndirected = errors.New("graphs: graph is not undirected")
	// ErrDisconnected indicates a spanning tree cannot cover every
	// vertex.
	ErrDisconnected = errors.New("graphs: graph is not connected")
)

// MSTEdge is one edge of a minimum spanning tree.
type MSTEdge struct {
	U, V   int
	Weight int
}

// MST holds a minimum spanning tree.
type MST struct {
	Edges       []MSTEdge
	TotalWeight int
}

// KruskalMST computes a minimum spanning tree of a connected undirected
// graph by sorting edges and joining components with a disjoint-set
// union. Returns ErrNotUndirected for directed graphs and
// ErrDisconnected when some vertex cannot be reached.
// Complexity: O(E log E).
func (g *Graph) KruskalMST() (*MST, error) {
	if g == nil || g.directed {
		return nil, ErrNotUndirected
	}

	// Collect each undirected edge once, from its lower endpoint.
	edges := make([]MSTEdge, 0, g.edges)
	for u, adj := range g.adj {
		for _, e := range adj {
			if u <= e.to {
				edges = append(edges, MSTEdge{U: u, V: e.to, Weight: e.weight})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	uf, err := unionfind.New(len(g.adj))
	if err != nil {
		return nil, err
	}

	mst := &MST{Edges: make([]MSTEdge, 0, len(g.adj)-1)}
	for _, e := range edges {
		if !uf.Union(e.U, e.V) {
			continue
		}
		mst.Edges = append(mst.Edges, e)
		mst.TotalWeight += e.Weight
		if len(mst.Edges) == len(g.adj)-1 {
			break
		}
	}

	if len(mst.Edges) != len(g.adj)-1 {
		return nil, ErrDisconnected
	}
	return mst, nil
}
