package graphs

import (
	"container/heap"
	"errors"
	"math"
)

// ErrNegativeWeight indicates an edge with negative weight reached by
// Dijkstra.
var ErrNegativeWeight = errors.New("graphs: negative edge weight")

// Unreachable marks a vertex with no path from the source in a
// ShortestPaths result.
const Unreachable = math.MaxInt

// ShortestPaths holds single-source shortest path distances and the
// shortest-path tree.
type ShortestPaths struct {
	// Dist maps vertex → total weight of the shortest path from the
	// source; Unreachable when no path exists.
	Dist []int
	// Parent maps vertex → predecessor on the shortest path; −1 for
	// the source and unreachable vertices.
	Parent []int
}

// pqItem is a vertex with its tentative distance.
type pqItem struct {
	vertex int
	dist   int
}

// pq is a min-heap of pqItem by distance.
type pq []pqItem

func (q pq) Len() int           { return len(q) }
func (q pq) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x any)        { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Dijkstra computes shortest paths from start over non-negative edge
// weights. Returns ErrNegativeWeight if a negative edge is relaxed and
// ErrVertexOutOfRange for a bad start.
// Complexity: O((V + E) log V).
func (g *Graph) Dijkstra(start int) (*ShortestPaths, error) {
	if g == nil || g.check(start) != nil {
		return nil, ErrVertexOutOfRange
	}

	sp := &ShortestPaths{
		Dist:   make([]int, len(g.adj)),
		Parent: make([]int, len(g.adj)),
	}
	for i := range sp.Dist {
		sp.Dist[i] = Unreachable
		sp.Parent[i] = -1
	}
	sp.Dist[start] = 0

	q := &pq{{vertex: start, dist: 0}}
	for q.Len() > 0 {
		item := heap.Pop(q).(pqItem)
		if item.dist > sp.Dist[item.vertex] {
			continue // stale entry
		}

		for _, e := range g.adj[item.vertex] {
			if e.weight < 0 {
				return nil, ErrNegativeWeight
			}
			next := item.dist + e.weight
			if next < sp.Dist[e.to] {
				sp.Dist[e.to] = next
				sp.Parent[e.to] = item.vertex
				heap.Push(q, pqItem{vertex: e.to, dist: next})
			}
		}
	}

	return sp, nil
}

// PathTo reconstructs the shortest path from the source to v, or nil
// when v is unreachable or out of range.
// Complexity: O(path length).
func (sp *ShortestPaths) PathTo(v int) []int {
	if sp == nil || v < 0 || v >= len(sp.Dist) || sp.Dist[v] == Unreachable {
		return nil
	}

	var path []int
	for u := v; u != -1; u = sp.Parent[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
