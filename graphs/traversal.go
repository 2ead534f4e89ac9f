package graphs

// Traversal holds the outcome of a BFS or DFS walk.
type Traversal struct {
	// Order is the sequence of visited vertices.
	Order []int
	// Depth maps vertex → distance from the start (BFS: edge count,
	// DFS: discovery depth); −1 for unreachable vertices.
	Depth []int
	// Parent maps vertex → predecessor in the traversal tree; −1 for
	// the start and unreachable vertices.
	Parent []int
}

func (g *Graph) newTraversal() *Traversal {
	tr := &Traversal{
		Order:  make([]int, 0, len(g.adj)),
		Depth:  make([]int, len(g.adj)),
		Parent: make([]int, len(g.adj)),
	}
	for i := range tr.Depth {
		tr.Depth[i] = -1
		tr.Parent[i] = -1
	}
	return tr
}

// BFS walks the graph breadth-first from start, visiting neighbors in
// edge insertion order, and returns the traversal tree. Depth is the
// minimum edge count from start.
// Complexity: O(V + E), Memory: O(V).
func (g *Graph) BFS(start int) (*Traversal, error) {
	if g == nil || g.check(start) != nil {
		return nil, ErrVertexOutOfRange
	}

	tr := g.newTraversal()
	tr.Depth[start] = 0

	queue := make([]int, 0, len(g.adj))
	queue = append(queue, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		tr.Order = append(tr.Order, u)

		for _, e := range g.adj[u] {
			if tr.Depth[e.to] >= 0 {
				continue
			}
			tr.Depth[e.to] = tr.Depth[u] + 1
			tr.Parent[e.to] = u
			queue = append(queue, e.to)
		}
	}

	return tr, nil
}

// DFS walks the graph depth-first from start, visiting neighbors in
// edge insertion order, and returns the preorder traversal tree.
// Complexity: O(V + E), Memory: O(V) stack.
func (g *Graph) DFS(start int) (*Traversal, error) {
	if g == nil || g.check(start) != nil {
		return nil, ErrVertexOutOfRange
	}

	tr := g.newTraversal()
	g.dfsVisit(tr, start, 0)

	return tr, nil
}

func (g *Graph) dfsVisit(tr *Traversal, u, depth int) {
	tr.Depth[u] = depth
	tr.Order = append(tr.Order, u)

	for _, e := range g.adj[u] {
		if tr.Depth[e.to] >= 0 {
			continue
		}
		tr.Parent[e.to] = u
		g.dfsVisit(tr, e.to, depth+1)
	}
}
