package graphs_test

import (
	"testing"

	"github.com/mkravets/algokit/graphs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize rejects non-positive vertex counts.
func TestNew_InvalidSize(t *testing.T) {
	_, err := graphs.New(0, true)
	assert.ErrorIs(t, err, graphs.ErrInvalidSize)

	_, err = graphs.New(-1, false)
	assert.ErrorIs(t, err, graphs.ErrInvalidSize)
}

// TestAddEdge_Directed checks edge queries on a directed graph.
func TestAddEdge_Directed(t *testing.T) {
	g, err := graphs.New(3, true)
	require.NoError(t, err)
	require.True(t, g.Directed())

	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 7))

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "direction matters")

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 7, w)
	_, ok = g.Weight(2, 1)
	assert.False(t, ok)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, 0, g.InDegree(0))
	assert.Equal(t, 1, g.InDegree(2))
	assert.Equal(t, []int{1}, g.Neighbors(0))
}

// TestAddEdge_Undirected checks the mirrored edge and degree symmetry.
func TestAddEdge_Undirected(t *testing.T) {
	g, err := graphs.New(3, false)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 2))

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount(), "undirected edge counts once")
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, 1, g.InDegree(1))

	assert.ErrorIs(t, g.AddEdge(0, 3, 1), graphs.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), graphs.ErrVertexOutOfRange)
}

// TestBFS verifies level order, depths and parents on a small digraph.
func TestBFS(t *testing.T) {
	//      0
	//     / \
	//    1   2
	//    |   |
	//    3   4      5 is isolated
	g, err := graphs.New(6, true)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	tr, err := g.BFS(0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, tr.Order)
	assert.Equal(t, []int{0, 1, 1, 2, 2, -1}, tr.Depth)
	assert.Equal(t, -1, tr.Parent[0])
	assert.Equal(t, 0, tr.Parent[1])
	assert.Equal(t, 1, tr.Parent[3])
	assert.Equal(t, -1, tr.Parent[5], "isolated vertex stays unreached")
}

// TestBFS_ShortestDistance confirms depth is the minimum edge count
// even when a longer path is inserted first.
func TestBFS_ShortestDistance(t *testing.T) {
	g, err := graphs.New(4, true)
	require.NoError(t, err)
	// Long route 0→1→2→3 inserted before shortcut 0→3.
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	tr, err := g.BFS(0)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Depth[3], "shortcut wins")
	assert.Equal(t, 0, tr.Parent[3])
}

// TestDFS verifies preorder with insertion-order neighbor visits.
func TestDFS(t *testing.T) {
	g, err := graphs.New(6, true)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	tr, err := g.DFS(0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 4}, tr.Order, "deep before wide")
	assert.Equal(t, 2, tr.Depth[3])
	assert.Equal(t, -1, tr.Depth[5])
	assert.Equal(t, 1, tr.Parent[3])
}

// TestTraversal_Cycle confirms cycles terminate and revisits are
// skipped.
func TestTraversal_Cycle(t *testing.T) {
	g, err := graphs.New(3, true)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	bfs, err := g.BFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, bfs.Order)

	dfs, err := g.DFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, dfs.Order)
}

// TestTraversal_BadStart rejects out-of-range start vertices.
func TestTraversal_BadStart(t *testing.T) {
	g, err := graphs.New(2, false)
	require.NoError(t, err)

	_, err = g.BFS(2)
	assert.ErrorIs(t, err, graphs.ErrVertexOutOfRange)
	_, err = g.DFS(-1)
	assert.ErrorIs(t, err, graphs.ErrVertexOutOfRange)
}
