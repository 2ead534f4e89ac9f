package graphs_test

import (
	"testing"

	"github.com/mkravets/algokit/graphs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDijkstra verifies distances and path reconstruction on the
// classic small weighted digraph.
func TestDijkstra(t *testing.T) {
	//        (4)      (1)
	//    0 ------> 1 ------> 3
	//    |         ^         ^
	//  (1)|      (2)|      (5)|
	//    v         |         |
	//    2 --------+---------+
	g, err := graphs.New(4, true)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 2))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 5))

	sp, err := g.Dijkstra(0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3, 1, 4}, sp.Dist, "relaxation through 2 beats the direct edge")
	assert.Equal(t, []int{0, 2, 1, 3}, sp.PathTo(3))
	assert.Equal(t, []int{0}, sp.PathTo(0), "path to source is itself")
}

// TestDijkstra_Unreachable marks vertices with no path.
func TestDijkstra_Unreachable(t *testing.T) {
	g, err := graphs.New(3, true)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))

	sp, err := g.Dijkstra(0)
	require.NoError(t, err)

	assert.Equal(t, graphs.Unreachable, sp.Dist[2])
	assert.Nil(t, sp.PathTo(2))
	assert.Nil(t, sp.PathTo(9), "out of range")
}

// TestDijkstra_Errors rejects negative weights and bad starts.
func TestDijkstra_Errors(t *testing.T) {
	g, err := graphs.New(2, true)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, -3))

	_, err = g.Dijkstra(0)
	assert.ErrorIs(t, err, graphs.ErrNegativeWeight)

	_, err = g.Dijkstra(5)
	assert.ErrorIs(t, err, graphs.ErrVertexOutOfRange)
}

// TestTopoSort orders a DAG and respects every edge.
func TestTopoSort(t *testing.T) {
	g, err := graphs.New(6, true)
	require.NoError(t, err)
	deps := [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}}
	for _, e := range deps {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	order, err := g.TopoSort()
	require.NoError(t, err)
	require.Len(t, order, 6)

	pos := make(map[int]int, 6)
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range deps {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d→%d out of order", e[0], e[1])
	}
}

// TestTopoSort_Errors rejects cycles and undirected graphs.
func TestTopoSort_Errors(t *testing.T) {
	g, err := graphs.New(3, true)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	_, err = g.TopoSort()
	assert.ErrorIs(t, err, graphs.ErrCycle)

	u, err := graphs.New(2, false)
	require.NoError(t, err)
	_, err = u.TopoSort()
	assert.ErrorIs(t, err, graphs.ErrNotDirected)
}

// TestKruskalMST builds the textbook MST and checks the total weight.
func TestKruskalMST(t *testing.T) {
	g, err := graphs.New(4, false)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 6))
	require.NoError(t, g.AddEdge(0, 3, 5))
	require.NoError(t, g.AddEdge(1, 3, 15))
	require.NoError(t, g.AddEdge(2, 3, 4))

	mst, err := g.KruskalMST()
	require.NoError(t, err)

	assert.Equal(t, 19, mst.TotalWeight)
	require.Len(t, mst.Edges, 3)
	assert.Equal(t, graphs.MSTEdge{U: 2, V: 3, Weight: 4}, mst.Edges[0], "cheapest edge first")
}

// TestKruskalMST_Errors rejects directed and disconnected graphs.
func TestKruskalMST_Errors(t *testing.T) {
	d, err := graphs.New(2, true)
	require.NoError(t, err)
	_, err = d.KruskalMST()
	assert.ErrorIs(t, err, graphs.ErrNotUndirected)

	g, err := graphs.New(4, false)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	_, err = g.KruskalMST()
	assert.ErrorIs(t, err, graphs.ErrDisconnected)
}
