package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// listGraph is an adjacency-list core.Graph for non-grid shapes.
type listGraph [][]int

func (g listGraph) NbVertices() int         { return len(g) }
func (g listGraph) VertexExists(v int) bool { return v >= 0 && v < len(g) }
func (g listGraph) Neighbors(v int) ([]int, error) {
	if !g.VertexExists(v) {
		return nil, core.OutOfRange(v, len(g))
	}
	return g[v], nil
}

// undirected builds a listGraph of n vertices from an edge list.
func undirected(n int, edges ...[2]int) listGraph {
	g := make(listGraph, n)
	for _, e := range edges {
		g[e[0]] = append(g[e[0]], e[1])
		g[e[1]] = append(g[e[1]], e[0])
	}
	return g
}

// chain builds the corridor 0-1-…-(n-1).
func chain(n int) listGraph {
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	return undirected(n, edges...)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(chain(3), 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestDFS_SingleVertex(t *testing.T) {
	res, err := dfs.DFS(chain(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, -1, res.Parent[0], "root has no parent")
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	const n = 10
	res, err := dfs.DFS(chain(n), 0)
	require.NoError(t, err)

	// Post order: 9, 8, …, 0
	want := make([]int, n)
	for i := range want {
		want[i] = n - 1 - i
	}
	assert.Equal(t, want, res.Order)
	assert.Equal(t, n-1, res.Depth[n-1])
	assert.Equal(t, n-2, res.Parent[n-1])
	assert.Equal(t, n, res.VisitedCount())
}

// TestDFS_PreAndPostOrder on a small tree:
//
//	  0
//	 / \
//	1   2
//	|
//	3
func TestDFS_PreAndPostOrder(t *testing.T) {
	g := undirected(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3})
	var visits, exits []int
	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error { visits = append(visits, v); return nil }),
		dfs.WithOnExit(func(v int) error { exits = append(exits, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Preorder)
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, res.Preorder, visits)
	assert.Equal(t, res.Order, exits)
}

func TestDFS_Disconnected(t *testing.T) {
	g := undirected(4, [2]int{0, 1}, [2]int{2, 3})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2])
	assert.Equal(t, -1, res.Depth[3])

	full, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 2}, full.Order)
	assert.Equal(t, -1, full.Parent[2], "second root")
}

func TestDFS_MaxDepth(t *testing.T) {
	res, err := dfs.DFS(chain(4), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Visited[1])
	assert.Equal(t, -1, res.Parent[1], "pruned vertex gets no parent")

	res, err = dfs.DFS(chain(4), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, 3, res.VisitedCount())
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := undirected(3, [2]int{0, 1}, [2]int{0, 2})
	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool { return v != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookErrors(t *testing.T) {
	halt := errors.New("halt")

	res, err := dfs.DFS(chain(3), 0, dfs.WithOnExit(func(v int) error {
		if v == 1 {
			return halt
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")

	_, err = dfs.DFS(chain(3), 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(chain(1000), 0, dfs.WithContext(ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, core.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

// TestDFS_LongCorridor walks a snake through a 300×300 grid, deep enough
// to show the walk does not recurse per cell.
func TestDFS_LongCorridor(t *testing.T) {
	const side = 300
	g, err := gridgraph.NewSquare(side)
	require.NoError(t, err)
	for r := 0; r < side; r++ {
		for c := 1; c < side; c++ {
			require.NoError(t, g.AddEdge(g.Index(r, c-1), g.Index(r, c)))
		}
		if r > 0 {
			col := side - 1
			if r%2 == 0 {
				col = 0
			}
			require.NoError(t, g.AddEdge(g.Index(r-1, col), g.Index(r, col)))
		}
	}

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, side*side, res.VisitedCount())
	assert.Equal(t, side*side-1, res.Depth[g.Index(side-1, 0)])
}
