package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dfs"
	"github.com/katalvlaran/pathviz/search"
)

// buildBinaryTree creates a complete binary tree of the given depth.
// IDs: "T-1","T-2",…; T-i has children T-2i and T-2i+1.
func buildBinaryTree(t *testing.T, depth int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	maxID := (1 << depth) - 1
	for i := 1; i <= maxID; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("T-%d", i)}))
	}
	for i := 2; i <= maxID; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("T-%d", i/2), fmt.Sprintf("T-%d", i), 1))
	}

	return g
}

func TestPreorderVisit(t *testing.T) {
	g := buildBinaryTree(t, 3)
	st, err := search.NewStepper(g, "T-1", "T-7", dfs.New())
	require.NoError(t, err)
	st.RunToCompletion()

	assert.Equal(t, []string{"T-1", "T-2", "T-4", "T-5", "T-3", "T-6", "T-7"}, st.State().Visited())
	res, err := st.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-3", "T-7"}, res.Path.Nodes)
	assert.Equal(t, 2.0, res.Path.TotalCost)
}

// On a diamond with a heavy first branch DFS keeps the first path it found.
func TestNoShortestPathGuarantee(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(core.Node{ID: "S"}, core.Node{ID: "X"}, core.Node{ID: "Y"}, core.Node{ID: "G"}))
	require.NoError(t, g.AddEdge("S", "X", 1))
	require.NoError(t, g.AddEdge("S", "Y", 1))
	require.NoError(t, g.AddEdge("X", "G", 50))
	require.NoError(t, g.AddEdge("Y", "G", 1))

	res, err := dfs.Search(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path.Nodes)
	assert.Equal(t, 51.0, res.Path.TotalCost)
}

func TestDuplicateStackEntriesDiscarded(t *testing.T) {
	// S→A, S→B, A→B: B is pushed twice; the second pop is stale.
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(core.Node{ID: "S"}, core.Node{ID: "A"}, core.Node{ID: "B"}, core.Node{ID: "Z"}))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))

	res, err := dfs.Search(g, "S", "Z")
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
	assert.Equal(t, 3, res.Metrics.Visited)
	assert.Equal(t, 1, res.Metrics.StaleDiscarded)
}

func TestOptions(t *testing.T) {
	g := buildBinaryTree(t, 4)

	res, err := dfs.Search(g, "T-1", "T-8", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Succeeded())

	res, err = dfs.Search(g, "T-1", "T-8", dfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1", "T-2", "T-4", "T-8"}, res.Path.Nodes)

	res, err = dfs.Search(g, "T-1", "T-8", dfs.WithFilterNeighbor(func(_, next string) bool {
		return next != "T-4"
	}))
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
}
