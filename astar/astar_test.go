package astar_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
)

// randomPlane builds n nodes scattered on a plane with edges whose weights
// are never below the straight-line distance, so Euclidean stays admissible.
func randomPlane(t *testing.T, r *rand.Rand, n, m int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.Node{
			ID: fmt.Sprintf("n%d", i), X: r.Float64() * 100, Y: r.Float64() * 100, HasCoords: true,
		}))
	}
	nodes := g.Nodes()
	for i := 0; i < m; i++ {
		a, b := nodes[r.Intn(n)], nodes[r.Intn(n)]
		w := astar.Euclidean(a, b) * (1 + r.Float64())
		require.NoError(t, g.AddEdge(a.ID, b.ID, w))
	}

	return g
}

func TestAStarMatchesDijkstra(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		g := randomPlane(t, r, 30, 120)
		start, goal := fmt.Sprintf("n%d", r.Intn(30)), fmt.Sprintf("n%d", r.Intn(30))

		want, err := dijkstra.Search(g, start, goal)
		require.NoError(t, err)
		for _, h := range []astar.Heuristic{astar.Zero, astar.Euclidean, nil} {
			got, err := astar.Search(g, start, goal, h)
			require.NoError(t, err)
			require.Equal(t, want.Succeeded(), got.Succeeded(), "round %d", round)
			if want.Succeeded() {
				require.InDelta(t, want.Path.TotalCost, got.Path.TotalCost, 1e-9, "round %d", round)
				require.LessOrEqual(t, got.Metrics.Visited, want.Metrics.Visited)
			}
		}
	}
}

func TestAStarNegativeWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(core.Node{ID: "A"}, core.Node{ID: "B"}))
	require.NoError(t, g.AddEdge("A", "B", -2))
	_, err := astar.Search(g, "A", "B", astar.Euclidean)
	require.ErrorIs(t, err, astar.ErrNegativeWeight)
}

func TestAStarNoPath(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(core.Node{ID: "A"}, core.Node{ID: "B"}))
	res, err := astar.Search(g, "A", "B", astar.Manhattan)
	require.NoError(t, err)
	assert.False(t, res.Succeeded())
	assert.True(t, math.IsInf(res.Path.TotalCost, 1))
	assert.Equal(t, 1, res.Metrics.Visited)
}

func TestHeuristics(t *testing.T) {
	a := core.Node{ID: "a", HasCoords: true, Metadata: map[string]any{"floor": 1}}
	b := core.Node{ID: "b", X: 3, Y: 4, HasCoords: true, Metadata: map[string]any{"floor": "2"}}
	bare := core.Node{ID: "c"}

	assert.Equal(t, 5.0, astar.Euclidean(a, b))
	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Zero(t, astar.Zero(a, b))
	assert.Equal(t, 10.0, astar.Scaled(astar.Euclidean, 2)(a, b))
	assert.Zero(t, astar.Scaled(nil, 2)(a, b))
	assert.Equal(t, 25.0, astar.FloorAware(20)(a, b))
	assert.Zero(t, astar.Euclidean(a, bare))
	assert.Equal(t, 2, astar.Floor(b))
	assert.Equal(t, 0, astar.Floor(bare))
}

// An overestimating heuristic is accepted; the search still terminates with a path.
func TestAStarInadmissible(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodes(
		core.Node{ID: "S", X: 0, Y: 0, HasCoords: true},
		core.Node{ID: "M", X: 1, Y: 0, HasCoords: true},
		core.Node{ID: "G", X: 2, Y: 0, HasCoords: true},
	))
	require.NoError(t, g.AddEdge("S", "M", 1))
	require.NoError(t, g.AddEdge("M", "G", 1))
	require.NoError(t, g.AddEdge("S", "G", 5))

	res, err := astar.Search(g, "S", "G", astar.Scaled(astar.Euclidean, 10))
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
}
