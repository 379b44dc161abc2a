package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/dfs"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/search"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(6, 9, 42)
	require.NoError(t, err)
	b, err := maze.Generate(6, 9, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Walls, b.Walls)

	c, err := maze.Generate(6, 9, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.Walls, c.Walls)
}

func TestGenerate_IsPerfect(t *testing.T) {
	rows, cols := 8, 11
	m, err := maze.Generate(rows, cols, 7)
	require.NoError(t, err)
	require.Len(t, m.Walls, 2*rows+1)
	require.Len(t, m.Walls[0], 2*cols+1)

	gg, err := m.Grid()
	require.NoError(t, err)
	// Spanning tree: one region and open cells = rooms + (rooms-1) passages.
	require.Len(t, gg.ConnectedComponents(), 1)
	rooms := rows * cols
	assert.Equal(t, 2*rooms-1, gg.OpenCount())
	g := gg.ToCoreGraph()
	assert.Equal(t, 2*(g.NodeCount()-1), g.EdgeCount())
}

func TestGenerate_UniquePathAgreement(t *testing.T) {
	m, err := maze.Generate(10, 10, 99)
	require.NoError(t, err)
	gg, err := m.Grid()
	require.NoError(t, err)

	var costs []float64
	for _, strat := range []search.Strategy{dijkstra.New(), bfs.New(), dfs.New()} {
		st, err := gg.NewStepper(strat, m.Start, m.Goal)
		require.NoError(t, err)
		st.RunToCompletion()
		res, err := st.Result()
		require.NoError(t, err)
		require.True(t, res.Succeeded())
		costs = append(costs, res.Path.TotalCost)
	}
	assert.Equal(t, costs[0], costs[1])
	assert.Equal(t, costs[0], costs[2])
}

func TestGenerate_Loops(t *testing.T) {
	perfect, err := maze.Generate(10, 10, 5)
	require.NoError(t, err)
	loopy, err := maze.Generate(10, 10, 5, maze.WithLoops(0.5))
	require.NoError(t, err)

	pg, _ := perfect.Grid()
	lg, _ := loopy.Grid()
	assert.Greater(t, lg.OpenCount(), pg.OpenCount())

}

func TestGenerate_BadLoops(t *testing.T) {
	for _, f := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := maze.Generate(5, 5, 1, maze.WithLoops(f))
		require.ErrorIs(t, err, maze.ErrBadLoops, "loops=%v", f)
	}
}

func TestGenerate_BadSize(t *testing.T) {
	_, err := maze.Generate(0, 4, 1)
	require.ErrorIs(t, err, maze.ErrBadSize)
}

func TestRender(t *testing.T) {
	m, err := maze.Generate(1, 2, 3)
	require.NoError(t, err)
	out := maze.Render(m, '*', gridgraph.Cell{Row: 1, Col: 2})
	assert.Equal(t, "#####\n#S*G#\n#####\n", out)
}
