package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// TestMinBreaches_BasicLine: ".#." needs the middle wall removed.
func TestMinBreaches_BasicLine(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(mask(".#."))
	require.NoError(t, err)

	path, cost, err := gg.MinBreaches(gridgraph.Cell{}, gridgraph.Cell{Col: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []gridgraph.Cell{{0, 0}, {0, 1}, {0, 2}}, path)
}

// TestMinBreaches_PrefersDetour: an open corridor beats a single wall.
func TestMinBreaches_PrefersDetour(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(mask(
		".#.",
		"...",
	))
	require.NoError(t, err)

	path, cost, err := gg.MinBreaches(gridgraph.Cell{}, gridgraph.Cell{Col: 2})
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Len(t, path, 5)
}

func TestMinBreaches_ThickWall(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(mask(".###."))
	require.NoError(t, err)
	path, cost, err := gg.MinBreaches(gridgraph.Cell{}, gridgraph.Cell{Col: 4})
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
	assert.Len(t, path, 5)
}

func TestMinBreaches_SameCell(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(mask(".."))
	require.NoError(t, err)
	path, cost, err := gg.MinBreaches(gridgraph.Cell{}, gridgraph.Cell{})
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Equal(t, []gridgraph.Cell{{0, 0}}, path)
}

func TestMinBreaches_InvalidEndpoints(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(mask(".#"))
	require.NoError(t, err)
	_, _, err = gg.MinBreaches(gridgraph.Cell{}, gridgraph.Cell{Col: 1})
	require.ErrorIs(t, err, gridgraph.ErrInvalidCell)
	_, _, err = gg.MinBreaches(gridgraph.Cell{Row: 5}, gridgraph.Cell{})
	require.ErrorIs(t, err, gridgraph.ErrInvalidCell)
}
