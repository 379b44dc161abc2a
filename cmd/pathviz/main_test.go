package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/route"
	"github.com/katalvlaran/pathviz/scenario"
)

var testdata = filepath.Join("..", "..", "scenario", "testdata")

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun_FirstScenario(t *testing.T) {
	out, err := execute(t, "run", "--scenario", filepath.Join(testdata, "triangle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "A → C → B")
	assert.Contains(t, out, "cost: 3")
	assert.Contains(t, out, "expectations met")
}

func TestRun_AllWithTrace(t *testing.T) {
	out, err := execute(t, "run", "-f", filepath.Join(testdata, "grid.hcl"), "--all", "--trace", "--detail")
	require.NoError(t, err)
	assert.Contains(t, out, "step 1")
	assert.Contains(t, out, "goal reached")
	assert.Contains(t, out, "exhausted")
	assert.Contains(t, out, "no path")
	assert.Contains(t, out, "S#.")
}

func TestRun_ExpectationFailure(t *testing.T) {
	// DFS takes the first edge A→B and misses the cheaper detour via C.
	out, err := execute(t, "run", "-f", filepath.Join(testdata, "triangle.yaml"), "--name", "triangle", "--strategy", "dfs")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "A → B")
}

func TestRun_UnknownStrategy(t *testing.T) {
	_, err := execute(t, "run", "-f", filepath.Join(testdata, "triangle.yaml"), "--strategy", "greedy")
	require.Error(t, err)
}

func TestRun_MissingScenarioFlag(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func TestMaze_SingleCorridor(t *testing.T) {
	out, err := execute(t, "maze", "--rows", "1", "--cols", "2", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "#S*G#")
	assert.Contains(t, out, "cost: 2")
}

func TestMaze_Compare(t *testing.T) {
	out, err := execute(t, "maze", "--rows", "4", "--cols", "6", "--seed", "3", "--compare")
	require.NoError(t, err)
	for _, name := range scenario.Strategies {
		assert.Contains(t, out, name)
	}
}

func TestMaze_BadSize(t *testing.T) {
	_, err := execute(t, "maze", "--rows", "0")
	require.Error(t, err)
}

func TestRoute(t *testing.T) {
	out, err := execute(t, "route", "--to", "LAB_01", "--algorithm", "astar")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 35")
	assert.Contains(t, out, "Go to floor 2")
	assert.Contains(t, out, "travel time: 1m5s")
}

func TestRoute_UnknownLocation(t *testing.T) {
	_, err := execute(t, "route", "--to", "NOWHERE")
	require.ErrorIs(t, err, route.ErrUnknownLocation)
}

func TestEvacuate(t *testing.T) {
	out, err := execute(t, "evacuate", "LAB_01", "PHARMACY_01")
	require.NoError(t, err)
	assert.Contains(t, out, "2 locations, 2 routes")
	assert.Contains(t, out, route.DefaultEntrance)
}

func TestNearest(t *testing.T) {
	out, err := execute(t, "nearest", "--type", "pharmacy")
	require.NoError(t, err)
	assert.Contains(t, out, "PHARMACY_01")
}

func TestMetricsDump(t *testing.T) {
	out, err := execute(t, "--metrics", "route", "--to", "CONSULT_01")
	require.NoError(t, err)
	assert.Contains(t, out, "pathviz_search_searches_total")
	assert.Contains(t, out, `outcome="found"`)
}

func TestLogFlags(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "route", "--to", "LAB_01")
	require.Error(t, err)
	_, err = execute(t, "--log-format", "xml", "route", "--to", "LAB_01")
	require.Error(t, err)
	_, err = execute(t, "--log-level", "debug", "--log-format", "json", "route", "--to", "LAB_01")
	require.NoError(t, err)
}
