package route_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/route"
	"github.com/katalvlaran/pathviz/search"
)

func TestLinkWeight(t *testing.T) {
	l := route.Link{Distance: 10}
	w, ok := l.Weight(route.Normal)
	require.True(t, ok)
	assert.Equal(t, 10.0, w)

	l.Congestion = 2
	l.EmergencyRoute = true
	w, _ = l.Weight(route.Normal)
	assert.InDelta(t, 16.0, w, 1e-12)

	l.Accessibility = route.StairsOnly
	_, ok = l.Weight(route.Wheelchair)
	assert.False(t, ok)
	_, ok = l.Weight(route.Normal)
	assert.True(t, ok)

	l.Closed = true
	_, ok = l.Weight(route.Normal)
	assert.False(t, ok)
}

func TestNetworkErrors(t *testing.T) {
	n := route.NewNetwork()
	require.ErrorIs(t, n.AddLocation(route.Location{}), route.ErrEmptyLocationID)
	require.NoError(t, n.AddLocation(route.Location{ID: "A"}))
	require.ErrorIs(t, n.AddLocation(route.Location{ID: "A"}), route.ErrDuplicateLocation)
	require.ErrorIs(t, n.AddLink(route.Link{From: "A", To: "B"}), route.ErrUnknownLocation)
	require.NoError(t, n.AddLocation(route.Location{ID: "B"}))
	require.ErrorIs(t, n.AddLink(route.Link{From: "A", To: "B", Distance: -1}), route.ErrBadLink)
}

func TestBuild(t *testing.T) {
	n := route.DefaultHospital()
	g, err := n.Build(route.Normal)
	require.NoError(t, err)
	assert.Equal(t, 7, g.NodeCount())
	assert.Equal(t, 12, g.EdgeCount())

	lab, ok := g.Node("LAB_01")
	require.True(t, ok)
	assert.Equal(t, 2, lab.Metadata["floor"])
	assert.Equal(t, "Laboratory", lab.Group)
}

func TestRoute(t *testing.T) {
	nav := route.NewNavigator(route.DefaultHospital())
	for _, alg := range []string{route.AlgorithmDijkstra, route.AlgorithmAStar} {
		plan, err := nav.Route(context.Background(), "ENTRANCE_MAIN", "LAB_01", alg, route.Normal)
		require.NoError(t, err, alg)
		require.True(t, plan.Found(), alg)
		assert.Equal(t, []string{"ENTRANCE_MAIN", "RECEPTION_01", "ELEVATOR_01", "LAB_01"}, plan.Result.Path.Nodes, alg)
		assert.Equal(t, 35.0, plan.Result.Path.TotalCost, alg)
		assert.Equal(t, 65.0, plan.TravelTime, alg)
		require.Len(t, plan.Legs, 3)
		assert.Equal(t, "Head east to Main Reception", plan.Legs[0].Instruction)
		assert.Equal(t, "Go to floor 2", plan.Legs[2].Instruction)
		assert.True(t, plan.AccessibleCompliant)
	}

	_, err := nav.Route(context.Background(), "ENTRANCE_MAIN", "LAB_01", "bellman-ford", route.Normal)
	require.ErrorIs(t, err, route.ErrUnknownAlgorithm)

	_, err = nav.Route(context.Background(), "NOPE", "LAB_01", "", route.Normal)
	require.ErrorIs(t, err, route.ErrUnknownLocation)
	require.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestRoute_WheelchairAvoidsStairs(t *testing.T) {
	n := route.NewNetwork()
	for _, l := range []route.Location{
		{ID: "HALL", Floor: 1},
		{ID: "STAIRS", Type: route.Stairs, Floor: 1, X: 1},
		{ID: "LIFT", Type: route.Elevator, Floor: 1, Y: 5},
		{ID: "WARD", Type: route.Ward, Floor: 2, X: 2},
	} {
		require.NoError(t, n.AddLocation(l))
	}
	require.NoError(t, n.AddLink(route.Link{From: "HALL", To: "STAIRS", Distance: 2, Accessibility: route.StairsOnly}))
	require.NoError(t, n.AddLink(route.Link{From: "STAIRS", To: "WARD", Distance: 2, Accessibility: route.StairsOnly}))
	require.NoError(t, n.AddLink(route.Link{From: "HALL", To: "LIFT", Distance: 10, Accessibility: route.Wheelchair}))
	require.NoError(t, n.AddLink(route.Link{From: "LIFT", To: "WARD", Distance: 10, Accessibility: route.Wheelchair}))

	nav := route.NewNavigator(n)
	walk, err := nav.Route(context.Background(), "HALL", "WARD", route.AlgorithmDijkstra, route.Normal)
	require.NoError(t, err)
	assert.Equal(t, 4.0, walk.Result.Path.TotalCost)

	roll, err := nav.Route(context.Background(), "HALL", "WARD", route.AlgorithmDijkstra, route.Wheelchair)
	require.NoError(t, err)
	assert.Equal(t, []string{"HALL", "LIFT", "WARD"}, roll.Result.Path.Nodes)
	assert.True(t, roll.AccessibleCompliant)
	assert.Equal(t, "Go to floor 2", roll.Legs[1].Instruction)
}

func TestRoute_ClosedLinkMeansNoRoute(t *testing.T) {
	n := route.DefaultHospital()
	closed := route.NewNetwork()
	for _, l := range n.Locations() {
		require.NoError(t, closed.AddLocation(l))
	}
	for _, lk := range n.Links() {
		if lk.To == "ELEVATOR_01" {
			lk.Closed = true
		}
		require.NoError(t, closed.AddLink(lk))
	}

	plan, err := route.NewNavigator(closed).Route(context.Background(), "ENTRANCE_MAIN", "LAB_01", "", route.Normal)
	require.NoError(t, err)
	assert.False(t, plan.Found())
	assert.Empty(t, plan.Legs)
}

func TestMultiDestination(t *testing.T) {
	var hooked atomic.Int32
	nav := route.NewNavigator(route.DefaultHospital(),
		route.WithConcurrency(2),
		route.WithResultHook(func(search.Result) { hooked.Add(1) }),
	)
	res, err := nav.MultiDestination(context.Background(), "ENTRANCE_MAIN",
		[]string{"LAB_01", "PHARMACY_01", "CONSULT_01", "MISSING"}, route.Normal)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, 35.0, res["LAB_01"].Path.TotalCost)
	assert.Equal(t, 35.0, res["PHARMACY_01"].Path.TotalCost)
	assert.Equal(t, 42.0, res["CONSULT_01"].Path.TotalCost)
	assert.False(t, res["MISSING"].Succeeded())

	// One hook call per search actually run; MISSING never reaches the engine.
	assert.EqualValues(t, 3, hooked.Load())
	_, err = nav.Route(context.Background(), "ENTRANCE_MAIN", "LAB_01", "", route.Normal)
	require.NoError(t, err)
	assert.EqualValues(t, 4, hooked.Load())

	_, err = nav.MultiDestination(context.Background(), "MISSING", []string{"LAB_01"}, route.Normal)
	require.ErrorIs(t, err, route.ErrUnknownLocation)
}

func TestMultiDestination_Cancelled(t *testing.T) {
	g, err := route.DefaultHospital().Build(route.Normal)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = route.MultiDestination(ctx, g, "ENTRANCE_MAIN", []string{"LAB_01"},
		func() search.Strategy { return dijkstra.New() }, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvacuation(t *testing.T) {
	nav := route.NewNavigator(route.DefaultHospital())
	plan, err := nav.Evacuation(context.Background(), []string{"LAB_01", "PHARMACY_01"}, 0)
	require.NoError(t, err)
	require.Len(t, plan.Routes, 2)
	assert.Equal(t, 2, plan.TotalLocations)
	for _, r := range plan.Routes {
		assert.Equal(t, "ENTRANCE_MAIN", r.Exit.ID)
		assert.Equal(t, 35.0, r.Distance)
		assert.InDelta(t, float64(35/1.5*float64(time.Second)), float64(r.EstimatedTime), float64(time.Millisecond))
	}
	assert.InDelta(t, float64(23333*time.Millisecond), float64(plan.AverageTime), float64(time.Millisecond))
}

func TestNearest(t *testing.T) {
	nav := route.NewNavigator(route.DefaultHospital())
	got, err := nav.Nearest(context.Background(), "ENTRANCE_MAIN", route.Pharmacy, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PHARMACY_01", got[0].Location.ID)
	assert.Equal(t, 35.0, got[0].Distance)

	none, err := nav.Nearest(context.Background(), "ENTRANCE_MAIN", route.Radiology, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStats(t *testing.T) {
	s := route.DefaultHospital().Stats()
	assert.Equal(t, 7, s.Locations)
	assert.Equal(t, 6, s.Connections)
	assert.Equal(t, map[int]int{1: 5, 2: 2}, s.ByFloor)
	assert.Equal(t, []string{"Administration", "Emergency", "General Medicine", "Laboratory", "Pharmacy"}, s.Departments)
	assert.Equal(t, 100.0, s.AccessibilityCoverage)
	assert.Equal(t, 1, s.ByType[route.Elevator])
}

func TestRoute_LegUsesTraversedLink(t *testing.T) {
	n := route.NewNetwork()
	require.NoError(t, n.AddLocation(route.Location{ID: "A", Name: "Lobby"}))
	require.NoError(t, n.AddLocation(route.Location{ID: "B", Name: "Clinic", X: 10}))
	require.NoError(t, n.AddLink(route.Link{From: "A", To: "B", Distance: 5, TravelTime: 5, Closed: true}))
	require.NoError(t, n.AddLink(route.Link{From: "B", To: "A", Distance: 10, TravelTime: 50}))
	require.NoError(t, n.AddLink(route.Link{From: "A", To: "B", Distance: 1, TravelTime: 2, Accessibility: route.StairsOnly}))
	nav := route.NewNavigator(n)

	tests := []struct {
		needs      route.Accessibility
		cost       float64
		travelTime float64
		compliant  bool
	}{
		{route.Wheelchair, 10, 50, true},
		{route.Normal, 1, 2, true},
	}
	for _, tt := range tests {
		plan, err := nav.Route(context.Background(), "A", "B", route.AlgorithmDijkstra, tt.needs)
		require.NoError(t, err, tt.needs)
		require.True(t, plan.Found(), tt.needs)
		require.Len(t, plan.Legs, 1, tt.needs)
		assert.Equal(t, tt.cost, plan.Result.Path.TotalCost, tt.needs)
		assert.Equal(t, tt.cost, plan.Legs[0].Distance, tt.needs)
		assert.Equal(t, tt.travelTime, plan.Legs[0].TravelTime, tt.needs)
		assert.Equal(t, tt.travelTime, plan.TravelTime, tt.needs)
		assert.Equal(t, tt.compliant, plan.AccessibleCompliant, tt.needs)
	}
}
