package scenario

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dfs"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/route"
	"github.com/katalvlaran/pathviz/search"
)

// Strategies lists the names understood by NewStrategy.
var Strategies = []string{"dijkstra", "astar", "bfs", "dfs"}

// NewStrategy maps a strategy name (and, for astar, a heuristic name) to a
// fresh search.Strategy. Empty names select dijkstra and euclidean.
func NewStrategy(name, heuristic string) (search.Strategy, error) {
	switch name {
	case "", "dijkstra":
		return dijkstra.New(), nil
	case "bfs":
		return bfs.New(), nil
	case "dfs":
		return dfs.New(), nil
	case "astar":
		h, err := Heuristic(heuristic)
		if err != nil {
			return nil, err
		}
		return astar.New(h), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Heuristic resolves an A* heuristic by name.
func Heuristic(name string) (astar.Heuristic, error) {
	switch name {
	case "", "euclidean":
		return astar.Euclidean, nil
	case "manhattan":
		return astar.Manhattan, nil
	case "zero":
		return astar.Zero, nil
	case "floor":
		return astar.FloorAware(route.FloorPenalty), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Instance is a scenario turned into a searchable graph.
type Instance struct {
	Scenario *Scenario
	Graph    *core.Graph
	Grid     *gridgraph.GridGraph // nil for explicit graphs
	Start    string
	Goal     string
}

// Build constructs the graph and resolves the endpoints. Grid scenarios take
// start and goal from the 'S' and 'G' markers unless Start or Goal is set
// explicitly as "row,col".
func (s *Scenario) Build() (*Instance, error) {
	in := &Instance{Scenario: s, Start: s.Start, Goal: s.Goal}
	if s.Grid != nil {
		if err := s.buildGrid(in); err != nil {
			return nil, err
		}
	} else {
		g, err := s.buildGraph()
		if err != nil {
			return nil, err
		}
		in.Graph = g
	}
	if in.Start == "" || in.Goal == "" {
		return nil, fmt.Errorf("%w: scenario %q", ErrMissingEndpoint, s.Name)
	}

	return in, nil
}

func (s *Scenario) buildGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(s.Nodes)))
	for _, n := range s.Nodes {
		node := core.Node{ID: n.ID, Name: n.Name, Group: n.Group}
		if n.X != nil && n.Y != nil {
			node.X, node.Y, node.HasCoords = *n.X, *n.Y, true
		}
		if n.Floor != 0 {
			node.Metadata = map[string]any{"floor": n.Floor}
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	for _, e := range s.Edges {
		add := g.AddEdge
		if e.Undirected {
			add = g.AddUndirectedEdge
		}
		if err := add(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("scenario %q: edge %s→%s: %w", s.Name, e.From, e.To, err)
		}
	}

	return g, nil
}

func (s *Scenario) buildGrid(in *Instance) error {
	walls := make([][]bool, len(s.Grid.Rows))
	for r, row := range s.Grid.Rows {
		walls[r] = make([]bool, len(row))
		for c, ch := range row {
			switch ch {
			case '#':
				walls[r][c] = true
			case 'S':
				if in.Start == "" {
					in.Start = gridgraph.CellID(gridgraph.Cell{Row: r, Col: c})
				}
			case 'G':
				if in.Goal == "" {
					in.Goal = gridgraph.CellID(gridgraph.Cell{Row: r, Col: c})
				}
			}
		}
	}
	gg, err := gridgraph.NewGridGraph(walls)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	in.Grid = gg
	in.Graph = gg.ToCoreGraph()

	return nil
}

// NewStepper creates a stepper for the scenario's strategy. Grid endpoints
// are checked as cells first so a wall or out-of-range endpoint reports
// gridgraph.ErrInvalidCell.
func (in *Instance) NewStepper(opts ...search.Option) (*search.Stepper, error) {
	strategy, err := NewStrategy(in.Scenario.Strategy, in.Scenario.Heuristic)
	if err != nil {
		return nil, err
	}
	if in.Grid == nil {
		return search.NewStepper(in.Graph, in.Start, in.Goal, strategy, opts...)
	}
	start, err := gridgraph.ParseCellID(in.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	goal, err := gridgraph.ParseCellID(in.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	return in.Grid.NewStepper(strategy, start, goal, opts...)
}

// costTolerance absorbs float noise when comparing expected costs.
const costTolerance = 1e-9

// Check compares res with the scenario's expect block. A scenario without
// one always passes.
func (s *Scenario) Check(res search.Result) error {
	x := s.Expect
	if x == nil {
		return nil
	}
	found := res.Path.Found()
	if x.Found != nil && *x.Found != found {
		return fmt.Errorf("%w: %q found=%t, want %t", ErrExpectation, s.Name, found, *x.Found)
	}
	if x.Cost != nil && (!found || math.Abs(res.Path.TotalCost-*x.Cost) > costTolerance) {
		return fmt.Errorf("%w: %q cost=%v, want %v", ErrExpectation, s.Name, res.Path.TotalCost, *x.Cost)
	}
	if len(x.Path) > 0 && !slices.Equal(x.Path, res.Path.Nodes) {
		return fmt.Errorf("%w: %q path=%v, want %v", ErrExpectation, s.Name, res.Path.Nodes, x.Path)
	}

	return nil
}
