package scenario

import "errors"

// Sentinel errors returned by loading, building and checking.
var (
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
	ErrInvalid           = errors.New("scenario: validation failed")
	ErrMissingEndpoint   = errors.New("scenario: start and goal are required")
	ErrUnknownStrategy   = errors.New("scenario: unknown strategy")
	ErrUnknownHeuristic  = errors.New("scenario: unknown heuristic")
	ErrExpectation       = errors.New("scenario: expectation not met")
	ErrNotFound          = errors.New("scenario: no scenario with that name")
)

// File is the top-level document: one or more scenarios.
type File struct {
	Scenarios []*Scenario `yaml:"scenarios" hcl:"scenario,block" validate:"required,min=1,dive"`
}

// Scenario is one search fixture.
type Scenario struct {
	Name      string `yaml:"name" hcl:"name,label" validate:"required"`
	Strategy  string `yaml:"strategy" hcl:"strategy,optional" validate:"omitempty,oneof=dijkstra astar bfs dfs"`
	Heuristic string `yaml:"heuristic" hcl:"heuristic,optional" validate:"omitempty,oneof=zero euclidean manhattan floor"`
	Start     string `yaml:"start" hcl:"start,optional"`
	Goal      string `yaml:"goal" hcl:"goal,optional"`

	Nodes  []NodeSpec   `yaml:"nodes" hcl:"node,block" validate:"dive"`
	Edges  []EdgeSpec   `yaml:"edges" hcl:"edge,block" validate:"dive"`
	Grid   *GridSpec    `yaml:"grid" hcl:"grid,block" validate:"omitempty"`
	Expect *Expectation `yaml:"expect" hcl:"expect,block" validate:"omitempty"`
}

// NodeSpec declares one graph node. Coordinates are optional; set both or
// neither.
type NodeSpec struct {
	ID    string   `yaml:"id" hcl:"id,label" validate:"required"`
	Name  string   `yaml:"name" hcl:"name,optional"`
	Group string   `yaml:"group" hcl:"group,optional"`
	X     *float64 `yaml:"x" hcl:"x,optional" validate:"required_with=Y"`
	Y     *float64 `yaml:"y" hcl:"y,optional" validate:"required_with=X"`
	Floor int      `yaml:"floor" hcl:"floor,optional"`
}

// EdgeSpec declares a directed edge, or two when Undirected is set.
type EdgeSpec struct {
	From       string  `yaml:"from" hcl:"from" validate:"required"`
	To         string  `yaml:"to" hcl:"to" validate:"required"`
	Weight     float64 `yaml:"weight" hcl:"weight"`
	Undirected bool    `yaml:"undirected" hcl:"undirected,optional"`
}

// GridSpec draws a wall mask as text rows.
type GridSpec struct {
	Rows []string `yaml:"rows" hcl:"rows" validate:"required,min=1,gridrows"`
}

// Expectation is the outcome a scenario must reach. Unset fields are not
// checked.
type Expectation struct {
	Found *bool    `yaml:"found" hcl:"found,optional"`
	Cost  *float64 `yaml:"cost" hcl:"cost,optional"`
	Path  []string `yaml:"path" hcl:"path,optional"`
}
