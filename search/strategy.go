package search

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
)

// Strategy is a traversal policy plugged into a Stepper.
//
// The Stepper owns the loop; a Strategy only decides which container holds
// the frontier, which popped entries are honored, and how a finalized node's
// outgoing edges update the State.
type Strategy interface {
	// Name is a short identifier ("dijkstra", "astar", "bfs", "dfs").
	Name() string

	// NewFrontier returns a fresh, empty frontier for one search.
	NewFrontier() frontier.Frontier

	// Prepare validates the graph before any state exists. Returning an error
	// aborts NewStepper.
	Prepare(g *core.Graph, start, goal string) error

	// StartPriority is the frontier priority of the start node.
	StartPriority(st *State) float64

	// Accept decides whether a popped entry is honored. Returning false marks
	// the entry stale and it is discarded. Accept may update cost/predecessor
	// of e.ID (DFS records the tree edge here).
	Accept(st *State, e frontier.Entry) bool

	// Expand processes the outgoing edges of the just-finalized node u, in
	// graph insertion order.
	Expand(st *State, u string, edges []core.Edge)
}

// CheckNonNegative scans every edge of g and fails with ErrNegativeWeight on
// the first negative weight. Cost-based strategies call it from Prepare.
// Complexity: O(E).
func CheckNonNegative(g *core.Graph) error {
	w, e, ok := g.MinWeight()
	if ok && w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}
