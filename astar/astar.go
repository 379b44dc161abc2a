package astar

import (
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
	"github.com/katalvlaran/pathviz/search"
)

// ErrNegativeWeight is the same value as search.ErrNegativeWeight.
var ErrNegativeWeight = search.ErrNegativeWeight

// Strategy is A* expressed as a search.Strategy.
type Strategy struct {
	h Heuristic
}

// New builds an A* strategy guided by h. A nil h is treated as Zero.
func New(h Heuristic) *Strategy {
	if h == nil {
		h = Zero
	}

	return &Strategy{h: h}
}

// Name implements search.Strategy.
func (s *Strategy) Name() string { return "astar" }

// NewFrontier implements search.Strategy.
func (s *Strategy) NewFrontier() frontier.Frontier { return frontier.NewMinQueue() }

// Prepare rejects graphs with negative edge weights.
func (s *Strategy) Prepare(g *core.Graph, _, _ string) error {
	return search.CheckNonNegative(g)
}

// StartPriority is h(start, goal).
func (s *Strategy) StartPriority(st *search.State) float64 {
	return s.estimate(st, st.Start())
}

// Accept honors an entry only if it still carries the node's best cost.
func (s *Strategy) Accept(st *search.State, e frontier.Entry) bool {
	return !st.IsStale(e)
}

// Expand relaxes every outgoing edge of u with priority cost + h.
func (s *Strategy) Expand(st *search.State, u string, edges []core.Edge) {
	base := st.Cost(u)
	for _, e := range edges {
		c := base + e.Weight
		if c >= st.Cost(e.To) || st.Status(e.To) == search.StatusFinalized {
			continue
		}
		st.Relax(e.To, u, c, c+s.estimate(st, e.To))
	}
}

func (s *Strategy) estimate(st *search.State, id string) float64 {
	g := st.Graph()
	n, _ := g.Node(id)
	goal, _ := g.Node(st.Goal())

	return s.h(n, goal)
}

// Search runs A* from start to goal to completion.
func Search(g *core.Graph, start, goal string, h Heuristic) (search.Result, error) {
	return search.Solve(g, start, goal, New(h))
}

var _ search.Strategy = (*Strategy)(nil)
