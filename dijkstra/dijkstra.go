// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
	"github.com/katalvlaran/pathviz/search"
)

// Strategy is Dijkstra's algorithm expressed as a search.Strategy.
// It holds configuration only and may be shared by concurrent Steppers.
type Strategy struct {
	opts Options
}

// New builds a Dijkstra strategy. Invalid options are reported by Prepare,
// i.e. when the strategy is handed to search.NewStepper.
func New(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Strategy{opts: o}
}

// Name implements search.Strategy.
func (s *Strategy) Name() string { return "dijkstra" }

// NewFrontier implements search.Strategy.
func (s *Strategy) NewFrontier() frontier.Frontier { return frontier.NewMinQueue() }

// Prepare rejects invalid options and negative edge weights.
func (s *Strategy) Prepare(g *core.Graph, _, _ string) error {
	if s.opts.err != nil {
		return s.opts.err
	}

	return search.CheckNonNegative(g)
}

// StartPriority implements search.Strategy.
func (s *Strategy) StartPriority(*search.State) float64 { return 0 }

// Accept honors an entry only if it still carries the node's best cost.
func (s *Strategy) Accept(st *search.State, e frontier.Entry) bool {
	return !st.IsStale(e)
}

// Expand relaxes every outgoing edge of u.
func (s *Strategy) Expand(st *search.State, u string, edges []core.Edge) {
	base := st.Cost(u)
	for _, e := range edges {
		if e.Weight >= s.opts.InfEdgeThreshold {
			continue
		}
		if s.opts.FilterNeighbor != nil && !s.opts.FilterNeighbor(u, e.To) {
			continue
		}
		c := base + e.Weight
		if c > s.opts.MaxDistance {
			continue
		}
		st.Relax(e.To, u, c, c)
	}
}

// Search runs Dijkstra from start to goal to completion.
func Search(g *core.Graph, start, goal string, opts ...Option) (search.Result, error) {
	return search.Solve(g, start, goal, New(opts...))
}

var _ search.Strategy = (*Strategy)(nil)
