// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
	"github.com/katalvlaran/pathviz/search"
)

// Strategy is breadth-first search expressed as a search.Strategy.
// Frontier entries carry the hop count in Priority.
type Strategy struct {
	opts Options
}

// New builds a BFS strategy.
func New(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Strategy{opts: o}
}

// Name implements search.Strategy.
func (s *Strategy) Name() string { return "bfs" }

// NewFrontier implements search.Strategy.
func (s *Strategy) NewFrontier() frontier.Frontier { return frontier.NewFIFO() }

// Prepare surfaces option errors. Weights are not inspected.
func (s *Strategy) Prepare(*core.Graph, string, string) error { return s.opts.err }

// StartPriority implements search.Strategy.
func (s *Strategy) StartPriority(*search.State) float64 { return 0 }

// Accept implements search.Strategy. Nodes are enqueued once, so only a
// finalized duplicate (impossible unless Push is called directly) is rejected.
func (s *Strategy) Accept(st *search.State, e frontier.Entry) bool {
	return st.Status(e.ID) != search.StatusFinalized
}

// Expand enqueues every undiscovered neighbor of u, in edge order.
func (s *Strategy) Expand(st *search.State, u string, edges []core.Edge) {
	depth := st.Current().Priority + 1
	if s.opts.MaxDepth > 0 && depth > float64(s.opts.MaxDepth) {
		return
	}
	base := st.Cost(u)
	for _, e := range edges {
		if st.Status(e.To) != search.StatusUnseen || !s.opts.FilterNeighbor(u, e.To) {
			continue
		}
		c := base + e.Weight
		st.SetCost(e.To, c)
		st.SetPredecessor(e.To, u)
		st.Push(frontier.Entry{ID: e.To, Priority: depth, Cost: c, Parent: u})
	}
}

// Search runs BFS from start to goal to completion.
func Search(g *core.Graph, start, goal string, opts ...Option) (search.Result, error) {
	return search.Solve(g, start, goal, New(opts...))
}

var _ search.Strategy = (*Strategy)(nil)
