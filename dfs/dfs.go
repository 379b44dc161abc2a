// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
	"github.com/katalvlaran/pathviz/search"
)

// Strategy is depth-first search expressed as a search.Strategy.
// Frontier entries carry the hop count in Priority.
type Strategy struct {
	opts Options
}

// New builds a DFS strategy.
func New(opts ...Option) *Strategy {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Strategy{opts: o}
}

// Name implements search.Strategy.
func (s *Strategy) Name() string { return "dfs" }

// NewFrontier implements search.Strategy.
func (s *Strategy) NewFrontier() frontier.Frontier { return frontier.NewLIFO() }

// Prepare implements search.Strategy. DFS accepts any finite weights.
func (s *Strategy) Prepare(*core.Graph, string, string) error { return nil }

// StartPriority implements search.Strategy.
func (s *Strategy) StartPriority(*search.State) float64 { return 0 }

// Accept rejects entries for nodes already finalized and otherwise records
// the tree edge the entry arrived by.
func (s *Strategy) Accept(st *search.State, e frontier.Entry) bool {
	if st.Status(e.ID) == search.StatusFinalized {
		return false
	}
	st.SetCost(e.ID, e.Cost)
	st.SetPredecessor(e.ID, e.Parent)

	return true
}

// Expand pushes the unfinalized neighbors of u in reverse edge order.
func (s *Strategy) Expand(st *search.State, u string, edges []core.Edge) {
	depth := st.Current().Priority + 1
	if s.opts.MaxDepth >= 0 && depth > float64(s.opts.MaxDepth) {
		return
	}
	base := st.Cost(u)
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		if st.Status(e.To) == search.StatusFinalized {
			continue
		}
		if s.opts.FilterNeighbor != nil && !s.opts.FilterNeighbor(u, e.To) {
			continue
		}
		st.Push(frontier.Entry{ID: e.To, Priority: depth, Cost: base + e.Weight, Parent: u})
	}
}

// Search runs DFS from start to goal to completion.
func Search(g *core.Graph, start, goal string, opts ...Option) (search.Result, error) {
	return search.Solve(g, start, goal, New(opts...))
}

var _ search.Strategy = (*Strategy)(nil)
