// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUndirectedEdge/Neighbors/Edges/EdgeCount.
//
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order (Edge.Seq asc).
//
// Concurrency:
//   - Endpoint validation under muNode read lock, catalog mutation under muEdge.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates a directed edge from→to.
//
// Steps:
//  1. Validate weight (ErrBadWeight for NaN/±Inf).
//  2. Validate both endpoints exist (ErrUnknownNode, wrapped with the ID).
//  3. Lock muEdge, append to the catalog and to the outgoing index of from.
//
// Endpoints are never auto-created: a typo in an ID should fail loudly at
// construction time rather than silently produce a disconnected node.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	seq := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight, Seq: seq})
	g.out[from] = append(g.out[from], seq)

	return nil
}

// AddUndirectedEdge adds a→b and b→a with the same weight.
// If the second insertion fails nothing is left half-added, because both
// endpoints are validated by the first call.
func (g *Graph) AddUndirectedEdge(a, b string, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}

	return g.AddEdge(b, a, weight)
}

// Neighbors returns the outgoing edges of id in insertion order.
// Returns ErrUnknownNode when id is absent.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	idx, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Edge, len(idx))
	for i, k := range idx {
		out[i] = g.edges[k]
	}

	return out, nil
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, k := range g.out[from] {
		if g.edges[k].To == to {
			return true
		}
	}

	return false
}

// MinWeight returns the smallest edge weight and the first edge carrying it.
// ok is false for an edgeless graph.
func (g *Graph) MinWeight() (w float64, e Edge, ok bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if len(g.edges) == 0 {
		return 0, Edge{}, false
	}
	e = g.edges[0]
	for _, cur := range g.edges[1:] {
		if cur.Weight < e.Weight {
			e = cur
		}
	}

	return e.Weight, e, true
}

// Stats produces a read-only snapshot of catalog sizes and weight range.
//
// Implementation:
//   - Stage 1: Under muNode.RLock, snapshot the node count.
//   - Stage 2: Under muEdge.RLock, scan the edge catalog once.
//
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	var s GraphStats
	g.muNode.RLock()
	s.NodeCount = len(g.order)
	g.muNode.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	s.EdgeCount = len(g.edges)
	for i, e := range g.edges {
		if i == 0 || e.Weight < s.MinWeight {
			s.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > s.MaxWeight {
			s.MaxWeight = e.Weight
		}
		if e.Weight < 0 {
			s.NegativeEdges++
		}
		if e.From == e.To {
			s.SelfLoops++
		}
	}

	return s
}
