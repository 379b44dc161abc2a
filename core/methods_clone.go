// File: methods_clone.go
// Role: Snapshotting graph instances.
//
// Concurrency:
//   - Read locks on the source; the clone is a fresh, unshared instance.

package core

// Clone returns an independent copy of the Graph: nodes, edges and the
// outgoing index, preserving insertion order and Edge.Seq.
//
// Node.Metadata maps are shared with the source (shallow), everything else is
// copied. Use Clone to hand each concurrent search its own Graph snapshot when
// the source may still be mutated by the caller.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	clone := NewGraph(WithCapacity(len(g.order)))
	for _, id := range g.order {
		n := *g.nodes[id]
		clone.nodes[id] = &n
		clone.order = append(clone.order, id)
	}
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for id, idx := range g.out {
		cp := make([]int, len(idx))
		copy(cp, idx)
		clone.out[id] = cp
	}

	return clone
}

// Clear removes every node and edge while keeping the configured capacity.
// Not safe to call while a search is reading the graph.
func (g *Graph) Clear() {
	g.muNode.Lock()
	g.muEdge.Lock()
	g.nodes = make(map[string]*Node, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.edges = nil
	g.out = make(map[string][]int, g.capacity)
	g.muEdge.Unlock()
	g.muNode.Unlock()
}
