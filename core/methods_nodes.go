// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//
// Concurrency:
//   - Node catalog protected by muNode.
//   - Outgoing index bootstrap under muEdge (lock order muNode -> muEdge).

package core

// AddNode registers a node.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under muNode write lock, reject duplicates (ErrDuplicateNode),
//     store a private copy and record insertion order.
//   - Stage 3: Under muEdge write lock, bootstrap the outgoing index bucket.
//
// Behavior highlights:
//   - Nodes are immutable once added; re-adding the same ID is an error rather
//     than a silent overwrite, so coordinates used by a running heuristic cannot
//     change underneath it.
//   - Metadata is initialized to a non-nil map.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	if n.Metadata == nil {
		n.Metadata = make(map[string]interface{})
	}
	stored := n
	g.nodes[n.ID] = &stored
	g.order = append(g.order, n.ID)

	g.muEdge.Lock()
	if _, ok := g.out[n.ID]; !ok {
		g.out[n.ID] = nil
	}
	g.muEdge.Unlock()

	return nil
}

// AddNodes registers every node in order and stops at the first error.
func (g *Graph) AddNodes(nodes ...Node) error {
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return err
		}
	}

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.order)
}
