// Package core provides the in-memory directed, weighted Graph that every
// search strategy in pathviz runs against.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes carry a stable ID, optional 2-D coordinates (used by heuristics
//     and renderers) and optional display metadata.
//   - Edges are directed and carry a float64 weight. Undirected connections
//     are modeled as two edges (AddUndirectedEdge).
//   - Neighbors(id) returns outgoing edges in insertion order. Search
//     strategies rely on this order for deterministic tie-breaking, so it is
//     part of the contract.
//   - Duplicate edges between the same pair are allowed and independent; the
//     cheaper one wins during relaxation.
//   - Self-loops only exist when explicitly added.
//
// Concurrency:
//
//	muNode guards the node catalog, muEdge guards the edge catalog and the
//	outgoing index. Lock order is always muNode -> muEdge. Any number of
//	searches may read the same Graph concurrently; mutating a Graph while a
//	search is in progress invalidates that search.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                        // O(1)
//	HasNode(id string) bool                      // O(1)
//	Node(id string) (Node, bool)                 // O(1)
//	Nodes() []Node                               // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error    // O(1) amortized
//	AddUndirectedEdge(a, b string, w float64) error
//	Neighbors(id string) ([]Edge, error)         // O(deg), insertion order
//	Edges() []Edge                               // O(E), insertion order
//
//	// Inspection
//	NodeCount(), EdgeCount(), MinWeight(), Stats(), Clone()
//
// Errors:
//
//	ErrEmptyNodeID   – zero-length node ID
//	ErrDuplicateNode – node ID already present (nodes are immutable once added)
//	ErrUnknownNode   – an edge or query references a node that is not present
//	ErrBadWeight     – NaN or infinite edge weight
//
// Negative weights are accepted by the Graph itself; Dijkstra and A* reject
// them with a pre-scan before any search state is created.
package core
