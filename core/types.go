// SPDX-License-Identifier: MIT
// Package core declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - node ID already registered.
//	ErrUnknownNode   - requested node does not exist.
//	ErrBadWeight     - edge weight is NaN or infinite.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID was already added.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")
)

// Node is a single vertex of the graph.
//
// ID uniquely identifies the Node within its Graph. X/Y are only meaningful
// when HasCoords is true; heuristics that need coordinates fall back to zero
// for nodes without them.
type Node struct {
	// ID is the stable identifier of the node.
	ID string

	// X, Y are optional planar coordinates (meters, grid columns/rows, ...).
	X, Y float64

	// HasCoords reports whether X and Y were supplied.
	HasCoords bool

	// Name is an optional display name.
	Name string

	// Group is an optional grouping key (department, floor, region).
	Group string

	// Metadata stores arbitrary caller data. It is shared, not copied, by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed connection From→To with a real-valued Weight.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the traversal cost. Dijkstra and A* require Weight >= 0.
	Weight float64

	// Seq is the graph-wide insertion index of the edge (0-based).
	Seq int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory directed weighted graph.
//
// muNode protects nodes and order; muEdge protects edges and out.
type Graph struct {
	muNode sync.RWMutex // guards nodes, order
	muEdge sync.RWMutex // guards edges, out

	capacity int

	// Storage
	nodes map[string]*Node // node ID → Node
	order []string         // node IDs in insertion order

	edges []Edge           // edge catalog in insertion order (Edge.Seq == index)
	out   map[string][]int // node ID → indexes into edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus pre-sizing when WithCapacity is given).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[string]*Node, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.out = make(map[string][]int, g.capacity)

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	SelfLoops     int
	MinWeight     float64
	MaxWeight     float64
	NegativeEdges int
}
