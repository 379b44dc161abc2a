// Package bfs provides breadth-first search as a search.Strategy.
//
// BFS explores nodes in increasing hop count from the start using a FIFO
// frontier. Each node is enqueued at most once, on first discovery, and its
// predecessor is fixed at that moment. Edge weights do not influence the
// order; the reported path cost is the sum of the weights along the BFS tree
// path, which equals the hop count on unit-weight graphs such as grids.
//
// Options mirror the classic walker: WithMaxDepth limits the hop count and
// WithFilterNeighbor skips edges.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
