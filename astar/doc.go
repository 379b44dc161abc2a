// Package astar implements A* search as a search.Strategy.
//
// A* is Dijkstra with the frontier keyed by f = g + h, where g is the cost so
// far and h(v, goal) is a heuristic estimate of the remaining cost. With an
// admissible heuristic (never overestimates) the first time the goal is
// finalized its cost is optimal. Inadmissible heuristics are accepted and
// simply trade optimality for fewer expansions.
//
// Heuristics operate on core.Node coordinates. Nodes without coordinates
// contribute an estimate of 0, which keeps any heuristic admissible on mixed
// graphs.
//
// Provided heuristics:
//
//	Zero          – h = 0; A* degenerates to Dijkstra.
//	Euclidean     – straight-line distance.
//	Manhattan     – |dx| + |dy|; admissible on 4-connected unit grids.
//	Scaled(h, k)  – k·h; k > 1 gives weighted A*.
//	FloorAware(p) – Euclidean plus p per floor of difference.
package astar
