// Package gridgraph treats a 2-D wall mask as a graph.
//
// A mask is a rectangular [][]bool indexed [row][col] where true marks a
// blocked cell. GridGraph supports:
//
//   - Conversion to a *core.Graph: one node per open cell, unit-weight edges
//     between 4-adjacent open cells (N, E, S, W order; no diagonals).
//   - Validated stepping: NewStepper rejects start/goal cells that are out of
//     bounds or on a wall with ErrInvalidCell before any search state exists.
//   - Region analysis: ConnectedComponents and SameRegion over open cells.
//   - MinBreaches: the fewest wall cells to remove so two open cells connect.
//
// Node IDs are "row,col" (see CellID); node coordinates are X = col, Y = row so
// the Manhattan and Euclidean heuristics of package astar apply directly.
package gridgraph
