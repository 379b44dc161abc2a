// Package frontier provides the containers that hold discovered-but-not-yet
// finalized nodes during a search.
//
// Three implementations share the Frontier interface:
//
//   - MinQueue: a binary min-heap ordered by (Priority, Seq). Seq is stamped
//     on Push, so among equal priorities the first-inserted entry is popped
//     first. Used by Dijkstra and A*.
//   - FIFO: first-in first-out queue for breadth-first search.
//   - LIFO: last-in first-out stack for depth-first search.
//
// There is no decrease-key. Callers push a fresh entry when a node's cost
// improves and discard stale entries on Pop (lazy deletion), so the same node
// may appear several times.
//
// Complexity:
//
//	MinQueue: Push/Pop O(log n), Len O(1)
//	FIFO, LIFO: Push/Pop O(1) amortized
//
// None of the implementations are safe for concurrent use; a frontier is
// owned by exactly one in-progress search.
package frontier
