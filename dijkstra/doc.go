// Package dijkstra provides Dijkstra's shortest-path algorithm as a
// search.Strategy that can be driven one step at a time.
//
// Overview:
//
//   - The frontier is a binary min-heap keyed by tentative cost, ties broken
//     by insertion order (first inserted wins).
//   - Decrease-key is lazy: an improved cost pushes a new entry and the old one
//     is discarded as stale when popped.
//   - A node is finalized once, when its first non-stale entry is popped; its
//     cost is optimal at that moment.
//   - The search stops as soon as the goal is finalized.
//
// Preconditions:
//
//   - Every edge weight must be ≥ 0. Prepare scans all edges first and fails
//     with ErrNegativeWeight before any state is created.
//
// Options:
//
//   - WithMaxDistance(d): nodes whose cost would exceed d are never reached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithFilterNeighbor(fn): skip edges for which fn returns false.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with lazy deletion (up to E heap entries).
//   - Space: O(V + E).
//
// Example:
//
//	res, err := dijkstra.Search(g, "A", "B")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path.Nodes, res.Path.TotalCost)
package dijkstra
