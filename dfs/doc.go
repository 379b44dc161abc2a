// Package dfs provides depth-first search as a search.Strategy.
//
// DFS uses a LIFO frontier. When a node is expanded its neighbors are pushed
// in reverse edge order, so the first neighbor in insertion order is explored
// first, matching a recursive walk. A node may sit on the stack several
// times; the first entry popped finalizes it and fixes its predecessor, later
// copies are discarded.
//
// DFS gives no shortest-path guarantee. The reported cost is the sum of the
// weights along the discovery path actually taken.
//
// Complexity: O(V + E) time, O(E) stack space.
package dfs
