// Package pathviz is a stepwise graph search engine: build a graph, pick a
// strategy, and advance the search one finalized node at a time while
// watching the frontier, the visit order and the metrics change.
//
// What is inside?
//
//	core/        thread-safe directed graph: nodes with optional coordinates, weighted edges
//	frontier/    min-priority queue with insertion-order tie-break, FIFO queue, LIFO stack
//	search/      Strategy interface, per-search State, Stepper, Snapshot, Path, Metrics
//	dijkstra/    uniform-cost search (non-negative weights)
//	astar/       heuristic search plus Zero, Euclidean, Manhattan and floor-aware heuristics
//	bfs/         breadth-first traversal, fewest edges
//	dfs/         depth-first traversal, reachability only
//	gridgraph/   walled 2-D grids as graphs, connected regions, fewest wall breaches
//	maze/        seeded maze generation and text rendering
//	route/       hospital network routing: accessibility, evacuation, nearest facility
//	scenario/    YAML and HCL search fixtures with expectations
//	telemetry/   Prometheus collectors for finished searches
//	cmd/pathviz  command-line driver
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNodes(core.Node{ID: "A"}, core.Node{ID: "B"}, core.Node{ID: "C"})
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("A", "C", 2)
//	_ = g.AddEdge("C", "B", 1)
//
//	st, _ := search.NewStepper(g, "A", "B", dijkstra.New())
//	for !st.Finished() {
//		snap := st.Step()
//		fmt.Println(snap.Step, snap.Current, snap.FrontierSize)
//	}
//	res, _ := st.Result()
//	fmt.Println(res.Path) // A → C → B
//
// "No path" is an ordinary outcome: the search finishes, Result returns a
// path with no nodes and +Inf cost, and no error.
package pathviz
