// Package search drives graph traversals one unit of work at a time.
//
// A Stepper wraps a Strategy (Dijkstra, A*, BFS, DFS, or anything else that
// implements the interface) and owns the per-search State: tentative costs,
// the predecessor table, node status and the frontier. Each call to Step
// performs exactly one frontier-pop-and-relax cycle and returns a Snapshot the
// visualization layer can render.
//
// Lifecycle:
//
//	st, err := search.NewStepper(g, "A", "B", dijkstra.New())
//	for snap := st.Step(); !snap.Finished; snap = st.Step() {
//	    render(snap)            // caller-paced: one step per frame/tick
//	}
//	res, _ := st.Result()       // Path + Metrics
//
// Node status moves Unseen → Frontier → Finalized. A node is Finalized when it
// is popped from the frontier and accepted by the strategy. Entries rejected
// by the strategy (stale: a cheaper path was found after they were pushed) are
// discarded inside the same Step call and counted in Metrics.StaleDiscarded,
// so every non-terminal Step finalizes exactly one node.
//
// Terminal conditions: the goal is Finalized (success), or the frontier
// empties first (no path). "No path" is a normal outcome, not an error:
// Finished is true, Succeeded is false and the Path is empty with +Inf cost.
//
// Concurrency:
//
//	The engine is synchronous: Step never sleeps, yields or starts goroutines.
//	A Stepper must not be driven from more than one goroutine. Independent
//	Steppers over the same read-only Graph may run concurrently.
//
// Errors (construction time, fail-fast, nothing is allocated on failure):
//
//	ErrNilGraph, ErrNilStrategy, core.ErrUnknownNode, ErrNegativeWeight.
//	ErrNotFinished is returned by Result before termination.
package search
