package search

// Snapshot is the observable state after a Step.
//
// Frontier and Visited are only populated when the Stepper was built with
// WithDetail(); they are copies and safe to retain.
type Snapshot struct {
	Step         int     // 1-based index of the Step call that produced this snapshot
	Current      string  // node finalized by this step ("" when none)
	CurrentCost  float64 // final cost of Current
	FrontierSize int     // pending frontier entries, stale ones included
	VisitedCount int     // finalized nodes so far
	Finished     bool
	Succeeded    bool

	Frontier []string // pending node IDs in extraction order (detail only)
	Visited  []string // finalized node IDs in order (detail only)
}

// Result is the terminal outcome of a search.
type Result struct {
	RunID    string
	Strategy string
	Start    string
	Goal     string
	Path     Path
	Metrics  Metrics
}

// Succeeded reports whether a path was found.
func (r Result) Succeeded() bool { return r.Path.Found() }
