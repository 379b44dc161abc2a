package search

import "time"

// Metrics accumulates per-search counters. The Stepper updates it while
// running; it is read-only after the search finishes and never influences the
// search itself.
type Metrics struct {
	Strategy       string        // Strategy.Name()
	Steps          int           // Step calls that did work (terminal no-ops excluded)
	Visited        int           // finalized nodes
	Pushes         int           // frontier insertions, start included
	StaleDiscarded int           // popped entries rejected as stale
	PeakFrontier   int           // largest frontier size observed
	FinalFrontier  int           // frontier size at termination
	PathLength     int           // edges on the final path
	PathCost       float64       // total cost of the final path (+Inf if none)
	Elapsed        time.Duration // wall time between the first Step and termination
}
