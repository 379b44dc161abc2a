package search

import "errors"

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to NewStepper.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilStrategy indicates that no Strategy was supplied.
	ErrNilStrategy = errors.New("search: strategy is nil")

	// ErrNegativeWeight indicates that the pre-scan of a cost-based strategy
	// found an edge with a negative weight.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrNotFinished is returned by Result while the search is still running.
	ErrNotFinished = errors.New("search: search has not finished")
)
