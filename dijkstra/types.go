// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors returned by the Dijkstra strategy.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in
	// the graph. It is the same value as search.ErrNegativeWeight.
	ErrNegativeWeight = search.ErrNegativeWeight

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the Dijkstra strategy.
//
// MaxDistance      – nodes whose cost would exceed this value are not reached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	FilterNeighbor   func(from, to string) bool

	// invalid option recorded during construction, surfaced by Prepare
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable
// threshold and no neighbor filter.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values make
// Prepare fail with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Zero or negative values make Prepare fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithFilterNeighbor skips edge from→to when fn returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}
