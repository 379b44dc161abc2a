// SPDX-License-Identifier: MIT

package dfs

// Option configures DFS via functional arguments.
type Option func(*Options)

// Options holds DFS tunables.
type Options struct {
	// MaxDepth, if non-negative, limits the walk to the given hop count.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before it is pushed. Returning false skips the edge.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with no depth limit and no filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth limits the traversal depth to limit hops. A negative limit
// disables the cap.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
