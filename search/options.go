package search

import (
	"log/slog"
	"time"
)

// Option configures a Stepper via functional arguments.
type Option func(*Options)

// Options holds the tunables of a Stepper. The zero value is never used
// directly; DefaultOptions supplies the baseline.
type Options struct {
	// Logger receives Debug records on start, finish and failure.
	Logger *slog.Logger

	// Detail populates Snapshot.Frontier and Snapshot.Visited.
	Detail bool

	// Observer, if non-nil, is called synchronously after every Step that did
	// work, terminal step included.
	Observer func(Snapshot)

	// Clock supplies wall time for Metrics.Elapsed.
	Clock func() time.Time

	// RunID overrides the generated run identifier.
	RunID string
}

// DefaultOptions returns Options with a discarding logger, no detail, no
// observer and time.Now as the clock.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
		Clock:  time.Now,
	}
}

// WithLogger routes engine logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDetail makes every Snapshot carry frontier and visit-order copies.
// Costs O(V) per step.
func WithDetail() Option {
	return func(o *Options) { o.Detail = true }
}

// WithObserver registers fn to receive every snapshot.
func WithObserver(fn func(Snapshot)) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithClock replaces time.Now for elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithRunID fixes the run identifier instead of generating a UUID.
func WithRunID(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.RunID = id
		}
	}
}
