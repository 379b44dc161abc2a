// Package telemetry exports finished searches as Prometheus metrics.
//
// A Recorder is fed search.Result values (typically from a Stepper's
// terminal state or a route.Navigator result hook) and updates counters and
// histograms labeled by strategy. It never influences a search.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathviz/search"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("telemetry: invalid configuration")

	// ErrRegistrationFailed is returned when metric registration fails.
	ErrRegistrationFailed = errors.New("telemetry: metric registration failed")
)

// Outcome label values.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
)

// Config controls metric naming and bucket layout.
type Config struct {
	// Namespace is the metrics namespace. Required.
	Namespace string

	// Subsystem is the metrics subsystem. Required.
	Subsystem string

	// Registry receives the collectors. If nil, prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// CountBuckets is used for steps, visited nodes and frontier sizes.
	CountBuckets []float64

	// CostBuckets is used for path costs.
	CostBuckets []float64

	// LatencyBuckets is used for elapsed time, in seconds.
	LatencyBuckets []float64
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() *Config {
	return &Config{
		Namespace:      "pathviz",
		Subsystem:      "search",
		CountBuckets:   prometheus.ExponentialBuckets(1, 4, 10),
		CostBuckets:    prometheus.ExponentialBuckets(1, 2, 14),
		LatencyBuckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}
	if c.Subsystem == "" {
		return fmt.Errorf("%w: subsystem is required", ErrInvalidConfig)
	}

	return nil
}

// Recorder holds the search collectors.
type Recorder struct {
	searches *prometheus.CounterVec
	stale    *prometheus.CounterVec
	steps    *prometheus.HistogramVec
	visited  *prometheus.HistogramVec
	frontier *prometheus.HistogramVec
	cost     *prometheus.HistogramVec
	elapsed  *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with cfg.Registry.
// A nil cfg means DefaultConfig().
func NewRecorder(cfg *Config) (*Recorder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	defaults := DefaultConfig()
	if cfg.CountBuckets == nil {
		cfg.CountBuckets = defaults.CountBuckets
	}
	if cfg.CostBuckets == nil {
		cfg.CostBuckets = defaults.CostBuckets
	}
	if cfg.LatencyBuckets == nil {
		cfg.LatencyBuckets = defaults.LatencyBuckets
	}

	strategy := []string{"strategy"}
	hist := func(name, help string, buckets []float64) *prometheus.HistogramVec {
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		}, strategy)
	}
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "searches_total",
			Help:      "Finished searches by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "stale_entries_total",
			Help:      "Frontier entries discarded as stale.",
		}, strategy),
		steps:    hist("steps", "Step calls per search.", cfg.CountBuckets),
		visited:  hist("visited_nodes", "Nodes finalized per search.", cfg.CountBuckets),
		frontier: hist("peak_frontier", "Largest frontier size per search.", cfg.CountBuckets),
		cost:     hist("path_cost", "Total cost of found paths.", cfg.CostBuckets),
		elapsed:  hist("duration_seconds", "Wall time per search.", cfg.LatencyBuckets),
	}
	for _, c := range []prometheus.Collector{r.searches, r.stale, r.steps, r.visited, r.frontier, r.cost, r.elapsed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
	}

	return r, nil
}

// Observe records one finished search. Safe for concurrent use.
func (r *Recorder) Observe(res search.Result) {
	m := res.Metrics
	name := m.Strategy
	if name == "" {
		name = res.Strategy
	}
	outcome := OutcomeNoPath
	if res.Succeeded() {
		outcome = OutcomeFound
		r.cost.WithLabelValues(name).Observe(res.Path.TotalCost)
	}
	r.searches.WithLabelValues(name, outcome).Inc()
	r.stale.WithLabelValues(name).Add(float64(m.StaleDiscarded))
	r.steps.WithLabelValues(name).Observe(float64(m.Steps))
	r.visited.WithLabelValues(name).Observe(float64(m.Visited))
	r.frontier.WithLabelValues(name).Observe(float64(m.PeakFrontier))
	r.elapsed.WithLabelValues(name).Observe(m.Elapsed.Seconds())
}
