package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/core"
)

// Stepper runs one search incrementally.
//
// Implementation:
//   - Stage 1: NewStepper validates inputs and lets the strategy pre-scan the
//     graph. Nothing is allocated on failure.
//   - Stage 2: each Step pops entries until one is accepted, finalizes it,
//     and expands its outgoing edges. Stale entries are drained in the same
//     call.
//   - Stage 3: the search finishes when the goal is finalized or the frontier
//     empties. Further Step calls return the terminal snapshot unchanged.
type Stepper struct {
	strategy Strategy
	state    *State
	opts     Options
	log      *slog.Logger
	runID    string

	metrics  Metrics
	started  time.Time
	finished bool
	failure  error
	last     Snapshot
	path     Path
}

// NewStepper prepares a search of g from start to goal using strategy.
//
// Errors:
//   - ErrNilGraph, ErrNilStrategy for nil arguments.
//   - core.ErrUnknownNode (wrapped with the id) when start or goal is absent.
//   - whatever strategy.Prepare returns (ErrNegativeWeight for Dijkstra/A*).
func NewStepper(g *core.Graph, start, goal string, strategy Strategy, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	for _, id := range [...]string{start, goal} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownNode, id)
		}
	}
	if err := strategy.Prepare(g, start, goal); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	s := &Stepper{
		strategy: strategy,
		state:    newState(g, start, goal, strategy.NewFrontier()),
		opts:     o,
		runID:    o.RunID,
		metrics:  Metrics{Strategy: strategy.Name(), PathCost: math.Inf(1)},
		path:     NoPath(),
	}
	s.log = o.Logger.With(
		slog.String("run_id", s.runID),
		slog.String("strategy", s.metrics.Strategy),
	)
	s.state.seed(strategy.StartPriority(s.state))
	s.last = s.snapshot("", 0)

	return s, nil
}

// RunID returns the identifier used to correlate this run's logs and metrics.
func (s *Stepper) RunID() string { return s.runID }

// Strategy returns the strategy driving this search.
func (s *Stepper) Strategy() Strategy { return s.strategy }

// State returns a read-only view of the live search state.
func (s *Stepper) State() StateView { return s.state }

// Finished reports whether the search has terminated.
func (s *Stepper) Finished() bool { return s.finished }

// Step performs one unit of work and returns the resulting snapshot.
// After termination it is a no-op returning the terminal snapshot.
func (s *Stepper) Step() Snapshot {
	if s.finished {
		return s.last
	}
	if s.metrics.Steps == 0 {
		s.started = s.opts.Clock()
		s.log.Debug("search started",
			slog.String("start", s.state.start),
			slog.String("goal", s.state.goal),
			slog.Int("nodes", s.state.graph.NodeCount()),
		)
	}
	s.metrics.Steps++

	for {
		e, ok := s.state.front.Pop()
		if !ok {
			return s.finish("", false)
		}
		if !s.strategy.Accept(s.state, e) {
			s.metrics.StaleDiscarded++
			continue
		}

		s.state.finalize(e)
		if e.ID == s.state.goal {
			return s.finish(e.ID, true)
		}

		edges, err := s.state.graph.Neighbors(e.ID)
		if err != nil {
			s.failure = fmt.Errorf("search: expanding %q: %w", e.ID, err)
			return s.finish(e.ID, false)
		}
		s.strategy.Expand(s.state, e.ID, edges)

		s.last = s.snapshot(e.ID, s.state.Cost(e.ID))
		s.notify()

		return s.last
	}
}

// RunToCompletion steps until the search terminates and returns the
// terminal snapshot.
func (s *Stepper) RunToCompletion() Snapshot {
	for !s.finished {
		s.Step()
	}

	return s.last
}

// Run behaves like RunToCompletion but checks ctx between steps. On
// cancellation the search stays resumable and ctx.Err() is returned with the
// last snapshot.
func (s *Stepper) Run(ctx context.Context) (Snapshot, error) {
	for !s.finished {
		if err := ctx.Err(); err != nil {
			return s.last, err
		}
		s.Step()
	}

	return s.last, nil
}

// Result returns the outcome of a finished search.
// ErrNotFinished is returned while the search is still running; a graph
// failure during expansion is returned alongside the partial result.
func (s *Stepper) Result() (Result, error) {
	if !s.finished {
		return Result{}, ErrNotFinished
	}
	res := Result{
		RunID:    s.runID,
		Strategy: s.metrics.Strategy,
		Start:    s.state.start,
		Goal:     s.state.goal,
		Path:     s.path,
		Metrics:  s.metrics,
	}

	return res, s.failure
}

// finish records the terminal state exactly once.
func (s *Stepper) finish(current string, ok bool) Snapshot {
	s.finished = true
	if ok {
		if nodes := s.state.pathTo(s.state.goal); nodes != nil {
			s.path = Path{Nodes: nodes, TotalCost: s.state.Cost(s.state.goal)}
		} else {
			ok = false
		}
	}

	m := &s.metrics
	m.Visited = len(s.state.visited)
	m.Pushes = s.state.pushes
	m.PeakFrontier = s.state.peakFrontier
	m.FinalFrontier = s.state.front.Len()
	m.PathLength = s.path.Len()
	m.PathCost = s.path.TotalCost
	m.Elapsed = s.opts.Clock().Sub(s.started)

	cost := 0.0
	if current != "" {
		cost = s.state.Cost(current)
	}
	s.last = s.snapshot(current, cost)
	s.last.Finished = true
	s.last.Succeeded = ok
	s.notify()

	switch {
	case s.failure != nil:
		s.log.Debug("search failed", slog.Any("err", s.failure))
	case ok:
		s.log.Debug("search finished",
			slog.Int("steps", m.Steps),
			slog.Int("visited", m.Visited),
			slog.Int("path_len", m.PathLength),
			slog.Float64("path_cost", m.PathCost),
		)
	default:
		s.log.Debug("no path found",
			slog.Int("steps", m.Steps),
			slog.Int("visited", m.Visited),
		)
	}

	return s.last
}

func (s *Stepper) snapshot(current string, cost float64) Snapshot {
	snap := Snapshot{
		Step:         s.metrics.Steps,
		Current:      current,
		CurrentCost:  cost,
		FrontierSize: s.state.front.Len(),
		VisitedCount: len(s.state.visited),
	}
	if s.opts.Detail {
		entries := s.state.front.Entries()
		snap.Frontier = make([]string, len(entries))
		for i, e := range entries {
			snap.Frontier[i] = e.ID
		}
		snap.Visited = s.state.Visited()
	}

	return snap
}

func (s *Stepper) notify() {
	if s.opts.Observer != nil {
		s.opts.Observer(s.last)
	}
}

// Solve runs strategy from start to goal to completion and returns its result.
func Solve(g *core.Graph, start, goal string, strategy Strategy, opts ...Option) (Result, error) {
	st, err := NewStepper(g, start, goal, strategy, opts...)
	if err != nil {
		return Result{}, err
	}
	st.RunToCompletion()

	return st.Result()
}
