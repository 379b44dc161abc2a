package route

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/search"
)

// Algorithm names accepted by Navigator.Route.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// NewStrategy returns a fresh strategy for a routing algorithm name.
func NewStrategy(algorithm string) (search.Strategy, error) {
	switch algorithm {
	case AlgorithmDijkstra, "":
		return dijkstra.New(), nil
	case AlgorithmAStar:
		return astar.New(astar.FloorAware(FloorPenalty)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger routes navigator and engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithResultHook calls fn with every finished search, e.g. to export metrics.
func WithResultHook(fn func(search.Result)) Option {
	return func(n *Navigator) { n.hook = fn }
}

// WithConcurrency bounds the number of searches run in parallel by
// MultiDestination, Evacuation and Nearest. Values < 1 are ignored.
func WithConcurrency(limit int) Option {
	return func(n *Navigator) {
		if limit > 0 {
			n.limit = limit
		}
	}
}

// Navigator answers routing queries over a fixed Network.
//
// Graphs are built lazily, one per accessibility class, and reused; the
// Network must not be mutated after the Navigator is created.
type Navigator struct {
	net   *Network
	log   *slog.Logger
	hook  func(search.Result)
	limit int

	mu     sync.Mutex
	graphs map[Accessibility]*core.Graph
}

// NewNavigator wraps net.
func NewNavigator(net *Network, opts ...Option) *Navigator {
	n := &Navigator{
		net:    net,
		log:    slog.New(slog.DiscardHandler),
		limit:  4,
		graphs: make(map[Accessibility]*core.Graph),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Graph returns the cached graph for the given needs, building it on first use.
func (n *Navigator) Graph(needs Accessibility) (*core.Graph, error) {
	if needs == "" {
		needs = Normal
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if g, ok := n.graphs[needs]; ok {
		return g, nil
	}
	g, err := n.net.Build(needs)
	if err != nil {
		return nil, err
	}
	n.graphs[needs] = g
	n.log.Debug("graph built",
		slog.String("needs", string(needs)),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// Leg is one hop of a Plan.
type Leg struct {
	From, To    Location
	Distance    float64 // base meters, before congestion and bonuses
	TravelTime  float64 // seconds
	Instruction string
}

// Plan is a routed journey.
type Plan struct {
	Result     search.Result
	Legs       []Leg
	TravelTime float64 // seconds, sum over legs
	// AccessibleCompliant is true unless a wheelchair route uses a link that
	// is not explicitly accessible.
	AccessibleCompliant bool
}

// Found reports whether a route exists.
func (p Plan) Found() bool { return p.Result.Path.Found() }

// Route plans a journey from one location to another. "No route" is a
// normal outcome reported through Plan.Found.
func (n *Navigator) Route(ctx context.Context, from, to, algorithm string, needs Accessibility) (Plan, error) {
	strategy, err := NewStrategy(algorithm)
	if err != nil {
		return Plan{}, err
	}
	g, err := n.Graph(needs)
	if err != nil {
		return Plan{}, err
	}
	res, err := n.run(ctx, g, from, to, strategy)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Result: res, AccessibleCompliant: true}
	nodes := res.Path.Nodes
	for i := 0; i+1 < len(nodes); i++ {
		a, _ := n.net.Location(nodes[i])
		b, _ := n.net.Location(nodes[i+1])
		lk, _ := n.net.link(a.ID, b.ID, needs)
		plan.Legs = append(plan.Legs, Leg{
			From:        a,
			To:          b,
			Distance:    lk.Distance,
			TravelTime:  lk.TravelTime,
			Instruction: instruction(a, b),
		})
		plan.TravelTime += lk.TravelTime
		if needs == Wheelchair && !lk.WheelchairFriendly() {
			plan.AccessibleCompliant = false
		}
	}

	return plan, nil
}

// run drives one search to completion, honoring ctx between steps.
func (n *Navigator) run(ctx context.Context, g *core.Graph, from, to string, strategy search.Strategy) (search.Result, error) {
	st, err := search.NewStepper(g, from, to, strategy, search.WithLogger(n.log))
	if err != nil {
		return search.Result{}, translate(err)
	}
	if _, err = st.Run(ctx); err != nil {
		return search.Result{}, err
	}
	res, err := st.Result()
	if err != nil {
		return search.Result{}, err
	}
	if n.hook != nil {
		n.hook(res)
	}

	return res, nil
}

// MultiDestination routes from one origin to every target concurrently.
// Unknown targets yield a no-path result rather than an error.
func (n *Navigator) MultiDestination(ctx context.Context, from string, targets []string, needs Accessibility) (map[string]search.Result, error) {
	g, err := n.Graph(needs)
	if err != nil {
		return nil, err
	}

	out, err := MultiDestination(ctx, g, from, targets,
		func() search.Strategy { return dijkstra.New() },
		n.limit, search.WithLogger(n.log))
	if err != nil {
		return nil, translate(err)
	}
	if n.hook != nil {
		for _, t := range targets {
			if res, ok := out[t]; ok && res.RunID != "" {
				n.hook(res)
			}
		}
	}

	return out, nil
}

// EvacuationRoute is one way out for one occupied location.
type EvacuationRoute struct {
	Start         string
	Exit          Location
	Path          search.Path
	Distance      float64
	EstimatedTime time.Duration
}

// EvacuationPlan groups the routes found for all starting points.
type EvacuationPlan struct {
	Routes         []EvacuationRoute
	TotalLocations int
	AverageTime    time.Duration
}

// Evacuation finds up to maxRoutes exits (closest first) for each start.
// maxRoutes ≤ 0 means 3.
func (n *Navigator) Evacuation(ctx context.Context, starts []string, maxRoutes int) (EvacuationPlan, error) {
	if maxRoutes <= 0 {
		maxRoutes = 3
	}
	exits := n.net.Filter(Location.IsExit)
	ids := make([]string, len(exits))
	for i, e := range exits {
		ids[i] = e.ID
	}

	plan := EvacuationPlan{TotalLocations: len(starts)}
	var total time.Duration
	for _, start := range starts {
		results, err := n.MultiDestination(ctx, start, ids, Normal)
		if err != nil {
			return EvacuationPlan{}, err
		}
		var found []EvacuationRoute
		for _, exit := range exits {
			res := results[exit.ID]
			if !res.Succeeded() {
				continue
			}
			found = append(found, EvacuationRoute{
				Start:         start,
				Exit:          exit,
				Path:          res.Path,
				Distance:      res.Path.TotalCost,
				EstimatedTime: walkTime(res.Path.TotalCost),
			})
		}
		sort.SliceStable(found, func(i, j int) bool { return found[i].Distance < found[j].Distance })
		if len(found) > maxRoutes {
			found = found[:maxRoutes]
		}
		for _, r := range found {
			total += r.EstimatedTime
		}
		plan.Routes = append(plan.Routes, found...)
	}
	if len(plan.Routes) > 0 {
		plan.AverageTime = total / time.Duration(len(plan.Routes))
	}
	n.log.Debug("evacuation planned",
		slog.Int("starts", len(starts)),
		slog.Int("routes", len(plan.Routes)),
	)

	return plan, nil
}

// Match is a candidate returned by Nearest.
type Match struct {
	Location    Location
	Distance    float64
	Path        search.Path
	Utilization float64
}

// Nearest returns up to max available locations of type t ordered by route
// cost from start. max ≤ 0 means 5.
func (n *Navigator) Nearest(ctx context.Context, start string, t LocationType, max int) ([]Match, error) {
	if max <= 0 {
		max = 5
	}
	cands := n.net.Filter(func(l Location) bool { return l.Type == t && l.Available() })
	ids := make([]string, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	results, err := n.MultiDestination(ctx, start, ids, Normal)
	if err != nil {
		return nil, err
	}

	var out []Match
	for _, c := range cands {
		res := results[c.ID]
		if !res.Succeeded() {
			continue
		}
		out = append(out, Match{
			Location:    c,
			Distance:    res.Path.TotalCost,
			Path:        res.Path,
			Utilization: c.Utilization(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > max {
		out = out[:max]
	}

	return out, nil
}

func walkTime(meters float64) time.Duration {
	return time.Duration(meters / WalkingSpeed * float64(time.Second))
}

// instruction describes how to walk from a to b.
func instruction(a, b Location) string {
	if a.Floor != b.Floor {
		switch b.Type {
		case Elevator:
			return fmt.Sprintf("Take elevator to floor %d", b.Floor)
		case Stairs:
			return fmt.Sprintf("Take stairs to floor %d", b.Floor)
		}

		return fmt.Sprintf("Go to floor %d", b.Floor)
	}

	return fmt.Sprintf("Head %s to %s", direction(a, b), b.Name)
}

func direction(a, b Location) string {
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return "east"
		}
		return "west"
	}
	if dy > 0 {
		return "north"
	}

	return "south"
}
