package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/scenario"
	"github.com/katalvlaran/pathviz/search"
)

type mazeFlags struct {
	rows, cols int
	seed       int64
	loops      float64
	strategy   string
	heuristic  string
	compare    bool
	trace      bool
	fps        float64
}

func newMazeCmd(a *app) *cobra.Command {
	var f mazeFlags
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a seeded maze and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := maze.Generate(f.rows, f.cols, f.seed, maze.WithLoops(f.loops))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printf(out, "%s %dx%d seed=%d loops=%g\n", styles.Title.Render("maze"), f.rows, f.cols, f.seed, f.loops)
			if f.compare {
				return a.compareMaze(cmd, m, f.heuristic)
			}

			strategy, err := scenario.NewStrategy(f.strategy, f.heuristic)
			if err != nil {
				return err
			}
			gg, err := m.Grid()
			if err != nil {
				return err
			}
			opts := []search.Option{search.WithLogger(a.log)}
			fps := 0.0
			if f.trace {
				opts = append(opts, search.WithObserver(traceObserver(out)))
				fps = f.fps
			}
			st, err := gg.NewStepper(strategy, m.Start, m.Goal, opts...)
			if err != nil {
				return err
			}
			res, err := drive(cmd.Context(), st, fps)
			if err != nil {
				return err
			}
			a.recorder.Observe(res)
			printResult(out, strategy.Name(), res)

			return printGrid(out, m.Walls, m.Start, m.Goal, res.Path)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.rows, "rows", 8, "rooms per column")
	fl.IntVar(&f.cols, "cols", 16, "rooms per row")
	fl.Int64Var(&f.seed, "seed", 1, "generator seed")
	fl.Float64Var(&f.loops, "loops", 0, "fraction of remaining walls to knock down (0..1)")
	fl.StringVar(&f.strategy, "strategy", "astar", "dijkstra, astar, bfs or dfs")
	fl.StringVar(&f.heuristic, "heuristic", "manhattan", "A* heuristic: zero, euclidean or manhattan")
	fl.BoolVar(&f.compare, "compare", false, "solve with every strategy and compare the metrics")
	fl.BoolVar(&f.trace, "trace", false, "print every step")
	fl.Float64Var(&f.fps, "fps", 0, "steps per second when tracing (0 = unpaced)")

	return cmd
}

// compareMaze solves m once per strategy, in parallel, and prints one line
// per strategy in Strategies order.
func (a *app) compareMaze(cmd *cobra.Command, m *maze.Maze, heuristic string) error {
	gg, err := m.Grid()
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		results = make(map[string]search.Result, len(scenario.Strategies))
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	for _, name := range scenario.Strategies {
		g.Go(func() error {
			strategy, err := scenario.NewStrategy(name, heuristic)
			if err != nil {
				return err
			}
			st, err := gg.NewStepper(strategy, m.Start, m.Goal, search.WithLogger(a.log))
			if err != nil {
				return err
			}
			if _, err := st.Run(ctx); err != nil {
				return err
			}
			res, err := st.Result()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			a.recorder.Observe(res)
			mu.Lock()
			results[name] = res
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printf(out, "%s\n", styles.Label.Render(fmt.Sprintf("%-9s %6s %8s %6s %6s", "strategy", "cost", "visited", "stale", "peak")))
	for _, name := range scenario.Strategies {
		res := results[name]
		mt := res.Metrics
		printf(out, "%-9s %6g %8d %6d %6d\n", name, res.Path.TotalCost, mt.Visited, mt.StaleDiscarded, mt.PeakFrontier)
	}

	return nil
}
