package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/scenario"
	"github.com/katalvlaran/pathviz/search"
)

type runFlags struct {
	file      string
	name      string
	all       bool
	strategy  string
	heuristic string
	trace     bool
	detail    bool
	fps       float64
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run --scenario FILE",
		Short: "Run scenarios from a YAML or HCL file and check their expectations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := scenario.Load(f.file)
			if err != nil {
				return err
			}
			targets := file.Scenarios
			if !f.all {
				s, err := file.Find(f.name)
				if err != nil {
					return err
				}
				targets = []*scenario.Scenario{s}
			}
			failed := 0
			for _, s := range targets {
				if err := a.runScenario(cmd, s, f); err != nil {
					failed++
					printf(cmd.OutOrStdout(), "  %s %v\n", styles.Error.Render("FAIL"), err)
					a.log.Warn("scenario failed", "scenario", s.Name, "err", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(targets))
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "scenario", "f", "", "scenario file (.yaml, .yml or .hcl)")
	fl.StringVar(&f.name, "name", "", "scenario to run (default: the first)")
	fl.BoolVar(&f.all, "all", false, "run every scenario in the file")
	fl.StringVar(&f.strategy, "strategy", "", "override the strategy: dijkstra, astar, bfs or dfs")
	fl.StringVar(&f.heuristic, "heuristic", "", "override the A* heuristic: zero, euclidean, manhattan or floor")
	fl.BoolVar(&f.trace, "trace", false, "print every step")
	fl.BoolVar(&f.detail, "detail", false, "include the frontier in the trace")
	fl.Float64Var(&f.fps, "fps", 0, "steps per second when tracing (0 = unpaced)")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (a *app) runScenario(cmd *cobra.Command, s *scenario.Scenario, f runFlags) error {
	sc := *s
	if f.strategy != "" {
		sc.Strategy = f.strategy
	}
	if f.heuristic != "" {
		sc.Heuristic = f.heuristic
	}
	in, err := sc.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := []search.Option{search.WithLogger(a.log)}
	fps := 0.0
	if f.trace {
		opts = append(opts, search.WithObserver(traceObserver(out)))
		fps = f.fps
	}
	if f.detail {
		opts = append(opts, search.WithDetail())
	}
	st, err := in.NewStepper(opts...)
	if err != nil {
		return err
	}
	res, err := drive(cmd.Context(), st, fps)
	if err != nil {
		return err
	}
	a.recorder.Observe(res)

	printResult(out, sc.Name, res)
	if in.Grid != nil {
		start, _ := gridgraph.ParseCellID(in.Start)
		goal, _ := gridgraph.ParseCellID(in.Goal)
		if err := printGrid(out, in.Grid.Mask(), start, goal, res.Path); err != nil {
			return err
		}
	}
	if err := sc.Check(res); err != nil {
		return err
	}
	if sc.Expect != nil {
		printf(out, "  %s\n", styles.Success.Render("expectations met"))
	}

	return nil
}
