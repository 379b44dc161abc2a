package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/search"
)

// drive steps st to completion. fps > 0 paces the steps with a token-bucket
// limiter so a trace can be followed live.
func drive(ctx context.Context, st *search.Stepper, fps float64) (search.Result, error) {
	var lim *rate.Limiter
	if fps > 0 {
		lim = rate.NewLimiter(rate.Limit(fps), 1)
	}
	for !st.Finished() {
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return search.Result{}, err
			}
		} else if err := ctx.Err(); err != nil {
			return search.Result{}, err
		}
		st.Step()
	}

	return st.Result()
}

// traceObserver prints one line per snapshot, plus the frontier when the
// stepper was built with detail.
func traceObserver(w io.Writer) func(search.Snapshot) {
	return func(s search.Snapshot) {
		cur := s.Current
		if cur == "" {
			cur = "-"
		}
		printf(w, "%s %-10s cost=%-6g frontier=%-3d visited=%d",
			styles.Muted.Render(fmt.Sprintf("step %-4d", s.Step)), cur, s.CurrentCost, s.FrontierSize, s.VisitedCount)
		if len(s.Frontier) > 0 {
			printf(w, "  %s", styles.Muted.Render("["+strings.Join(s.Frontier, " ")+"]"))
		}
		switch {
		case s.Finished && s.Succeeded:
			printf(w, "  %s", styles.Success.Render("goal reached"))
		case s.Finished:
			printf(w, "  %s", styles.Warning.Render("exhausted"))
		}
		printf(w, "\n")
	}
}

// printResult writes the outcome and the run metrics.
func printResult(w io.Writer, title string, res search.Result) {
	printf(w, "%s %s\n", styles.Title.Render(title), styles.Muted.Render(res.RunID))
	if res.Succeeded() {
		printf(w, "  %s %s\n", styles.Label.Render("path:"), styles.Path.Render(res.Path.String()))
		printf(w, "  %s %g (%d edges)\n", styles.Label.Render("cost:"), res.Path.TotalCost, res.Path.Len())
	} else {
		printf(w, "  %s %s\n", styles.Label.Render("path:"), styles.Warning.Render("no path"))
	}
	m := res.Metrics
	printf(w, "  %s %s steps=%d visited=%d pushes=%d stale=%d peak=%d elapsed=%s\n",
		styles.Label.Render("metrics:"), m.Strategy, m.Steps, m.Visited, m.Pushes,
		m.StaleDiscarded, m.PeakFrontier, m.Elapsed.Round(time.Microsecond))
}

// printGrid draws walls and the path over a grid mask.
func printGrid(w io.Writer, walls [][]bool, start, goal gridgraph.Cell, p search.Path) error {
	cells, err := gridgraph.PathCells(p)
	if err != nil {
		return err
	}
	m := &maze.Maze{Walls: walls, Start: start, Goal: goal}
	printf(w, "%s", maze.Render(m, '*', cells...))

	return nil
}
