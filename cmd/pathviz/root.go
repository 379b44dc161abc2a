package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/telemetry"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	logLevel  string
	logFormat string
	metrics   bool

	log      *slog.Logger
	registry *prometheus.Registry
	recorder *telemetry.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathviz",
		Short: "Step through shortest-path searches on graphs, grids and mazes",
		Long: `pathviz drives Dijkstra, A*, BFS and DFS one step at a time and shows
the frontier, the visit order and the final path.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.dumpMetrics,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics for the searches run")

	root.AddCommand(
		newRunCmd(a),
		newMazeCmd(a),
		newRouteCmd(a),
		newEvacuateCmd(a),
		newNearestCmd(a),
	)

	return root
}

// setup builds the logger and the metrics recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(a.logFormat) {
	case "text":
		h = slog.NewTextHandler(cmd.ErrOrStderr(), hopts)
	case "json":
		h = slog.NewJSONHandler(cmd.ErrOrStderr(), hopts)
	default:
		return fmt.Errorf("--log-format: unknown format %q", a.logFormat)
	}
	a.log = slog.New(h)

	a.registry = prometheus.NewRegistry()
	cfg := telemetry.DefaultConfig()
	cfg.Registry = a.registry
	rec, err := telemetry.NewRecorder(cfg)
	if err != nil {
		return err
	}
	a.recorder = rec

	return nil
}

// dumpMetrics writes the registry in the Prometheus text format when
// --metrics is set.
func (a *app) dumpMetrics(cmd *cobra.Command, _ []string) error {
	if !a.metrics {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Title.Render("metrics"))
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// printf writes to w and drops the error; terminal output is best effort.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
