package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/route"
)

// navigator wraps the built-in hospital network with the command's logger
// and metrics hook.
func (a *app) navigator() *route.Navigator {
	return route.NewNavigator(route.DefaultHospital(),
		route.WithLogger(a.log),
		route.WithResultHook(a.recorder.Observe),
	)
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		from, to, algorithm string
		wheelchair          bool
	)
	cmd := &cobra.Command{
		Use:   "route --from ID --to ID",
		Short: "Plan a walk between two locations of the hospital network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			needs := route.Normal
			if wheelchair {
				needs = route.Wheelchair
			}
			plan, err := a.navigator().Route(cmd.Context(), from, to, algorithm, needs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printResult(out, fmt.Sprintf("%s → %s", from, to), plan.Result)
			if !plan.Found() {
				return nil
			}
			for i, leg := range plan.Legs {
				printf(out, "  %2d. %s %s\n", i+1, leg.Instruction,
					styles.Muted.Render(fmt.Sprintf("(%gm, %gs)", leg.Distance, leg.TravelTime)))
			}
			printf(out, "  %s %s\n", styles.Label.Render("travel time:"),
				time.Duration(plan.TravelTime*float64(time.Second)))
			if needs == route.Wheelchair && !plan.AccessibleCompliant {
				printf(out, "  %s\n", styles.Warning.Render("route uses links not marked accessible"))
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&from, "from", route.DefaultEntrance, "origin location ID")
	fl.StringVar(&to, "to", "", "destination location ID")
	fl.StringVar(&algorithm, "algorithm", route.AlgorithmDijkstra, "dijkstra or astar")
	fl.BoolVar(&wheelchair, "wheelchair", false, "avoid stairs-only links")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newEvacuateCmd(a *app) *cobra.Command {
	var maxRoutes int
	cmd := &cobra.Command{
		Use:   "evacuate ID...",
		Short: "List the closest exits for each occupied location",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.navigator().Evacuation(cmd.Context(), args, maxRoutes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printf(out, "%s %d locations, %d routes, average %s\n", styles.Title.Render("evacuation"),
				plan.TotalLocations, len(plan.Routes), plan.AverageTime.Round(time.Second))
			for _, r := range plan.Routes {
				printf(out, "  %-14s → %-14s %6gm %6s  %s\n", r.Start, r.Exit.ID, r.Distance,
					r.EstimatedTime.Round(time.Second), styles.Path.Render(r.Path.String()))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxRoutes, "max", 3, "exits per location")

	return cmd
}

func newNearestCmd(a *app) *cobra.Command {
	var (
		from, kind string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "nearest --type TYPE",
		Short: "Find the closest available locations of a type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := route.LocationType(strings.ToUpper(kind))
			matches, err := a.navigator().Nearest(cmd.Context(), from, t, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printf(out, "%s %d × %s from %s\n", styles.Title.Render("nearest"), len(matches), t, from)
			for _, m := range matches {
				printf(out, "  %-14s %6gm  util=%3.0f%%  %s\n", m.Location.ID, m.Distance, m.Utilization,
					styles.Path.Render(m.Path.String()))
			}

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&from, "from", route.DefaultEntrance, "origin location ID")
	fl.StringVar(&kind, "type", "", "location type, e.g. PHARMACY or RESTROOM")
	fl.IntVar(&limit, "max", 5, "maximum results")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
