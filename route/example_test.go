package route_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathviz/route"
)

// ExampleNavigator_Route walks from the main entrance to the laboratory on
// the second floor of the default layout.
func ExampleNavigator_Route() {
	nav := route.NewNavigator(route.DefaultHospital())
	plan, err := nav.Route(context.Background(), "ENTRANCE_MAIN", "LAB_01", route.AlgorithmDijkstra, route.Normal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, leg := range plan.Legs {
		fmt.Println(leg.Instruction)
	}
	fmt.Printf("%.0f m, %.0f s\n", plan.Result.Path.TotalCost, plan.TravelTime)

	// Output:
	// Head east to Main Reception
	// Head east to Main Elevator
	// Go to floor 2
	// 35 m, 65 s
}
