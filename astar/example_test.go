package astar_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/astar"
	"github.com/katalvlaran/pathviz/core"
)

// ExampleSearch shows the heuristic steering the search away from a detour:
// X is pushed but never expanded.
func ExampleSearch() {
	g := core.NewGraph()
	_ = g.AddNodes(
		core.Node{ID: "A", X: 0, Y: 0, HasCoords: true},
		core.Node{ID: "B", X: 1, Y: 0, HasCoords: true},
		core.Node{ID: "C", X: 2, Y: 0, HasCoords: true},
		core.Node{ID: "D", X: 3, Y: 0, HasCoords: true},
		core.Node{ID: "X", X: 0, Y: 5, HasCoords: true},
	)
	_ = g.AddEdge("A", "X", 1)
	_ = g.AddEdge("X", "D", 10)
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	res, err := astar.Search(g, "A", "D", astar.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Path.TotalCost)
	fmt.Println("visited:", res.Metrics.Visited)

	// Output:
	// A → B → C → D 3
	// visited: 4
}
