package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/gridgraph"
)

// ExampleGridGraph_NewStepper solves a small maze with BFS.
//
//	. # .
//	. # .
//	. . .
func ExampleGridGraph_NewStepper() {
	gg, _ := gridgraph.NewGridGraph([][]bool{
		{false, true, false},
		{false, true, false},
		{false, false, false},
	})
	st, err := gg.NewStepper(bfs.New(), gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 0, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st.RunToCompletion()
	res, _ := st.Result()
	fmt.Println(res.Path)
	fmt.Println("cost:", res.Path.TotalCost)

	// Output:
	// 0,0 → 1,0 → 2,0 → 2,1 → 2,2 → 1,2 → 0,2
	// cost: 6
}

// ExampleGridGraph_ConnectedComponents counts open regions.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.NewGridGraph([][]bool{
		{false, true, false},
		{true, true, false},
	})
	for i, comp := range gg.ConnectedComponents() {
		fmt.Println(i, comp)
	}

	// Output:
	// 0 [0,0]
	// 1 [0,2 1,2]
}
