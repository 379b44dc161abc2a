package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dfs"
)

// ExampleSearch shows that DFS follows the first branch to the end.
func ExampleSearch() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(core.Node{ID: id})
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "D", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	res, _ := dfs.Search(g, "A", "D")
	fmt.Println(res.Path, res.Path.TotalCost)

	// Output:
	// A → B → C → D 3
}
