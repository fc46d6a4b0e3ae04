package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/graph"
)

// ExampleReachable shows the last-in-first-out visiting order on a small
// directed graph. Z has an edge into the graph but is not reachable from A.
//
//	A → B → D
//	↓       ↑
//	C ──────┘      Z → A
func ExampleReachable() {
	g := graph.Edges[string, int]{}
	g.AddArc("A", "B", 1)
	g.AddArc("A", "C", 1)
	g.AddArc("B", "D", 1)
	g.AddArc("C", "D", 1)
	g.AddArc("Z", "A", 1)

	fmt.Println(dfs.Reachable[string, int](g, "A"))
	fmt.Println(dfs.ReachableSet[string, int](g, "A").Contains("Z"))
	// Output:
	// [A C D B]
	// false
}
