package tinydigraph_test

import (
	"fmt"

	"github.com/katalvlaran/digraphx/tinydigraph"
)

// ExampleTinyDiGraph shows construction and ordered queries.
func ExampleTinyDiGraph() {
	g := tinydigraph.New[string, float64]()
	g.InitNodes("fetch", "decode", "execute")
	_ = g.AddEdge("fetch", "decode", 1.5)
	_ = g.AddEdge("decode", "execute", 2)
	_ = g.AddEdge("execute", "fetch", 0.5)
	_ = g.SetNodeAttr("fetch", "stage", "IF")

	for u := range g.Nodes() {
		for v, w := range g.Neighbors(u) {
			fmt.Printf("%s -> %s (%g)\n", u, v, w)
		}
	}
	stage, _ := g.NodeAttr("fetch", "stage")
	fmt.Println("nodes:", g.NumberOfNodes(), "edges:", g.NumberOfEdges(), "stage:", stage)
	// Output:
	// fetch -> decode (1.5)
	// decode -> execute (2)
	// execute -> fetch (0.5)
	// nodes: 3 edges: 3 stage: IF
}

// ExampleNewRange builds an integer-labelled graph.
func ExampleNewRange() {
	g := tinydigraph.NewRange[int](3)
	err := g.AddEdge(0, 3, 1)
	fmt.Println(g.NumberOfNodes(), err)
	// Output:
	// 3 AddEdge 0→3: tinydigraph: node not found: 3
}
