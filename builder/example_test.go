package builder_test

import (
	"fmt"

	"github.com/katalvlaran/digraphx/builder"
	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/numeric"
)

// ExampleBuild builds a ring of negative arcs and finds its cycle.
func ExampleBuild() {
	g, err := builder.Build(builder.Weight,
		[]builder.BuilderOption{builder.WithConstantWeight(-1)},
		builder.Cycle(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	weight := func(w float64) numeric.Float { return numeric.Float(w) }
	cycles := negcycle.NewFinder[int, float64, numeric.Float](g).Howard(map[int]numeric.Float{}, weight)
	fmt.Println("nodes:", g.NumberOfNodes(), "cycles:", len(cycles), "length:", len(cycles[0]))
	// Output:
	// nodes: 4 cycles: 1 length: 4
}
