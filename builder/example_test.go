package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lbrnth/builder"
	"github.com/katalvlaran/lbrnth/core"
	"github.com/katalvlaran/lbrnth/generate"
)

// Build a small maze end to end from one plain-data request: carve, cut an
// entrance and an exit, store the solution path.
func ExampleBuild() {
	res, err := builder.Build(builder.Blueprint{
		Topology:  core.Square,
		Width:     6,
		Height:    4,
		Algorithm: generate.Kruskal,
		Seed:      2,
		Openings: []core.OpeningSpec{
			{X: core.Start(), Y: core.Start()},
			{X: core.End(), Y: core.End()},
		},
		Solve: true,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("cells=%d openings=%d solved=%t\n",
		res.Maze.CellCount(), len(res.Maze.Openings()), len(res.Solution) > 0)
	// Output: cells=24 openings=2 solved=true
}
