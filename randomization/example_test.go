package randomization_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphmix/core"
	"github.com/katalvlaran/graphmix/randomization"
)

// ExampleSwitching shows that edge switches on a perfect matching with all
// degrees fixed to 1 only ever produce perfect matchings.
func ExampleSwitching() {
	g, _ := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	fixed := []randomization.DegreeInterval{{1, 1}, {1, 1}, {1, 1}, {1, 1}}

	sw, err := randomization.New(g, fixed, randomization.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = sw.SetSwitchingTypeDistribution(0, 0, 1)
	sw.SetNumberOfSwitches(100)
	if err := sw.Run(context.Background()); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(sw.Graph().NumberOfEdges(), sw.Graph().Degrees())
	fmt.Println(sw.Statistics().Attempted())
	// Output:
	// 2 [1 1 1 1]
	// 100
}

func ExampleSwitching_SetSwitchingTypeDistribution() {
	g, _ := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	sw, _ := randomization.New(g, randomization.IntervalsAround(g, 1, 1))

	err := sw.SetSwitchingTypeDistribution(0.5, 0.6, 0)
	fmt.Println(err)
	// Output:
	// SetSwitchingTypeDistribution: sum 1.1 exceeds 1: randomization: invalid argument
}
