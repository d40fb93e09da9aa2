package builder_test

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/builder"
)

// ExampleBuildGraph lays down two disjoint components under separate scopes.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
		builder.Scoped("east", builder.Path(3)),
		builder.Scoped("west", builder.Star(3)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Labels())
	for _, e := range g.Edges() {
		fmt.Println(g.Label(e.From), "-", g.Label(e.To), e.Attrs["weight"])
	}
	// Output:
	// [east/A east/B east/C west/A west/B west/C]
	// east/A - east/B 2
	// east/B - east/C 2
	// west/A - west/B 2
	// west/A - west/C 2
}
