package mst_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/tddschn/Easy-Graph/core"
	"github.com/tddschn/Easy-Graph/mst"
)

// ExampleMinimumSpanningEdges builds a small road network and keeps the
// cheapest set of roads that still connects every city.
func ExampleMinimumSpanningEdges() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Lviv", "Kyiv", core.Attrs{"weight": 540.0})
	_, _ = g.AddEdge("Kyiv", "Kharkiv", core.Attrs{"weight": 480.0})
	_, _ = g.AddEdge("Kyiv", "Odesa", core.Attrs{"weight": 475.0})
	_, _ = g.AddEdge("Lviv", "Odesa", core.Attrs{"weight": 790.0})
	_, _ = g.AddEdge("Odesa", "Kharkiv", core.Attrs{"weight": 700.0})

	edges, err := mst.MinimumSpanningEdges(g, mst.WithMethod(mst.MethodKruskal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s - %s %.0f\n", e.From, e.To, e.Weight)
	}
	fmt.Printf("total %.0f\n", mst.TotalWeight(edges))
	// Output:
	// Kyiv - Odesa 475
	// Kyiv - Kharkiv 480
	// Lviv - Kyiv 540
	// total 1495
}

// ExampleMaximumSpanningEdges shows the forest of a disconnected graph: one
// tree per component, acceptance order from the Prim frontier.
func ExampleMaximumSpanningEdges() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.Attrs{"weight": 3})
	_, _ = g.AddEdge("B", "C", core.Attrs{"weight": 1})
	_, _ = g.AddEdge("A", "C", core.Attrs{"weight": 2})
	_, _ = g.AddEdge("X", "Y", core.Attrs{"weight": 7})
	_, _ = g.AddNode("Z", nil)

	edges, _ := mst.MaximumSpanningEdges(g)
	for _, e := range edges {
		fmt.Printf("%s - %s %v\n", e.From, e.To, e.Weight)
	}
	// Output:
	// A - B 3
	// A - C 2
	// X - Y 7
}

// ExampleUndefinedWeightError shows both NaN policies.
func ExampleUndefinedWeightError() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.Attrs{"weight": math.NaN()})
	_, _ = g.AddEdge("B", "C", core.Attrs{"weight": 1.0})

	_, err := mst.SpanningEdges(g)
	var uw *mst.UndefinedWeightError
	if errors.As(err, &uw) {
		fmt.Println("failed on", uw.From, uw.To)
	}

	edges, _ := mst.SpanningEdges(g, mst.WithSkipUndefinedWeights(true))
	fmt.Println("skipped, kept", len(edges), "edge")
	// Output:
	// failed on A B
	// skipped, kept 1 edge
}
