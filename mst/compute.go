package mst

import "github.com/tddschn/Easy-Graph/core"

// Compute validates opts and runs the method it names.
//
//	– opts.Method == MethodPrim:    Prim(g, opts)
//	– opts.Method == MethodKruskal: Kruskal(g, opts)
//	– otherwise:                    ErrUnknownMethod
//
// Returns the selected edges in acceptance order. An empty graph yields an
// empty forest and no error.
func Compute(g Graph, opts Options) ([]Edge, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(g, opts)
	case MethodKruskal:
		return Kruskal(g, opts)
	default:
		return nil, ErrUnknownMethod
	}
}

// SpanningEdges applies opts on top of DefaultOptions() and calls Compute.
func SpanningEdges(g Graph, opts ...Option) ([]Edge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Compute(g, o)
}

// MinimumSpanningEdges is SpanningEdges with Minimize forced to true.
func MinimumSpanningEdges(g Graph, opts ...Option) ([]Edge, error) {
	return SpanningEdges(g, append(opts[:len(opts):len(opts)], WithMinimum())...)
}

// MaximumSpanningEdges is SpanningEdges with Minimize forced to false.
func MaximumSpanningEdges(g Graph, opts ...Option) ([]Edge, error) {
	return SpanningEdges(g, append(opts[:len(opts):len(opts)], WithMaximum())...)
}

// SpanningTree returns a new *core.Graph holding every node of g (labels and
// node attributes) and only the selected forest edges with their full
// attribute payloads. IncludeAttributes is forced to true. g is not mutated.
//
// Complexity: that of the chosen method plus O(V + E) for the copy.
func SpanningTree(g *core.Graph, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.IncludeAttributes = true

	if g == nil {
		return nil, ErrNilGraph
	}
	edges, err := Compute(g, o)
	if err != nil {
		return nil, err
	}

	tree := g.CloneEmpty()
	for _, e := range edges {
		if _, err := tree.AddEdge(e.From, e.To, e.Attrs); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// TotalWeight sums the resolved weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
