// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept nodes are re-inserted in the source's NodeID order; edges in Edge ID order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the labels in keep: every
// node whose label maps to true, and every edge with both endpoints kept.
// The input graph is not mutated.
//
// Labels, node Attrs and edge Attrs carry over. NodeIDs and EdgeIDs are
// reassigned densely in the view, so translate through labels.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	// Copy only kept nodes, in NodeID order.
	g.muVert.RLock()
	labels := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		labels[i] = n.Label
		if keep[n.Label] {
			_, _ = out.AddNode(n.Label, n.Attrs)
		}
	}
	g.muVert.RUnlock()

	// Copy only edges whose endpoints are both kept.
	for _, e := range g.Edges() {
		// nodes added after the snapshot are outside the view
		if int(e.From) >= len(labels) || int(e.To) >= len(labels) {
			continue
		}
		from, to := labels[e.From], labels[e.To]
		if !keep[from] || !keep[to] {
			continue
		}
		_, _ = out.AddEdge(from, to, e.Attrs)
	}

	return out
}
