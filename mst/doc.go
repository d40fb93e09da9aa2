// Package mst computes minimum and maximum spanning forests of weighted,
// possibly disconnected, attributed graphs.
//
// What & Why
//
//   - A spanning forest of G = (V, E) is a set of trees, one per connected
//     component, that together cover every vertex without cycles. A
//     connected graph yields |V|−1 edges; a graph with k components yields
//     |V|−k edges. Isolated vertices are trivial single-node trees.
//
//   - The minimum spanning forest minimizes the summed edge weight; the
//     maximum spanning forest maximizes it.
//
// Signed weights
//
//	Both directions share one comparison rule: every resolved weight is
//	multiplied by +1 (minimize) or −1 (maximize) and the smallest signed
//	weight always wins. Minimizing on weights w is therefore the same forest
//	as maximizing on −w.
//
// Weight resolution
//
//	Weights come from each edge's attribute payload under Options.WeightKey.
//	A missing key resolves to DefaultWeight (1). Numeric values of any Go
//	numeric kind are converted to float64; anything else resolves to NaN.
//
// NaN policy
//
//	An edge whose weight resolves to NaN is dropped when
//	Options.SkipUndefinedWeights is true, exactly as if it were absent from
//	the graph. Otherwise the whole call fails with an *UndefinedWeightError
//	naming both endpoint labels and the edge's full attribute payload;
//	errors.Is(err, ErrUndefinedWeight) holds.
//
// Algorithms Provided
//
//   - Prim(g, opts) - the reference construction. Seeds a component from the
//     next unassigned node, grows it from a min-heap frontier of candidate
//     edges, and moves to the next seed when the frontier drains. Output is
//     in acceptance order, tree after tree.
//     Time O(E log E), space O(V + E).
//
//   - Kruskal(g, opts) - sorts every edge once by signed weight and accepts
//     an edge when package dsu reports its endpoints in different sets.
//     Output is globally sorted by signed weight.
//     Time O(E log E + E·α(V)), space O(V + E).
//
//   - Compute(g, opts) dispatches on opts.Method; SpanningEdges,
//     MinimumSpanningEdges and MaximumSpanningEdges are functional-option
//     front doors; SpanningTree materializes the forest as a *core.Graph.
//
// Tie-breaking
//
//	Among equal signed weights the pop order is unspecified. Different tie
//	orders can select different edge sets, but the total weight is always
//	optimal.
//
// Edge cases
//
//   - Empty graph: empty forest, no error.
//   - Self-loops: never selected and their weights are never read, so a NaN
//     loop is ignored under either NaN policy.
//   - Parallel edges: all are candidates; the best-weighted one wins.
//
// Observability
//
//	Options.Logger (charmbracelet/log) receives debug events: run start,
//	each grown component, each skipped NaN edge, run summary.
//	Options.Recorder receives one Stats per call; package metrics provides a
//	Prometheus implementation.
//
// Concurrency
//
//	Each call builds its own frontier, visited/remaining sets and
//	disjoint-set, so any number of calls may read the same graph at once as
//	long as nobody mutates it meanwhile. There is no cancellation; a call
//	runs to completion or failure.
package mst
