// Package easygraph is the root of a small graph toolkit centred on
// spanning forests.
//
// Packages:
//
//   - core: thread-safe undirected multigraph with dense NodeIDs, string
//     labels and attribute payloads on nodes and edges.
//   - dsu: generic disjoint-set (union-find) with path compression and
//     union by size.
//   - mst: minimum and maximum spanning forests (Prim and Kruskal), weight
//     resolution from edge attributes, a configurable NaN policy,
//     charmbracelet/log debug output and a Recorder hook.
//   - metrics: Prometheus implementation of mst.Recorder.
//   - bfs: breadth-first search and connected components.
//   - builder: deterministic weighted fixtures (paths, rings, stars,
//     complete graphs, grids, G(n,p)).
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", core.Attrs{"weight": 3.0})
//	g.AddEdge("B", "C", core.Attrs{"weight": 1.0})
//	g.AddEdge("A", "C", core.Attrs{"weight": 2.0})
//	edges, err := mst.MinimumSpanningEdges(g) // B–C and A–C, total 3
package easygraph
