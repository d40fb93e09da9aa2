// Package bfs walks a core.Graph breadth-first and splits it into connected
// components.
//
// Components is the reference partition for spanning forests: a forest of g
// has exactly one tree per Component, Component.TreeEdges() edges in each,
// and Prim seeds every tree at Component.Seed.
//
//	comps, err := bfs.Components(g, bfs.WithContext(ctx))
//	for _, c := range comps {
//	    fmt.Println(c.Seed, len(c.Nodes))
//	}
//
// BFS reports hop counts from one start node. Weights are never read.
//
// Neighbours come from core.NeighborLabels, which is sorted, so visit order
// is reproducible.
package bfs
