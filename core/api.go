// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade of read-only configuration getters and a stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of a Graph's configuration and size.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	NodeCount   int
	EdgeCount   int
	LoopCount   int
}

// Multigraph reports whether parallel edges are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of flags and catalog sizes.
//
// Implementation:
//   - Stage 1: under muVert.RLock, snapshot flags and node count.
//   - Stage 2: under muEdgeAdj.RLock, snapshot edge count and count self-loops.
//
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		NodeCount:   len(g.nodes),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
