// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone keep NodeIDs and carry nextEdgeID so IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "maps"

// CloneEmpty returns a new Graph with identical configuration and nodes
// (same NodeIDs, labels, shared node Attrs) but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	// Copy configuration via options
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	clone.nextEdgeID = g.nextEdgeID

	clone.nodes = make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		clone.nodes[i] = &Node{ID: n.ID, Label: n.Label, Attrs: n.Attrs}
		clone.byLabel[n.Label] = n.ID
		clone.adjacency[n.ID] = make(map[NodeID]map[EdgeID]struct{})
	}

	return clone
}

// Clone returns a copy of the Graph: configuration, nodes, edges (with
// cloned attribute maps) and adjacency. Edge IDs are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Attrs: maps.Clone(e.Attrs)}
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
