// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - Edge IDs are monotonic (1, 2, 3, ...) and never reused.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"maps"
	"sort"
)

// AddEdge creates a new undirected edge between the nodes labelled from and
// to, adding either node if missing. attrs is cloned, so later changes to the
// caller's map do not leak into the graph.
//
// Steps:
//  1. Validate labels and the loop constraint.
//  2. Ensure endpoints via AddNode.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Issue the next EdgeID and store the Edge.
//  5. Link adjacency from→to, and to→from unless it is a self-loop.
//
// Complexity: O(1) amortized plus O(len(attrs)).
func (g *Graph) AddEdge(from, to string, attrs Attrs) (EdgeID, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return 0, ErrEmptyLabel
	}
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	// 2) Ensure nodes exist
	u, err := g.AddNode(from, nil)
	if err != nil {
		return 0, err
	}
	v, err := g.AddNode(to, nil)
	if err != nil {
		return 0, err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	// 4) Store
	g.nextEdgeID++
	eid := g.nextEdgeID
	e := &Edge{ID: eid, From: u, To: v, Attrs: maps.Clone(attrs)}
	if e.Attrs == nil {
		e.Attrs = make(Attrs)
	}
	g.edges[eid] = e

	// 5) Link adjacency, mirrored for non-loops
	ensureAdjacency(g, u, v)
	g.adjacency[u][v][eid] = struct{}{}
	if u != v {
		ensureAdjacency(g, v, u)
		g.adjacency[v][u][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge joins the nodes labelled from and
// to. Unknown labels yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	u, ok := g.ID(from)
	if !ok {
		return false
	}
	v, ok := g.ID(to)
	if !ok {
		return false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns the edge with the given ID.
// The returned *Edge is the live catalog entry; treat it as read-only.
func (g *Graph) GetEdge(eid EdgeID) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
