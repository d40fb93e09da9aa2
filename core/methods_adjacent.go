// File: methods_adjacent.go
// Role: Neighborhood API (Adjacency, NeighborLabels) and adjacency helpers.
// Determinism:
//   - Adjacency() sorts by Edge ID asc.
//   - NeighborLabels() returns unique labels sorted lex asc.
// Concurrency:
//   - Read operations hold muEdgeAdj (and muVert where labels are needed) read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Adjacency returns one entry per edge incident to id: the neighbour reached,
// the edge ID, and the edge's live attribute map. A self-loop appears once
// with To == id; parallel edges appear once each. Unknown ids yield nil.
//
// Each undirected edge u–v is listed under both u and v, so the relation is
// symmetric.
//
// Complexity: O(d log d), d = degree of id.
func (g *Graph) Adjacency(id NodeID) []Adjacent {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []Adjacent
	for to, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			out = append(out, Adjacent{To: to, Edge: eid, Attrs: e.Attrs})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Edge < out[j].Edge })

	return out
}

// NeighborLabels returns the unique labels adjacent to the node labelled
// label, sorted lexicographically.
//
// Errors: ErrEmptyLabel, ErrNodeNotFound.
func (g *Graph) NeighborLabels(label string) ([]string, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	id, ok := g.ID(label)
	if !ok {
		return nil, ErrNodeNotFound
	}

	seen := make(map[NodeID]struct{})
	for _, a := range g.Adjacency(id) {
		seen[a.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for to := range seen {
		out = append(out, g.Label(to))
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency allocates the adjacency[from][to] bucket if missing.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to NodeID) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[NodeID]map[EdgeID]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[EdgeID]struct{})
	}
}

// removeAdjacency unlinks e from its buckets and prunes buckets that become
// empty. Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(from, to NodeID) {
		if m := g.adjacency[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[from], to)
			}
		}
	}
	unlink(e.From, e.To)
	if e.From != e.To {
		unlink(e.To, e.From)
	}
}
