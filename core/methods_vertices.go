// File: methods_vertices.go
// Role: Node lifecycle & queries, label ↔ NodeID translation.
//
// Determinism:
//   - NodeIDs() returns IDs in insertion order (0..n-1).
//   - Labels() returns labels in insertion order.
//
// Concurrency:
//   - Node catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert → muEdgeAdj).
package core

import "maps"

// AddNode inserts a node with the given label if missing and returns its ID.
//
// Steps:
//  1. Validate non-empty label (ErrEmptyLabel).
//  2. Under muVert write lock, look the label up.
//  3. Existing node: merge attrs into its Attrs (later keys win) and return its ID.
//  4. New node: assign the next dense NodeID, clone attrs, register, and
//     bootstrap its adjacency bucket under muEdgeAdj.
//
// Complexity: O(1) amortized plus O(len(attrs)).
func (g *Graph) AddNode(label string, attrs Attrs) (NodeID, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if id, ok := g.byLabel[label]; ok {
		n := g.nodes[id]
		if len(attrs) > 0 {
			if n.Attrs == nil {
				n.Attrs = make(Attrs, len(attrs))
			}
			maps.Copy(n.Attrs, attrs)
		}

		return id, nil
	}

	id := NodeID(len(g.nodes))
	n := &Node{ID: id, Label: label, Attrs: maps.Clone(attrs)}
	if n.Attrs == nil {
		n.Attrs = make(Attrs)
	}
	g.nodes = append(g.nodes, n)
	g.byLabel[label] = id

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[NodeID]map[EdgeID]struct{})
	g.muEdgeAdj.Unlock()

	return id, nil
}

// HasNode reports whether a node with the given label exists.
// Complexity: O(1).
func (g *Graph) HasNode(label string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.byLabel[label]

	return ok
}

// ID translates a label into its internal NodeID.
// Complexity: O(1).
func (g *Graph) ID(label string) (NodeID, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	id, ok := g.byLabel[label]

	return id, ok
}

// Label translates an internal NodeID back into the caller-visible label.
// It returns "" for an unknown id.
// Complexity: O(1).
func (g *Graph) Label(id NodeID) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if id < 0 || int(id) >= len(g.nodes) {
		return ""
	}

	return g.nodes[id].Label
}

// NodeIDs returns every NodeID in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		out[i] = NodeID(i)
	}

	return out
}

// Labels returns every label in insertion order.
// Complexity: O(V).
func (g *Graph) Labels() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label
	}

	return out
}

// NodeAttrs returns the attribute map of the node with the given label.
// The returned map is live; treat it as read-only.
//
// Errors: ErrEmptyLabel, ErrNodeNotFound.
func (g *Graph) NodeAttrs(label string) (Attrs, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	id, ok := g.byLabel[label]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.nodes[id].Attrs, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}
