// Package core provides the thread-safe, undirected, attributed in-memory
// Graph that the spanning-forest computations read from.
//
// The Graph G = (V,E) separates two identities for every node:
//
//   - NodeID - a dense internal integer (0, 1, 2, … in insertion order) used
//     by algorithms for hashing and bookkeeping.
//   - Label  - the caller-visible string name, unique within the graph and
//     used only when results are handed back to the caller.
//
// ID(label) and Label(id) translate between the two.
//
// Every edge carries an Attrs payload (map[string]any). The graph stores it
// opaquely; algorithms decide which key, if any, holds a weight.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, attrs Attrs) (NodeID, error) // O(1), idempotent, merges attrs
//	HasNode(label string) bool                         // O(1)
//	ID(label string) (NodeID, bool)                    // O(1)
//	Label(id NodeID) string                            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, attrs Attrs) (EdgeID, error) // O(1)†, auto-adds nodes
//	RemoveEdge(eid EdgeID) error                          // O(1)
//	HasEdge(from, to string) bool                         // O(1)
//
//	// Query
//	NodeIDs() []NodeID                      // insertion order
//	Adjacency(id NodeID) []Adjacent         // sorted by EdgeID, symmetric
//	NeighborLabels(label string) ([]string, error)
//	Edges() []*Edge                         // sorted by EdgeID
//
//	// Cloning & views
//	CloneEmpty() *Graph                     // nodes + flags
//	Clone() *Graph                          // nodes + edges
//	InducedSubgraph(g, keep) *Graph         // kept labels only
//
// Concurrency:
//
//	muVert guards the node catalog, muEdgeAdj guards edges and adjacency.
//	Writers always take muVert before muEdgeAdj. Any number of readers may
//	share one Graph; this is what lets independent spanning-forest
//	computations run concurrently over the same graph.
//
// † amortized constant time plus the cost of cloning attrs.
package core
