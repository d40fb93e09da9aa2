// File: types.go
// Role: Node, Edge and Adjacent types, graph options, sentinel errors and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyLabel          - node label is the empty string.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a node label is the empty string.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeID is the dense internal identifier of a node, assigned in insertion
// order starting at 0. It never changes for the lifetime of a Graph.
type NodeID int

// EdgeID is the internal identifier of an edge, assigned monotonically
// starting at 1.
type EdgeID int

// Attrs is an opaque attribute payload attached to a node or an edge.
// The graph never interprets it.
type Attrs map[string]any

// Node is a graph vertex: its internal ID, caller-visible Label and Attrs.
type Node struct {
	// ID is the internal identifier.
	ID NodeID

	// Label is the caller-visible name, unique within the Graph.
	Label string

	// Attrs stores arbitrary node data. It is shared on CloneEmpty.
	Attrs Attrs
}

// Edge is an undirected connection between two nodes.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From and To are the endpoints in insertion order.
	From NodeID
	To   NodeID

	// Attrs is the edge payload, e.g. {"weight": 3.5}.
	Attrs Attrs
}

// Adjacent is one entry of a node's adjacency: the neighbour reached, the
// edge used, and that edge's attribute payload.
//
// Attrs is the live catalog map; treat it as read-only.
type Adjacent struct {
	To    NodeID
	Edge  EdgeID
	Attrs Attrs
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected, attributed, in-memory graph.
//
// Nodes are stored densely by NodeID and looked up by label through byLabel.
// muVert protects nodes and byLabel; muEdgeAdj protects edges, adjacency and
// nextEdgeID. Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards nodes, byLabel
	muEdgeAdj sync.RWMutex // guards edges, adjacency, nextEdgeID

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nodes      []*Node           // NodeID → Node
	byLabel    map[string]NodeID // Label → NodeID
	nextEdgeID EdgeID            // last issued edge ID
	edges      map[EdgeID]*Edge  // EdgeID → Edge

	// adjacency[u][v][eid] = struct{}{}; undirected edges are mirrored,
	// self-loops are stored once under adjacency[u][u].
	adjacency map[NodeID]map[NodeID]map[EdgeID]struct{}
}

// NewGraph creates an empty Graph. By default it rejects self-loops and
// parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		byLabel:   make(map[string]NodeID),
		edges:     make(map[EdgeID]*Edge),
		adjacency: make(map[NodeID]map[NodeID]map[EdgeID]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
