// Options, results and errors for breadth-first walks over a core.Graph.

package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start label is unknown.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors wraps a failed neighbour lookup.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option configures a walk.
type Option func(*config)

type config struct {
	ctx context.Context
}

func newConfig(opts []Option) config {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithContext stops the walk with ctx.Err() once ctx is done. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Result is the outcome of BFS: labels in visit order and their hop count
// from the start.
type Result struct {
	Order []string
	Depth map[string]int
}

// Component is one connected component.
type Component struct {
	// Seed is the member with the lowest NodeID. Prim grows the component's
	// tree from this node.
	Seed string

	// Nodes lists the members in visit order from Seed; Nodes[0] == Seed.
	Nodes []string
}

// TreeEdges is the number of edges a spanning tree of c has.
func (c Component) TreeEdges() int { return len(c.Nodes) - 1 }
