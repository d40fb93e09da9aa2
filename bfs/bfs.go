package bfs

import (
	"fmt"

	"github.com/tddschn/Easy-Graph/core"
)

// walker holds the state of one or more walks over the same graph. Labels
// stay in seen across walks, so Components never revisits a node.
type walker struct {
	g     *core.Graph
	cfg   config
	seen  map[string]bool
	depth map[string]int
	queue []string
}

func newWalker(g *core.Graph, cfg config) *walker {
	n := g.NodeCount()

	return &walker{
		g:     g,
		cfg:   cfg,
		seen:  make(map[string]bool, n),
		depth: make(map[string]int, n),
		queue: make([]string, 0, n),
	}
}

// BFS walks g from start in non-decreasing hop count. Edge attributes are
// ignored; loops and parallel edges collapse to a single neighbour.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, ctx.Err().
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, newConfig(opts))
	order, err := w.walk(start)
	if err != nil {
		return nil, err
	}

	return &Result{Order: order, Depth: w.depth}, nil
}

// Components partitions g into connected components, listed in NodeID order
// of their seeds. This is the order in which Prim seeds its trees, so the
// i-th Component holding more than one node matches the i-th tree Prim emits.
//
// Errors: ErrGraphNil, ErrNeighbors, ctx.Err().
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, newConfig(opts))
	var out []Component
	for _, label := range g.Labels() {
		if w.seen[label] {
			continue
		}
		nodes, err := w.walk(label)
		if err != nil {
			return nil, err
		}
		out = append(out, Component{Seed: label, Nodes: nodes})
	}

	return out, nil
}

// walk visits everything reachable from start that is not yet seen and
// returns it in visit order.
func (w *walker) walk(start string) ([]string, error) {
	var order []string
	w.mark(start, 0)
	for len(w.queue) > 0 {
		if err := w.cfg.ctx.Err(); err != nil {
			w.queue = w.queue[:0]

			return nil, err
		}
		cur := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, cur)

		nbrs, err := w.g.NeighborLabels(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighbors, cur, err)
		}
		for _, nbr := range nbrs {
			if !w.seen[nbr] {
				w.mark(nbr, w.depth[cur]+1)
			}
		}
	}

	return order, nil
}

func (w *walker) mark(label string, d int) {
	w.seen[label] = true
	w.depth[label] = d
	w.queue = append(w.queue, label)
}
