package mst

import (
	"container/heap"

	"github.com/tddschn/Easy-Graph/core"
)

// Prim computes a minimum (or maximum) spanning forest of g by growing one
// tree per connected component from a priority frontier.
//
// opts.Method is ignored; every other field applies.
//
// Steps:
//  1. Validate g and opts; sign = +1 when minimizing, −1 when maximizing.
//  2. remaining = every node. While remaining is non-empty, take the next
//     remaining node as the component seed, remove it, mark it visited and
//     push every non-loop incident edge onto a fresh frontier.
//  3. Pop the smallest signed weight (u', v). Discard it if v is visited or
//     no longer remaining. Otherwise accept (u', v), mark v visited, remove
//     it from remaining and push v's edges to unvisited neighbours.
//  4. When the frontier is empty the component is complete; continue with
//     the next seed.
//
// Every push resolves the weight and applies the NaN policy. The output is
// in acceptance order, one tree after another; it is not globally sorted.
//
// Error Conditions:
//   - ErrNilGraph, ErrEmptyWeightKey: invalid input, nothing computed.
//   - *UndefinedWeightError: a NaN weight with SkipUndefinedWeights == false.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g Graph, opts Options) ([]Edge, error) {
	if err := opts.validate(g); err != nil {
		return nil, err
	}

	r := newRun(g, opts, MethodPrim)
	edges, err := r.prim()
	r.finish(edges, err)
	if err != nil {
		return nil, err
	}

	return edges, nil
}

func (r *run) prim() ([]Edge, error) {
	nodes := r.g.NodeIDs()
	r.stats.Nodes = len(nodes)
	r.log.Debug("spanning forest start", "method", MethodPrim, "nodes", len(nodes), "minimize", r.opts.Minimize)

	remaining := make(map[core.NodeID]struct{}, len(nodes))
	for _, id := range nodes {
		remaining[id] = struct{}{}
	}

	out := make([]Edge, 0, len(nodes))
	// Seeds are drawn by scanning nodes in order; any order yields the
	// same total weight.
	for _, seed := range nodes {
		if _, ok := remaining[seed]; !ok {
			continue
		}
		delete(remaining, seed)
		r.stats.Components++

		visited := map[core.NodeID]struct{}{seed: {}}
		pq := &frontier{}
		if err := r.push(pq, seed, visited); err != nil {
			return nil, err
		}

		accepted := 0
		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if _, seen := visited[c.to]; seen {
				continue
			}
			if _, left := remaining[c.to]; !left {
				continue
			}

			out = append(out, r.emit(c))
			accepted++
			visited[c.to] = struct{}{}
			delete(remaining, c.to)

			if err := r.push(pq, c.to, visited); err != nil {
				return nil, err
			}
		}
		r.log.Debug("component grown", "seed", r.g.Label(seed), "edges", accepted)
	}

	return out, nil
}

// push resolves and pushes every edge of u whose far end is not in visited.
// Self-loops are never resolved, so their weights cannot trip the NaN policy.
func (r *run) push(pq *frontier, u core.NodeID, visited map[core.NodeID]struct{}) error {
	for _, adj := range r.g.Adjacency(u) {
		if adj.To == u {
			continue
		}
		if _, seen := visited[adj.To]; seen {
			continue
		}
		signed, weight, ok, err := r.resolve(u, adj.To, adj.Attrs)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		heap.Push(pq, candidate{signed: signed, weight: weight, from: u, to: adj.To, attrs: adj.Attrs})
		r.stats.Candidates++
	}

	return nil
}
