package mst

import (
	"sort"

	"github.com/tddschn/Easy-Graph/dsu"
)

// Kruskal computes a minimum (or maximum) spanning forest of g by scanning
// all edges in signed-weight order and using a disjoint-set to reject edges
// that would close a cycle.
//
// opts.Method is ignored; every other field applies.
//
// Steps:
//  1. Validate g and opts; sign = +1 when minimizing, −1 when maximizing.
//  2. Collect each undirected edge once (from its lower NodeID end),
//     dropping self-loops. Resolve every weight and apply the NaN policy
//     before anything is selected.
//  3. Stable-sort candidates by signed weight; ties keep adjacency order.
//  4. For each candidate (u, v): if Find(u) != Find(v), accept it and Union
//     the two roots; otherwise discard it.
//  5. Stop after |V|−1 acceptances or when candidates run out.
//
// The output is globally sorted by signed weight; it spans every component.
//
// Error Conditions:
//   - ErrNilGraph, ErrEmptyWeightKey: invalid input, nothing computed.
//   - *UndefinedWeightError: a NaN weight with SkipUndefinedWeights == false.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g Graph, opts Options) ([]Edge, error) {
	if err := opts.validate(g); err != nil {
		return nil, err
	}

	r := newRun(g, opts, MethodKruskal)
	edges, err := r.kruskal()
	r.finish(edges, err)
	if err != nil {
		return nil, err
	}

	return edges, nil
}

func (r *run) kruskal() ([]Edge, error) {
	nodes := r.g.NodeIDs()
	r.stats.Nodes = len(nodes)
	r.log.Debug("spanning forest start", "method", MethodKruskal, "nodes", len(nodes), "minimize", r.opts.Minimize)

	// 2. Collect candidates once per undirected edge.
	var cands []candidate
	for _, u := range nodes {
		for _, adj := range r.g.Adjacency(u) {
			if adj.To <= u {
				continue
			}
			signed, weight, ok, err := r.resolve(u, adj.To, adj.Attrs)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			cands = append(cands, candidate{signed: signed, weight: weight, from: u, to: adj.To, attrs: adj.Attrs})
		}
	}
	r.stats.Candidates = len(cands)

	// 3. Order by signed weight.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].signed < cands[j].signed })

	// 4. Select with the disjoint-set.
	set := dsu.New(nodes...)
	out := make([]Edge, 0, len(nodes))
	for _, c := range cands {
		if len(out) == len(nodes)-1 {
			break
		}
		ru, rv := set.Find(c.from), set.Find(c.to)
		if ru == rv {
			continue
		}
		set.Union(ru, rv)
		out = append(out, r.emit(c))
	}
	// Adjacency may reach ids NodeIDs omits; the set registered them lazily.
	r.stats.Components = len(set.Sets())

	return out, nil
}
