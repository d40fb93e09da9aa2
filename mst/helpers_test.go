package mst_test

import (
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tddschn/Easy-Graph/bfs"
	"github.com/tddschn/Easy-Graph/core"
	"github.com/tddschn/Easy-Graph/dsu"
	"github.com/tddschn/Easy-Graph/mst"
)

// wedge is a test edge; w == nil means "no weight attribute".
type wedge struct {
	u, v string
	w    any
}

// buildGraph constructs a multigraph with loops allowed from wedges.
func buildGraph(t testing.TB, nodes []string, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, n := range nodes {
		_, err := g.AddNode(n, nil)
		require.NoError(t, err)
	}
	for _, e := range edges {
		attrs := core.Attrs{}
		if e.w != nil {
			attrs[mst.DefaultWeightKey] = e.w
		}
		_, err := g.AddEdge(e.u, e.v, attrs)
		require.NoError(t, err)
	}

	return g
}

// buildTriangle: A-B (3), B-C (1), A-C (2).
func buildTriangle(t testing.TB) *core.Graph {
	return buildGraph(t, nil, []wedge{
		{"A", "B", 3.0},
		{"B", "C", 1.0},
		{"A", "C", 2.0},
	})
}

// buildMediumGraph creates a connected graph with n nodes and edgesCount
// edges: a chain V0-V1-…-V(n-1) with weights in [1, 11) plus random extras
// with weights in [1, 101). The generator is seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		w := 1.0 + r.Float64() + float64(r.Intn(10))
		_, err := g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), core.Attrs{"weight": w})
		require.NoError(t, err)
	}
	for i := n - 1; i < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		w := 1.0 + r.Float64() + float64(r.Intn(100))
		_, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), core.Attrs{"weight": w})
		require.NoError(t, err)
		i++
	}

	return g
}

// randomSmallGraph creates n nodes and m distinct non-loop edges with
// distinct integer-valued weights. It may be disconnected.
func randomSmallGraph(t testing.TB, r *rand.Rand, n, m int) *core.Graph {
	t.Helper()
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("N%d", i)
	}
	g := buildGraph(t, nodes, nil)

	weights := r.Perm(4 * m)
	for added := 0; added < m; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || g.HasEdge(nodes[u], nodes[v]) {
			continue
		}
		_, err := g.AddEdge(nodes[u], nodes[v], core.Attrs{"weight": float64(weights[added] + 1)})
		require.NoError(t, err)
		added++
	}

	return g
}

// componentSet partitions the labels of g into connected components.
func componentSet(g *core.Graph) *dsu.DisjointSet[string] {
	comp := dsu.New(g.Labels()...)
	for _, e := range g.Edges() {
		ra, rb := comp.Find(g.Label(e.From)), comp.Find(g.Label(e.To))
		if ra != rb {
			comp.Union(ra, rb)
		}
	}

	return comp
}

// requireSpanningForest checks that edges form a spanning forest of g:
// |V|−k edges, every edge exists in g and stays inside one component, each
// component gets exactly its tree's share of edges, and there are no cycles.
func requireSpanningForest(t *testing.T, g *core.Graph, edges []mst.Edge) {
	t.Helper()
	comp := componentSet(g)
	k := len(comp.Sets())
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, k, "disjoint-set and BFS disagree on components")
	require.Len(t, edges, g.NodeCount()-k, "forest must have |V|-k edges")

	owner := make(map[string]int, g.NodeCount())
	for i, c := range comps {
		for _, n := range c.Nodes {
			owner[n] = i
		}
	}
	perComp := make([]int, len(comps))

	forest := dsu.New(g.Labels()...)
	for _, e := range edges {
		require.True(t, g.HasEdge(e.From, e.To), "edge %s-%s not in graph", e.From, e.To)
		require.Equal(t, comp.Find(e.From), comp.Find(e.To), "edge %s-%s crosses components", e.From, e.To)
		ra, rb := forest.Find(e.From), forest.Find(e.To)
		require.NotEqual(t, ra, rb, "edge %s-%s closes a cycle", e.From, e.To)
		forest.Union(ra, rb)
		perComp[owner[e.From]]++
	}
	for i, c := range comps {
		require.Equal(t, c.TreeEdges(), perComp[i], "component seeded at %s", c.Seed)
	}
	require.Len(t, forest.Sets(), k, "forest must have one tree per component")
}

// requirePrimTreeOrder checks that Prim output is one tree per component in
// seed order, each tree starting at its component's seed.
func requirePrimTreeOrder(t *testing.T, g *core.Graph, edges []mst.Edge) {
	t.Helper()
	comps, err := bfs.Components(g)
	require.NoError(t, err)

	next := 0
	for _, c := range comps {
		if c.TreeEdges() == 0 {
			continue
		}
		require.LessOrEqual(t, next+c.TreeEdges(), len(edges), "missing tree of %s", c.Seed)
		assert.Equal(t, c.Seed, edges[next].From, "tree of %s must start at its seed", c.Seed)
		members := make(map[string]bool, len(c.Nodes))
		for _, n := range c.Nodes {
			members[n] = true
		}
		for _, e := range edges[next : next+c.TreeEdges()] {
			assert.True(t, members[e.From] && members[e.To], "edge %s-%s outside tree of %s", e.From, e.To, c.Seed)
		}
		next += c.TreeEdges()
	}
	assert.Equal(t, len(edges), next)
}

// pairKey is an order-independent key for an edge's endpoints.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return a + "-" + b
}

// pairSet returns the set of unordered endpoint pairs of edges.
func pairSet(edges []mst.Edge) map[string]bool {
	out := make(map[string]bool, len(edges))
	for _, e := range edges {
		out[pairKey(e.From, e.To)] = true
	}

	return out
}

// bruteForceForest enumerates every edge subset of size |V|−k and returns
// the best total weight of those that are acyclic. Only for tiny graphs.
func bruteForceForest(g *core.Graph, minimize bool) float64 {
	edges := g.Edges()
	target := g.NodeCount() - len(componentSet(g).Sets())

	best, found := 0.0, false
	for mask := 0; mask < 1<<len(edges); mask++ {
		if bits.OnesCount(uint(mask)) != target {
			continue
		}
		s := dsu.New(g.Labels()...)
		total, ok := 0.0, true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			ra, rb := s.Find(g.Label(e.From)), s.Find(g.Label(e.To))
			if ra == rb {
				ok = false
				break
			}
			s.Union(ra, rb)
			total += e.Attrs["weight"].(float64)
		}
		if !ok {
			continue
		}
		if !found || (minimize && total < best) || (!minimize && total > best) {
			best, found = total, true
		}
	}

	return best
}

// captureRecorder collects every RecordRun call.
type captureRecorder struct {
	stats []mst.Stats
	errs  []error
}

func (c *captureRecorder) RecordRun(s mst.Stats, err error) {
	c.stats = append(c.stats, s)
	c.errs = append(c.errs, err)
}

// methods lists both constructions for table-driven tests.
var methods = []string{mst.MethodPrim, mst.MethodKruskal}
