package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depth counts parent hops from x to its root without compressing.
func depth[T comparable](s *DisjointSet[T], x T) int {
	d := 0
	for s.parent[x] != x {
		x = s.parent[x]
		d++
	}

	return d
}

// TestFind_FullPathCompression builds a chain by hand and checks that one
// Find flattens every node on it.
func TestFind_FullPathCompression(t *testing.T) {
	s := New(0, 1, 2, 3, 4)
	// 0 -> 1 -> 2 -> 3 -> 4 (root)
	for i := 0; i < 4; i++ {
		s.parent[i] = i + 1
	}
	s.size[4] = 5
	require.Equal(t, 4, depth(s, 0))

	assert.Equal(t, 4, s.Find(0))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 4, s.parent[i], "node %d not re-pointed", i)
		assert.LessOrEqual(t, depth(s, i), 1)
	}
}

// TestUnion_ChainLengthBound checks that after any union sequence followed
// by a Find, the chain to the root is at most two hops on the next lookup.
func TestUnion_ChainLengthBound(t *testing.T) {
	s := New[int]()
	for i := 1; i < 64; i++ {
		a, b := s.Find(i-1), s.Find(i)
		s.Union(a, b)
	}
	for i := 0; i < 64; i++ {
		s.Find(i)
		assert.LessOrEqual(t, depth(s, i), 2, "node %d", i)
	}
	// Union by size keeps the root's size exact.
	assert.Equal(t, 64, s.size[s.Find(0)])
}
