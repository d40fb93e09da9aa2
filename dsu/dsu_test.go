package dsu_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tddschn/Easy-Graph/dsu"
)

// TestFind_LazyRegistration verifies that Find on an unseen element registers
// it as a singleton and returns it as its own representative.
func TestFind_LazyRegistration(t *testing.T) {
	s := dsu.New[string]()
	require.Equal(t, 0, s.Len())

	assert.False(t, s.Contains("X"))
	assert.Equal(t, "X", s.Find("X")) // registered on first lookup
	assert.True(t, s.Contains("X"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Size("X"))

	// Second lookup is a plain find, no growth.
	assert.Equal(t, "X", s.Find("X"))
	assert.Equal(t, 1, s.Len())
}

// TestAdd_ReportsNewness verifies the explicit get-or-insert.
func TestAdd_ReportsNewness(t *testing.T) {
	s := dsu.New(1, 2, 2, 3) // duplicate 2 ignored
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Add(2))
	assert.True(t, s.Add(4))
	assert.Equal(t, 4, s.Len())
}

// TestUnion_BySize verifies that the smaller set is attached under the
// larger one and that sizes add up.
func TestUnion_BySize(t *testing.T) {
	s := dsu.New("a", "b", "c", "d")

	// {a,b} with root b (tie: first argument goes under second).
	s.Union(s.Find("a"), s.Find("b"))
	assert.Equal(t, "b", s.Find("a"))
	assert.Equal(t, 2, s.Size("a"))

	// {c} (size 1) vs {a,b} (size 2): c must go under b even though it is
	// passed second.
	s.Union(s.Find("a"), s.Find("c"))
	assert.Equal(t, "b", s.Find("c"))
	assert.Equal(t, 3, s.Size("c"))

	// Self-union is a no-op.
	s.Union(s.Find("d"), s.Find("d"))
	assert.Equal(t, 1, s.Size("d"))
	assert.False(t, s.Connected("a", "d"))
}

// TestUnion_Transitive verifies that transitively unioned elements share a
// representative.
func TestUnion_Transitive(t *testing.T) {
	s := dsu.New[int]()
	pairs := [][2]int{{1, 2}, {3, 4}, {2, 3}, {10, 11}}
	for _, p := range pairs {
		ra, rb := s.Find(p[0]), s.Find(p[1])
		if ra != rb {
			s.Union(ra, rb)
		}
	}

	root := s.Find(1)
	for _, x := range []int{2, 3, 4} {
		assert.Equal(t, root, s.Find(x), "element %d", x)
	}
	assert.Equal(t, 4, s.Size(4))
	assert.True(t, s.Connected(10, 11))
	assert.False(t, s.Connected(1, 10))
	assert.Len(t, s.Sets(), 2)
}

// TestSets_PartitionMatchesConnectivity checks Sets against Connected on a
// random union sequence.
func TestSets_PartitionMatchesConnectivity(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	s := dsu.New[string]()
	for i := 0; i < n; i++ {
		s.Add(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n/2; i++ {
		a := s.Find(fmt.Sprintf("v%d", r.Intn(n)))
		b := s.Find(fmt.Sprintf("v%d", r.Intn(n)))
		if a != b {
			s.Union(a, b)
		}
	}

	total := 0
	for _, group := range s.Sets() {
		total += len(group)
		require.Equal(t, len(group), s.Size(group[0]))
		for _, x := range group[1:] {
			require.True(t, s.Connected(group[0], x))
		}
	}
	assert.Equal(t, n, total)
}
