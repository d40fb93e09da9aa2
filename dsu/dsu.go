package dsu

// DisjointSet partitions registered elements of type T into disjoint sets.
//
// parent[x] == x marks a root. size[r] is only meaningful for roots and holds
// the number of elements in r's set.
type DisjointSet[T comparable] struct {
	parent map[T]T
	size   map[T]int
}

// New returns a DisjointSet with every element of elems registered as its own
// singleton set. Duplicates in elems are ignored.
// Complexity: O(len(elems)).
func New[T comparable](elems ...T) *DisjointSet[T] {
	s := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		size:   make(map[T]int, len(elems)),
	}
	for _, x := range elems {
		s.Add(x)
	}

	return s
}

// Add registers x as a singleton set if it is not yet known.
// It reports whether x was newly registered.
// Complexity: O(1).
func (s *DisjointSet[T]) Add(x T) bool {
	if _, ok := s.parent[x]; ok {
		return false
	}
	s.parent[x] = x
	s.size[x] = 1

	return true
}

// Contains reports whether x has been registered, without registering it.
func (s *DisjointSet[T]) Contains(x T) bool {
	_, ok := s.parent[x]

	return ok
}

// Len returns the number of registered elements.
func (s *DisjointSet[T]) Len() int { return len(s.parent) }

// Find returns the representative of the set containing x.
//
// If x has never been seen it is registered as a new singleton and returned
// as its own representative. Otherwise the parent chain is walked up to the
// root and every node on that chain is re-pointed directly at the root.
//
// Steps:
//  1. Get-or-insert x; a fresh x is its own root.
//  2. Walk parent pointers until parent[r] == r.
//  3. Walk the chain a second time, setting parent[n] = r for every node.
//
// Complexity: amortized O(α(n)).
func (s *DisjointSet[T]) Find(x T) T {
	// 1. Lazy registration.
	if s.Add(x) {
		return x
	}

	// 2. Locate the root.
	root := x
	for p := s.parent[root]; p != root; p = s.parent[root] {
		root = p
	}

	// 3. Full path compression.
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets rooted at a and b using union by size.
//
// The root with the smaller recorded size is attached under the other; on a
// tie a is attached under b. The surviving root's size becomes the sum of
// both. Union(x, x) is a no-op.
//
// a and b should be representatives obtained from Find. Unregistered
// arguments are registered first.
// Complexity: O(1).
func (s *DisjointSet[T]) Union(a, b T) {
	if a == b {
		return
	}
	s.Add(a)
	s.Add(b)

	// small goes under big
	big, small := b, a
	if s.size[a] > s.size[b] {
		big, small = a, b
	}
	s.parent[small] = big
	s.size[big] += s.size[small]
}

// Connected reports whether a and b belong to the same set.
// Both are registered if unseen.
func (s *DisjointSet[T]) Connected(a, b T) bool {
	return s.Find(a) == s.Find(b)
}

// Size returns the number of elements in the set containing x.
// x is registered if unseen.
func (s *DisjointSet[T]) Size(x T) int {
	return s.size[s.Find(x)]
}

// Sets returns the current partition as a slice of groups. Group order and
// element order within a group follow map iteration and are unspecified.
// Complexity: O(n·α(n)).
func (s *DisjointSet[T]) Sets() [][]T {
	byRoot := make(map[T][]T)
	for x := range s.parent {
		r := s.Find(x)
		byRoot[r] = append(byRoot[r], x)
	}

	out := make([][]T, 0, len(byRoot))
	for _, group := range byRoot {
		out = append(out, group)
	}

	return out
}
