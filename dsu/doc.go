// Package dsu provides a generic Disjoint-Set (Union-Find) structure that
// partitions a dynamically growing universe of node identifiers into disjoint
// equivalence classes.
//
// What & Why
//
//   - Find(x) returns the representative (root) of the set holding x and
//     compresses the traversed path so every visited node points straight at
//     the root.
//   - Union(a, b) merges two sets by size: the smaller set is attached under
//     the root of the larger one, which bounds tree height by O(log n).
//   - Together these give amortized O(α(n)) per operation, α being the inverse
//     Ackermann function.
//
// Registration
//
//	Elements are registered lazily. Find on an identifier that was never seen
//	inserts it as a singleton and returns it as its own representative; this
//	is a documented get-or-insert, not an error. Add performs the same
//	registration explicitly and reports whether x was new.
//
// Usage contract
//
//	Union expects representatives. Call Find on both sides first:
//
//	    ra, rb := s.Find(a), s.Find(b)
//	    if ra != rb {
//	        s.Union(ra, rb)
//	    }
//
//	Passing non-root members still merges the two given nodes, but the
//	recorded sizes then describe subtrees rather than whole sets and the
//	size heuristic degrades.
//
// Storage
//
//	Parent pointers and sizes live in two maps keyed by the identifier
//	(parent map[T]T, size map[T]int), so any comparable type works as a node
//	identifier: ints, strings, small structs.
//
// Concurrency
//
//	A DisjointSet is not safe for concurrent use; Find mutates on read.
//
// Complexity:
//
//   - Find, Union, Add: amortized O(α(n)) time.
//   - Space: O(n) for n registered elements.
package dsu
