package dsu_test

import (
	"testing"

	"github.com/tddschn/Easy-Graph/dsu"
)

// BenchmarkUnionFind merges 10k integers pairwise and then resolves them all.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	for i := 0; i < b.N; i++ {
		s := dsu.New[int]()
		for j := 1; j < n; j++ {
			ra, rb := s.Find(j-1), s.Find(j)
			if ra != rb {
				s.Union(ra, rb)
			}
		}
		for j := 0; j < n; j++ {
			_ = s.Find(j)
		}
	}
}
