package mst

import "github.com/tddschn/Easy-Graph/core"

// candidate is a transient frontier record: signed weight, endpoints and the
// edge's attribute payload (live graph map, cloned only on emission).
type candidate struct {
	signed float64
	weight float64
	from   core.NodeID
	to     core.NodeID
	attrs  core.Attrs
}

// frontier implements heap.Interface as a min-heap of candidates ordered by
// signed weight only. Pop order among equal keys is unspecified.
type frontier []candidate

// Len returns the number of candidates in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less compares by signed weight ascending.
func (pq frontier) Less(i, j int) bool { return pq[i].signed < pq[j].signed }

// Swap swaps elements at indices i and j.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	old[n-1] = candidate{} // drop the attrs reference
	*pq = old[:n-1]

	return c
}
