package txpool

import (
	"container/heap"

	"github.com/fuellabs/fuel-txpool-go/core/types"
)

// SortedIncludable returns every pooled entry ordered by descending
// gas price, ties broken by ascending tx id (byte-lex), refined so that an
// entry never precedes one of its in-pool parents. The result is a
// snapshot: later mutations to the pool do not affect it.
func (p *Pool) SortedIncludable() []*PoolEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()

	remaining := make(map[types.TxId]*PoolEntry, p.idx.len())
	indegree := make(map[types.TxId]int, p.idx.len())
	for id, e := range p.idx.byId {
		remaining[id] = e
		indegree[id] = e.Parents.Cardinality()
	}

	ready := &priceHeap{}
	heap.Init(ready)
	for id, deg := range indegree {
		if deg == 0 {
			heap.Push(ready, remaining[id])
		}
	}

	out := make([]*PoolEntry, 0, len(remaining))
	for ready.Len() > 0 {
		entry := heap.Pop(ready).(*PoolEntry)
		out = append(out, entry)
		for _, childId := range entry.Dependents.ToSlice() {
			child, ok := remaining[childId]
			if !ok {
				continue
			}
			indegree[childId]--
			if indegree[childId] == 0 {
				heap.Push(ready, child)
			}
		}
	}
	return out
}

// priceHeap is a container/heap.Interface over pool entries, ordered by
// descending gas price with ascending tx-id tie-break. Used by
// SortedIncludable to refine a topological layering into the spec's
// price-then-id order within each layer of ready (parents-satisfied)
// entries.
type priceHeap []*PoolEntry

func (h priceHeap) Len() int { return len(h) }

func (h priceHeap) Less(i, j int) bool {
	cmp := h[i].Tx.GasPrice.Cmp(h[j].Tx.GasPrice)
	if cmp != 0 {
		return cmp > 0 // descending price
	}
	return h[i].Id().Less(h[j].Id()) // ascending id tie-break
}

func (h priceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *priceHeap) Push(x any) { *h = append(*h, x.(*PoolEntry)) }

func (h *priceHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
