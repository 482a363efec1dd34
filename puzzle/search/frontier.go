package search

import "container/heap"

// frontierItem is one heap entry: a node, its precomputed ordering key,
// and the insertion sequence number used as a stable tie-break.
type frontierItem struct {
	node  *Node
	key   int
	seq   uint64
	index int
}

// frontierHeap implements heap.Interface ordered by key, with FIFO order
// among equal keys (lower sequence number pops first).
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// frontier is the ordered collection of generated-but-not-yet-expanded
// nodes. It is a binary min-heap keyed by the strategy's ordering function
// with insertion order breaking ties, which reproduces the behavior of a
// stable sort over the whole frontier before every pop.
type frontier struct {
	items   frontierHeap
	nextSeq uint64
}

func newFrontier() *frontier {
	f := &frontier{items: make(frontierHeap, 0, 64)}
	heap.Init(&f.items)
	return f
}

// push adds a node with its ordering key.
func (f *frontier) push(n *Node, key int) {
	heap.Push(&f.items, &frontierItem{node: n, key: key, seq: f.nextSeq})
	f.nextSeq++
}

// pop removes and returns the node with the minimum key, FIFO among equals.
func (f *frontier) pop() *Node {
	return heap.Pop(&f.items).(*frontierItem).node
}

func (f *frontier) len() int {
	return len(f.items)
}
