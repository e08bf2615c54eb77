package dijkstra

// itemPQ is a min-heap of Item ordered by the injected CompareFunc.
// We use the “lazy-decrease-key” approach: a shorter distance to an already
// queued node pushes a new Item, and the outdated one is skipped on pop.
type itemPQ struct {
	items []Item
	cmp   CompareFunc
}

// Len returns the number of items in the heap.
func (pq *itemPQ) Len() int { return len(pq.items) }

// Less reports whether item i must be extracted before item j.
func (pq *itemPQ) Less(i, j int) bool { return pq.cmp(pq.items[i], pq.items[j]) < 0 }

// Swap swaps two elements in the heap.
func (pq *itemPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an Item.
func (pq *itemPQ) Push(x interface{}) { pq.items = append(pq.items, x.(Item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
