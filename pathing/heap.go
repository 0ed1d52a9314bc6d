package pathing

import (
	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
)

// item is a (node, instant) pair stored in the priority queue.
type item struct {
	node network.NodeId
	dist temporal.Instant
}

// nodePQ is a binary heap over item, ordered by the search's direction:
// ascending instant for Forward (pop earliest arrival first), descending
// for Reverse (pop latest departure first). It uses the same lazy
// decrease-key discipline as a scalar Dijkstra heap — stale entries are
// pushed alongside fresher ones and discarded on pop by comparing against
// the authoritative dist map.
type nodePQ struct {
	items []item
	dir   network.Direction
}

func (pq *nodePQ) less(i, j int) bool {
	if pq.dir == network.Forward {
		return pq.items[i].dist < pq.items[j].dist
	}
	return pq.items[i].dist > pq.items[j].dist
}

func (pq *nodePQ) Len() int { return len(pq.items) }

func (pq *nodePQ) push(it item) {
	pq.items = append(pq.items, it)
	pq.up(len(pq.items) - 1)
}

func (pq *nodePQ) pop() item {
	n := len(pq.items)
	pq.items[0], pq.items[n-1] = pq.items[n-1], pq.items[0]
	top := pq.items[n-1]
	pq.items = pq.items[:n-1]
	if len(pq.items) > 0 {
		pq.down(0)
	}
	return top
}

func (pq *nodePQ) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.items[i], pq.items[parent] = pq.items[parent], pq.items[i]
		i = parent
	}
}

func (pq *nodePQ) down(i int) {
	n := len(pq.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && pq.less(left, smallest) {
			smallest = left
		}
		if right < n && pq.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		pq.items[i], pq.items[smallest] = pq.items[smallest], pq.items[i]
		i = smallest
	}
}
