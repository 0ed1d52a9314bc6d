package pathing

import (
	"fmt"

	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
)

// predEntry records, for one node, the edge that produced its current best
// distance and the node the edge was relaxed from.
type predEntry struct {
	edge network.EdgeId
	from network.NodeId
}

// Search runs the generalized Dijkstra described in §4.4 of the routing
// design over g, in the given direction, from source to target, starting
// at the given instant. Forward combines with EdgeCost.WeightForward and
// keeps the smallest instant; Reverse walks the reverse adjacency,
// combines with EdgeCost.WeightReverse, and keeps the largest instant.
//
// Search returns ErrNoRoute if the target's distance never leaves its
// mode's infinity sentinel.
func Search(g *network.Graph, dir network.Direction, source, target string, start temporal.Instant, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilView
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	view := g.NewView(dir, cfg.filter)

	srcID, ok := view.NodeByCode(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEmptySource, source)
	}
	tgtID, ok := view.NodeByCode(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEmptySource, target)
	}

	inf := temporal.InstantMax
	if dir == network.Reverse {
		inf = temporal.InstantMin
	}
	improves := func(candidate, current temporal.Instant) bool {
		if dir == network.Forward {
			return candidate < current
		}
		return candidate > current
	}

	dist := map[network.NodeId]temporal.Instant{srcID: start}
	pred := map[network.NodeId]predEntry{}

	pq := &nodePQ{dir: dir}
	pq.push(item{node: srcID, dist: start})

	// The route lock is held for the whole run, from the first pop to the
	// final reconstruction: a consistent snapshot of topology across every
	// step, not a fresh lock per Neighbors call, so a concurrent ingest
	// write can never split this walk across two graph states.
	view.Lock()
	defer view.Unlock()

	for pq.Len() > 0 {
		cur := pq.pop()
		u, d := cur.node, cur.dist

		known, seen := dist[u]
		if !seen || d != known {
			continue // stale entry
		}
		if d == inf {
			break // remaining nodes are unreachable
		}
		if u == tgtID {
			break // target finalized; no need to keep exploring
		}

		for _, ne := range view.NeighborsLocked(u) {
			var next temporal.Instant
			var feasible bool
			if dir == network.Forward {
				next, feasible = ne.Route().Cost.WeightForward(d)
			} else {
				next, feasible = ne.Route().Cost.WeightReverse(d)
			}
			if !feasible {
				continue
			}

			curDist, ok := dist[ne.Neighbor]
			if !ok {
				curDist = inf
			}
			if !improves(next, curDist) {
				continue // equal or worse: keep the first-discovered predecessor
			}

			dist[ne.Neighbor] = next
			pred[ne.Neighbor] = predEntry{edge: ne.ID, from: u}
			pq.push(item{node: ne.Neighbor, dist: next})
		}
	}

	final, ok := dist[tgtID]
	if !ok || final == inf {
		return nil, ErrNoRoute
	}

	segments := reconstruct(g, dir, srcID, tgtID, pred, dist, start)
	return &Result{Segments: segments, Final: final}, nil
}
