package pathing

import (
	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
)

// reconstruct walks the predecessor map built during Search and assembles
// a chronologically-ordered (real source to real target) segment list.
// It runs under the same route-lock hold Search takes for the whole run
// (view.Lock in search.go), so it reads routes via RouteByIDLocked rather
// than RouteByID, which would try to re-acquire the lock recursively.
//
// The predecessor map's "other" pointer means different things depending
// on the search direction: in Forward mode it is the real predecessor of
// the relaxed node (Neighbors walks source→target, so the node being
// processed IS the predecessor), so the natural walk from the real target
// backward to the real source follows the map directly, and the resulting
// node order must be reversed. In Reverse mode Neighbors walks the reverse
// adjacency (target→source), so the node being processed is the real
// *successor* of the relaxed node — the natural walk starts at the real
// source and follows the map forward to the real target, already in
// chronological order.
func reconstruct(g *network.Graph, dir network.Direction, searchSrc, searchTgt network.NodeId, pred map[network.NodeId]predEntry, dist map[network.NodeId]temporal.Instant, start temporal.Instant) []Segment {
	var realSource, realTarget network.NodeId
	if dir == network.Forward {
		realSource, realTarget = searchSrc, searchTgt
	} else {
		realSource, realTarget = searchTgt, searchSrc
	}

	var nodes []network.NodeId
	var edges []network.EdgeId

	if dir == network.Forward {
		cur := realTarget
		nodesRev := []network.NodeId{cur}
		var edgesRev []network.EdgeId
		for cur != realSource {
			pe, ok := pred[cur]
			if !ok {
				break
			}
			edgesRev = append(edgesRev, pe.edge)
			cur = pe.from
			nodesRev = append(nodesRev, cur)
		}
		nodes = reverseNodes(nodesRev)
		edges = reverseEdges(edgesRev)
	} else {
		cur := realSource
		nodes = []network.NodeId{cur}
		for cur != realTarget {
			pe, ok := pred[cur]
			if !ok {
				break
			}
			edges = append(edges, pe.edge)
			cur = pe.from
			nodes = append(nodes, cur)
		}
	}

	segments := make([]Segment, 0, len(nodes))
	for i, nodeID := range nodes {
		seg := Segment{
			FacilityCode: g.FacilityCodeOf(nodeID),
			Arrival:      valueOr(dist, nodeID, start),
		}
		if i > 0 {
			if r, ok := g.RouteByIDLocked(edges[i-1]); ok {
				seg.InboundRoute = r.Code
			}
		}
		if i < len(edges) {
			r, ok := g.RouteByIDLocked(edges[i])
			if ok {
				seg.OutboundRoute = r.Code
				seg.HasDeparture = true
				if r.Cost.Transient {
					seg.Departure = seg.Arrival
				} else {
					seg.Departure = temporal.NextDeparture(seg.Arrival, r.Cost.Departure)
				}
			}
		}
		segments = append(segments, seg)
	}
	return segments
}

func valueOr(dist map[network.NodeId]temporal.Instant, id network.NodeId, fallback temporal.Instant) temporal.Instant {
	if v, ok := dist[id]; ok {
		return v
	}
	return fallback
}

func reverseNodes(in []network.NodeId) []network.NodeId {
	out := make([]network.NodeId, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func reverseEdges(in []network.EdgeId) []network.EdgeId {
	out := make([]network.EdgeId, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
