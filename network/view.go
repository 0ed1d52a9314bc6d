package network

// Direction selects which adjacency list a View walks: Forward follows
// fwd_adj (edges as installed), Reverse follows rev_adj with the edge's
// source/target roles swapped for traversal purposes. Views never copy the
// underlying Graph — per-query filtering and direction selection are
// applied lazily at iteration time, so concurrent solves never race on a
// mutated copy and never pay the cost of cloning the graph.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// EdgeFilter decides whether a Route participates in a View's traversal.
// A nil filter admits every route.
type EdgeFilter func(Route) bool

// AnyVehicle admits every route regardless of vehicle kind.
func AnyVehicle(Route) bool { return true }

// VehicleIs returns a filter admitting only routes of the given kind.
func VehicleIs(kind VehicleKind) EdgeFilter {
	return func(r Route) bool { return r.Vehicle == kind }
}

// View is a read-only, direction- and filter-scoped adjacency iterator over
// a Graph. Neighbors is self-contained (locks for that one lookup) for
// isolated queries; a caller walking many steps against one logical
// snapshot — a full Search run — must bracket the whole walk with
// Lock/Unlock and use NeighborsLocked, so a concurrent ingest write can
// never be observed as a part-old, part-new graph partway through.
type View struct {
	g      *Graph
	dir    Direction
	filter EdgeFilter
}

// NewView constructs a View over g for the given direction, admitting only
// routes for which filter returns true (AnyVehicle if filter is nil).
func (g *Graph) NewView(dir Direction, filter EdgeFilter) *View {
	if filter == nil {
		filter = AnyVehicle
	}
	return &View{g: g, dir: dir, filter: filter}
}

// Filter returns a forward-direction View admitting only routes of the
// given vehicle kind, without copying the graph.
func (g *Graph) Filter(kind VehicleKind) *View {
	return g.NewView(Forward, VehicleIs(kind))
}

// Reversed returns a reverse-direction View admitting every route,
// without copying the graph.
func (g *Graph) Reversed() *View {
	return g.NewView(Reverse, AnyVehicle)
}

// NeighborEdge pairs an outgoing edge with the neighbor NodeId a traversal
// steps to — computed once here so callers never have to re-derive
// "the other endpoint" under the view's direction convention.
type NeighborEdge struct {
	ID       EdgeId
	Neighbor NodeId
	route    Route
}

// Route returns the Route payload carried by this edge.
func (n NeighborEdge) Route() Route { return n.route }

// Neighbors returns the edges the view admits as outgoing from v: for
// Forward this is g.fwdAdj[v] (stepping from source to target); for
// Reverse this is g.revAdj[v] (stepping from target to source, i.e. the
// edge is walked backwards). Neighbors takes and releases the route lock
// for this one call only, appropriate for an isolated, single-step lookup;
// a multi-step traversal that must see one consistent graph state across
// all of its steps (a full Search run) should bracket the whole traversal
// with Lock/Unlock and call NeighborsLocked instead.
func (v *View) Neighbors(id NodeId) []NeighborEdge {
	v.g.muRoute.RLock()
	defer v.g.muRoute.RUnlock()
	return v.NeighborsLocked(id)
}

// Lock and Unlock acquire and release the view's underlying route lock for
// the caller, so a sequence of NeighborsLocked calls observes one snapshot
// of the graph's topology instead of a fresh lock per step.
func (v *View) Lock()   { v.g.RLockRoutes() }
func (v *View) Unlock() { v.g.RUnlockRoutes() }

// NeighborsLocked is Neighbors without acquiring the route lock itself;
// the caller must already hold it, via Lock or Graph.RLockRoutes.
func (v *View) NeighborsLocked(id NodeId) []NeighborEdge {
	var raw []*edge
	if v.dir == Forward {
		raw = v.g.outgoing(id)
	} else {
		raw = v.g.incoming(id)
	}

	out := make([]NeighborEdge, 0, len(raw))
	for _, e := range raw {
		if !v.filter(e.data) {
			continue
		}
		n := e.target
		if v.dir == Reverse {
			n = e.source
		}
		out = append(out, NeighborEdge{ID: e.id, Neighbor: n, route: e.data})
	}
	return out
}

// CodeOf exposes the facility code for a NodeId to consumers outside this
// package (the path reconstructor).
func (v *View) CodeOf(id NodeId) string { return v.g.codeOf(id) }

// NodeByCode resolves a facility code to a NodeId through the view's graph.
func (v *View) NodeByCode(code string) (NodeId, bool) { return v.g.NodeIDByCode(code) }
