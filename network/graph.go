package network

import (
	"fmt"
	"sort"
	"sync"
)

// GraphOption configures a Graph before first use.
type GraphOption func(*Graph)

// WithCapacityHint preallocates internal maps for an expected node/edge
// count, avoiding rehashing during a large initial ingest batch.
func WithCapacityHint(nodes, edges int) GraphOption {
	return func(g *Graph) {
		g.byCodeV = make(map[string]NodeId, nodes)
		g.nodes = make(map[NodeId]*node, nodes)
		g.byCodeE = make(map[string]EdgeId, edges)
		g.edges = make(map[EdgeId]*edge, edges)
	}
}

// Graph is a directed multigraph of Facilities and Routes. muFacility
// guards the node catalog and its code index; muRoute guards the edge
// catalog, its code index, and both adjacency lists. The two locks are
// independent: a reader walking edges never contends with a writer
// inserting a facility, and vice versa, per the single-writer/many-reader
// discipline the live updater and solver workers share.
type Graph struct {
	muFacility sync.RWMutex
	muRoute    sync.RWMutex

	nextNodeID uint64
	nextEdgeID uint64

	nodes   map[NodeId]*node
	byCodeV map[string]NodeId

	edges   map[EdgeId]*edge
	byCodeE map[string]EdgeId

	// fwdAdj[v] and revAdj[v] are insertion-ordered edge-id lists incident
	// to v in the forward and reverse directions respectively.
	fwdAdj map[NodeId][]EdgeId
	revAdj map[NodeId][]EdgeId
}

// NewGraph constructs an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:   make(map[NodeId]*node),
		byCodeV: make(map[string]NodeId),
		edges:   make(map[EdgeId]*edge),
		byCodeE: make(map[string]EdgeId),
		fwdAdj:  make(map[NodeId][]EdgeId),
		revAdj:  make(map[NodeId][]EdgeId),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// UpsertFacility inserts a new Facility or, if code already exists,
// overwrites its attributes in place (the idempotent "insert-or-get" the
// live updater performs per record). It returns the facility's NodeId.
func (g *Graph) UpsertFacility(f Facility) (NodeId, error) {
	if f.Code == "" {
		return 0, ErrEmptyCode
	}
	g.muFacility.Lock()
	defer g.muFacility.Unlock()

	if id, ok := g.byCodeV[f.Code]; ok {
		g.nodes[id].data = f
		return id, nil
	}
	g.nextNodeID++
	id := NodeId(g.nextNodeID)
	g.nodes[id] = &node{id: id, data: f}
	g.byCodeV[f.Code] = id
	return id, nil
}

// FacilityByCode returns the Facility stored for code.
func (g *Graph) FacilityByCode(code string) (Facility, error) {
	g.muFacility.RLock()
	defer g.muFacility.RUnlock()
	id, ok := g.byCodeV[code]
	if !ok {
		return Facility{}, ErrFacilityNotFound
	}
	return g.nodes[id].data, nil
}

// nodeID resolves a facility code to its NodeId without copying the
// Facility payload; callers must hold at least muFacility.RLock.
func (g *Graph) nodeID(code string) (NodeId, bool) {
	id, ok := g.byCodeV[code]
	return id, ok
}

// AddRoute installs a Route as a directed edge from r.SourceCode to
// r.TargetCode. Both endpoints must already resolve to facilities
// (ErrUnresolvedEndpoint otherwise) — the updater is responsible for
// dropping routes that arrive before their endpoints, per the no-buffering
// ingestion rule.
func (g *Graph) AddRoute(r Route) (EdgeId, error) {
	if r.Code == "" {
		return 0, ErrEmptyCode
	}

	g.muFacility.RLock()
	srcID, srcOK := g.nodeID(r.SourceCode)
	tgtID, tgtOK := g.nodeID(r.TargetCode)
	g.muFacility.RUnlock()
	if !srcOK {
		return 0, fmt.Errorf("%w: source %q", ErrUnresolvedEndpoint, r.SourceCode)
	}
	if !tgtOK {
		return 0, fmt.Errorf("%w: target %q", ErrUnresolvedEndpoint, r.TargetCode)
	}

	g.muRoute.Lock()
	defer g.muRoute.Unlock()

	if id, ok := g.byCodeE[r.Code]; ok {
		e := g.edges[id]
		e.data = r
		e.source = srcID
		e.target = tgtID
		return id, nil
	}

	g.nextEdgeID++
	id := EdgeId(g.nextEdgeID)
	e := &edge{id: id, source: srcID, target: tgtID, data: r}
	g.edges[id] = e
	g.byCodeE[r.Code] = id
	g.fwdAdj[srcID] = append(g.fwdAdj[srcID], id)
	g.revAdj[tgtID] = append(g.revAdj[tgtID], id)

	return id, nil
}

// RouteByCode returns the Route stored for code.
func (g *Graph) RouteByCode(code string) (Route, error) {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	id, ok := g.byCodeE[code]
	if !ok {
		return Route{}, ErrRouteNotFound
	}
	return g.edges[id].data, nil
}

// NodeIDByCode resolves a facility code under the appropriate lock; it is
// the entry point the solver facade uses to turn a shipment's source/target
// code into a graph handle.
func (g *Graph) NodeIDByCode(code string) (NodeId, bool) {
	g.muFacility.RLock()
	defer g.muFacility.RUnlock()
	return g.nodeID(code)
}

// RouteByID returns the Route stored under a given EdgeId, used by the path
// reconstructor to recover a segment's route details from the predecessor
// edge handle recorded during the search.
func (g *Graph) RouteByID(id EdgeId) (Route, bool) {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	return g.routeByIDLocked(id)
}

// RLockRoutes and RUnlockRoutes expose the route catalog's read lock to
// callers that need one consistent snapshot of topology spanning many
// accessor calls — a full Search run — instead of a fresh lock per
// Neighbors/RouteByID lookup, which would let a concurrent ingest write
// land mid-query and split the walk across two graph states.
func (g *Graph) RLockRoutes()   { g.muRoute.RLock() }
func (g *Graph) RUnlockRoutes() { g.muRoute.RUnlock() }

// RouteByIDLocked is RouteByID without acquiring muRoute itself; the
// caller must already hold it via RLockRoutes.
func (g *Graph) RouteByIDLocked(id EdgeId) (Route, bool) {
	return g.routeByIDLocked(id)
}

func (g *Graph) routeByIDLocked(id EdgeId) (Route, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Route{}, false
	}
	return e.data, true
}

// FacilityCodeOf exposes codeOf to callers outside the package.
func (g *Graph) FacilityCodeOf(id NodeId) string { return g.codeOf(id) }

// FacilityCount returns the number of distinct facilities in the graph.
func (g *Graph) FacilityCount() int {
	g.muFacility.RLock()
	defer g.muFacility.RUnlock()
	return len(g.nodes)
}

// RouteCount returns the number of distinct routes in the graph.
func (g *Graph) RouteCount() int {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	return len(g.edges)
}

// Routes returns all routes sorted by Code ascending, a deterministic order
// used by tests and diagnostics.
func (g *Graph) Routes() []Route {
	g.muRoute.RLock()
	defer g.muRoute.RUnlock()
	out := make([]Route, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.data)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// outgoing returns the edges leaving v, as internal edge records, under a
// caller-held muRoute.RLock. It is the shared primitive both the unfiltered
// and filtered adjacency walks in view.go build on.
func (g *Graph) outgoing(v NodeId) []*edge {
	ids := g.fwdAdj[v]
	out := make([]*edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}
	return out
}

// incoming returns the edges arriving at v, mirroring outgoing for the
// reverse adjacency list.
func (g *Graph) incoming(v NodeId) []*edge {
	ids := g.revAdj[v]
	out := make([]*edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}
	return out
}

// codeOf returns the facility code for a NodeId, used when assembling path
// segments back into their human-readable form.
func (g *Graph) codeOf(id NodeId) string {
	g.muFacility.RLock()
	defer g.muFacility.RUnlock()
	if n, ok := g.nodes[id]; ok {
		return n.data.Code
	}
	return ""
}
