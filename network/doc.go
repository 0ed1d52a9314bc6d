// Package network defines the facility/route graph the routing engine
// operates over: VehicleKind/MovementKind/ProcessKind enumerations, Facility
// and Route domain types, and Graph, a thread-safe directed multigraph
// indexed by facility/edge codes rather than bare integer handles.
//
// Graph separates its vertex-set lock (muFacility) from its edge/adjacency
// lock (muRoute) so that concurrent readers (the solving workers) never
// block on each other, and so that a single writer (the ingest updater)
// never blocks a reader mid-traversal for longer than one edge insertion.
package network
