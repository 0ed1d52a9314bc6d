// Package solver implements the solver facade §4.6 of the routing design
// describes: given a shipment request, it computes the earliest-arrival
// forward path, the latest-feasible reverse ("ultimate") path for the
// shipment and its sub-items, and assembles the response document.
//
// Facade.Solve coalesces identical concurrent requests (same source,
// target, origin arrival, deadline, and sub-item targets and deadlines)
// through a singleflight.Group, so a duplicate request that arrives while
// an identical one is still being solved shares its result instead of
// running the same Dijkstra searches again.
package solver
