// Package pathing implements a generalized Dijkstra shortest-path search
// over a network.Graph whose distances are Instant values combined through
// a per-edge weight closure rather than scalar addition.
//
// Two traversal modes share one engine: Forward searches for the earliest
// arrival at a target given a starting instant, comparing distances with
// "<" and combining with EdgeCost.WeightForward; Reverse searches for the
// latest feasible departure given a deadline, comparing with ">" and
// combining with EdgeCost.WeightReverse over the graph's reverse
// adjacency. Mode selection is a single Direction tag threaded through the
// comparator, initial value, and sentinel "infinity" — there is no
// duplicated search loop.
package pathing
