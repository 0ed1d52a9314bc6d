package pathing

import (
	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/temporal"
)

// Segment is one reconstructed path step: the facility the path is at,
// the route it arrived on (none for the origin), the route it departs on
// (none for the final segment), the arrival instant, and the departure
// instant (none for the final segment).
type Segment struct {
	FacilityCode  string
	InboundRoute  string // empty if this is the origin segment
	OutboundRoute string
	Arrival       temporal.Instant
	Departure     temporal.Instant
	HasDeparture  bool
}

// Result is the outcome of a single Search call: the ordered segments from
// source to target (in forward chronological order regardless of the
// search direction used to compute them) and the final instant at the
// target.
type Result struct {
	Segments []Segment
	Final    temporal.Instant
}

// Options configures a Search beyond its required (graph, direction,
// source, target, start) arguments.
type Options struct {
	filter network.EdgeFilter
}

// Option is a functional option for Search.
type Option func(*Options)

// WithVehicleFilter restricts the search to routes matching filter.
func WithVehicleFilter(filter network.EdgeFilter) Option {
	return func(o *Options) { o.filter = filter }
}

func defaultOptions() Options {
	return Options{filter: network.AnyVehicle}
}
