package network

import "github.com/delhivery/moirai-sub000/temporal"

// VehicleKind enumerates the physical carriers a Route runs on.
type VehicleKind int

const (
	VehicleSurface VehicleKind = iota
	VehicleAir
)

// String renders a VehicleKind for logging and result-document fields.
func (v VehicleKind) String() string {
	if v == VehicleAir {
		return "air"
	}
	return "surface"
}

// MovementKind enumerates the movement categories a Route or a Facility
// processing latency can be keyed on.
type MovementKind int

const (
	MovementCarting MovementKind = iota
	MovementLinehaul
)

func (m MovementKind) String() string {
	if m == MovementCarting {
		return "carting"
	}
	return "linehaul"
}

// ProcessKind enumerates the processing stages a Facility's latency table is
// keyed on: outbound latency applies when a shipment departs a facility,
// inbound when it arrives, custody when it changes hands without leaving.
type ProcessKind int

const (
	ProcessInbound ProcessKind = iota
	ProcessOutbound
	ProcessCustody
)

// LatencyKey indexes a Facility's processing-latency table.
type LatencyKey struct {
	Movement MovementKind
	Process  ProcessKind
}

// NodeId is a stable, opaque handle to a Facility within a Graph.
type NodeId uint64

// EdgeId is a stable, opaque handle to a Route within a Graph.
type EdgeId uint64

// Facility is a node in the routing graph: an identifier, a human name, a
// center-arrival cutoff time-of-day, and a movement/process-keyed table of
// processing latencies (defaulting to zero for any absent key).
type Facility struct {
	Code       string
	Name       string
	PropertyID string
	Cutoff     temporal.TimeOfDay
	Latencies  map[LatencyKey]temporal.Duration
}

// Latency returns the processing latency for (movement, process), or zero
// if the facility carries no entry for that key.
func (f *Facility) Latency(movement MovementKind, process ProcessKind) temporal.Duration {
	if f.Latencies == nil {
		return 0
	}
	return f.Latencies[LatencyKey{Movement: movement, Process: process}]
}

// Route is an edge in the routing graph: an identifier, a vehicle/movement
// kind pair, the source and target facility codes, and the edge cost
// attributes that produce its weight closure.
type Route struct {
	Code       string
	Name       string
	Vehicle    VehicleKind
	Movement   MovementKind
	SourceCode string
	TargetCode string
	Cost       temporal.EdgeCost
}

// node is the internal storage record for a Facility, carrying its stable
// handle alongside the payload.
type node struct {
	id   NodeId
	data Facility
}

// edge is the internal storage record for a Route.
type edge struct {
	id     EdgeId
	source NodeId
	target NodeId
	data   Route
}
