package solver

import (
	"github.com/delhivery/moirai-sub000/pathing"
	"github.com/delhivery/moirai-sub000/temporal"
)

// SubItem is one line item of a shipment that may have its own, tighter
// delivery deadline and destination than the parent shipment.
type SubItem struct {
	ID                string
	ConsignmentNumber string
	TargetCode        string
	Deadline          temporal.Instant
}

// Request is a resolved shipment request ready for Facade.Solve: a shipment
// identifier, waybill, source/target facility codes, the instant the
// shipment arrived at its source, an overall promised-delivery deadline,
// and any sub-items.
type Request struct {
	ID         string
	Waybill    string
	SourceCode string
	TargetCode string
	Origin     temporal.Instant
	Deadline   temporal.Instant
	SubItems   []SubItem
}

// Result is the outcome of Facade.Solve: the forward ("earliest") path, the
// reverse ("ultimate") path if one was computed, and an error string if the
// request could not be solved at all (unknown endpoint or no route).
type Result struct {
	ID           string
	Waybill      string
	Source       string
	Target       string
	Earliest     *pathing.Result
	Ultimate     *pathing.Result
	Deadline     temporal.Instant
	Error        string
	TargetCutoff temporal.TimeOfDay
}
