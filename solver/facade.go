package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/delhivery/moirai-sub000/network"
	"github.com/delhivery/moirai-sub000/pathing"
	"github.com/delhivery/moirai-sub000/temporal"
	"golang.org/x/sync/singleflight"
)

// errUnknownEndpoint and errNoRoute back the result-document "error"
// strings per §7's taxonomy (UnknownEndpoint, NoRoute); they never leave
// this package as Go errors, only as their .Error() text on Result.
var (
	errUnknownEndpoint = errors.New("unknown endpoint")
	errNoRoute         = errors.New("no route")
)

// Facade computes shipment paths over a network.Graph. A single Facade is
// safe for concurrent use by multiple dispatcher workers: each Solve call
// only ever takes read-side locks on the graph, and identical concurrent
// requests are coalesced through group.
type Facade struct {
	graph *network.Graph
	group singleflight.Group
}

// NewFacade constructs a Facade over g.
func NewFacade(g *network.Graph) *Facade {
	return &Facade{graph: g}
}

// Solve implements §4.6: resolve endpoints, compute the forward path, and,
// if the forward path meets the deadline, compute a reverse path for each
// sub-item whose deadline is later than the forward arrival and keep the one
// with the earliest final instant as the "ultimate" path, falling back to a
// full reverse path from the overall target when even that instant is later
// than the forward path's arrival.
func (f *Facade) Solve(req Request) Result {
	key := fmt.Sprintf("%s|%s|%d|%d%s", req.SourceCode, req.TargetCode, req.Origin, req.Deadline, subItemsKey(req.SubItems))
	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		return f.solve(req), nil
	})
	result := v.(Result)
	_ = err // f.solve never returns an error; failures are encoded in Result.Error
	result.ID = req.ID
	result.Waybill = req.Waybill
	return result
}

// subItemsKey folds each sub-item's target and deadline into the
// singleflight key, so two shipments sharing a lane, origin, and overall
// deadline but carrying different sub-items (and hence a different
// Ultimate computation in step 3) never coalesce into the same result.
func subItemsKey(items []SubItem) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "|%s:%d", it.TargetCode, it.Deadline)
	}
	return b.String()
}

func (f *Facade) solve(req Request) Result {
	result := Result{
		Source:   req.SourceCode,
		Target:   req.TargetCode,
		Deadline: req.Deadline,
	}

	if _, ok := f.graph.NodeIDByCode(req.SourceCode); !ok {
		result.Error = errUnknownEndpoint.Error()
		return result
	}
	if _, ok := f.graph.NodeIDByCode(req.TargetCode); !ok {
		result.Error = errUnknownEndpoint.Error()
		return result
	}
	if tgt, err := f.graph.FacilityByCode(req.TargetCode); err == nil {
		result.TargetCutoff = tgt.Cutoff
	}

	fwd, err := pathing.Search(f.graph, network.Forward, req.SourceCode, req.TargetCode, req.Origin,
		pathing.WithVehicleFilter(network.VehicleIs(network.VehicleSurface)))
	if err != nil {
		result.Error = errNoRoute.Error()
		return result
	}
	result.Earliest = fwd

	if fwd.Final.After(req.Deadline) {
		return result
	}

	var best *pathing.Result
	for _, item := range req.SubItems {
		if _, ok := f.graph.NodeIDByCode(item.TargetCode); !ok {
			continue
		}
		if !item.Deadline.After(fwd.Final) {
			continue
		}
		revSub, err := pathing.Search(f.graph, network.Reverse, item.TargetCode, req.TargetCode, item.Deadline)
		if err != nil {
			continue
		}
		if best == nil || revSub.Final.Before(best.Final) {
			best = revSub
		}
	}

	if best != nil && best.Final.After(fwd.Final) {
		full, err := pathing.Search(f.graph, network.Reverse, req.TargetCode, req.SourceCode, req.Deadline)
		if err == nil {
			result.Ultimate = full
		}
	} else {
		result.Ultimate = best
	}

	return result
}
