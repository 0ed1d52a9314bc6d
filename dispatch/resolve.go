package dispatch

import (
	"fmt"

	"github.com/delhivery/moirai-sub000/ingest"
	"github.com/delhivery/moirai-sub000/solver"
	"github.com/delhivery/moirai-sub000/temporal"
)

// Resolve converts a wire ShipmentRecord into a solver.Request per §6. A
// record missing id, location, destination, or time is rejected with
// ErrMissingField. A null or missing ipdd_destination means no deadline
// (temporal.InstantMax); each sub-item shares the parent shipment's
// destination but may carry its own, tighter deadline.
func Resolve(rec ingest.ShipmentRecord) (solver.Request, error) {
	if rec.ID == "" || rec.Location == "" || rec.Destination == "" || rec.Time == "" {
		return solver.Request{}, fmt.Errorf("%w: id=%q location=%q destination=%q time=%q",
			ErrMissingField, rec.ID, rec.Location, rec.Destination, rec.Time)
	}

	origin, err := temporal.ParseDateTime(rec.Time)
	if err != nil {
		return solver.Request{}, fmt.Errorf("%w: time %q: %v", ErrMalformedTime, rec.Time, err)
	}

	deadline, err := parseDeadline(rec.IPDDDestination)
	if err != nil {
		return solver.Request{}, err
	}

	req := solver.Request{
		ID:         rec.ID,
		Waybill:    rec.ID,
		SourceCode: rec.Location,
		TargetCode: rec.Destination,
		Origin:     origin,
		Deadline:   deadline,
	}

	for _, item := range rec.Items {
		itemDeadline, err := parseDeadline(item.IPDDDestination)
		if err != nil {
			continue
		}
		req.SubItems = append(req.SubItems, solver.SubItem{
			ID:                item.ID,
			ConsignmentNumber: item.ConsignmentNumber,
			TargetCode:        rec.Destination,
			Deadline:          itemDeadline,
		})
	}

	return req, nil
}

func parseDeadline(raw *string) (temporal.Instant, error) {
	if raw == nil || *raw == "" {
		return temporal.InstantMax, nil
	}
	t, err := temporal.ParseDateTime(*raw)
	if err != nil {
		return 0, fmt.Errorf("%w: ipdd_destination %q: %v", ErrMalformedTime, *raw, err)
	}
	return t, nil
}
