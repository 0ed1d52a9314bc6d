package sink

import (
	"github.com/delhivery/moirai-sub000/pathing"
	"github.com/delhivery/moirai-sub000/solver"
	"github.com/delhivery/moirai-sub000/temporal"
)

// Location is one stop along a rendered path: its facility code, arrival
// instant, and, for every stop but the last, the outbound route and
// departure instant.
type Location struct {
	Code      string  `json:"code"`
	Arrival   string  `json:"arrival"`
	Route     *string `json:"route,omitempty"`
	Departure *string `json:"departure,omitempty"`
}

// Path renders a pathing.Result: its full stop sequence plus first/last
// convenience fields duplicating the endpoints of Locations.
type Path struct {
	Locations []Location `json:"locations"`
	First     Location   `json:"first"`
	Second    *Location  `json:"second,omitempty"`
}

// Document is the result-document wire shape §6 specifies, written once
// per shipment.
type Document struct {
	ID       string `json:"_id"`
	Waybill  string `json:"waybill"`
	Earliest *Path  `json:"earliest,omitempty"`
	Ultimate *Path  `json:"ultimate,omitempty"`
	Error    string `json:"error,omitempty"`
	PDD      string `json:"pdd"`
}

func renderPath(r *pathing.Result) *Path {
	if r == nil {
		return nil
	}
	locations := make([]Location, len(r.Segments))
	for i, seg := range r.Segments {
		loc := Location{Code: seg.FacilityCode, Arrival: temporal.FormatDateTime(seg.Arrival)}
		if seg.HasDeparture {
			route := seg.OutboundRoute
			departure := temporal.FormatDateTime(seg.Departure)
			loc.Route = &route
			loc.Departure = &departure
		}
		locations[i] = loc
	}
	path := &Path{Locations: locations}
	if len(locations) > 0 {
		path.First = locations[0]
	}
	if len(locations) > 1 {
		last := locations[len(locations)-1]
		path.Second = &last
	}
	return path
}

// BuildDocument renders a solver.Result into its wire Document, computing
// the pdd field from the request's deadline.
func BuildDocument(res solver.Result) Document {
	doc := Document{
		ID:       res.ID,
		Waybill:  res.Waybill,
		Error:    res.Error,
		PDD:      temporal.FormatPDD(res.Deadline),
		Earliest: renderPath(res.Earliest),
		Ultimate: renderPath(res.Ultimate),
	}
	return doc
}
