package ingest

// FacilityRecord is the wire shape of a facility record (§6). Inactive
// facilities are ignored by the updater; a missing CenterArrivalCutoff
// defaults to "09:00" and a missing OutboundProcessingTime defaults to
// "00:00" before parsing.
type FacilityRecord struct {
	FacilityCode string `json:"facility_code"`
	Name         string `json:"name"`
	PropertyID   string `json:"property_id"`
	Active       bool   `json:"active"`
	Attributes   struct {
		CenterArrivalCutoff    string `json:"CenterArrivalCutoff"`
		OutboundProcessingTime string `json:"OutboundProcessingTime"`
	} `json:"facility_attributes"`
}

// HaltRecord is one stop within a composite route descriptor.
type HaltRecord struct {
	CenterCode string `json:"center_code"`
	RelETASec  int64  `json:"rel_eta_ss"`
	RelETDSec  int64  `json:"rel_etd_ss"`
}

// RouteRecord is the wire shape of a composite route descriptor (§6),
// expanded by ExpandHalts into N·(N−1)/2 network.Route values.
type RouteRecord struct {
	RouteScheduleUUID string       `json:"route_schedule_uuid"`
	Name              string       `json:"name"`
	RouteType         string       `json:"route_type"`
	ReportingTimeSec  int64        `json:"reporting_time_ss"`
	DaysOfWeek        []int        `json:"days_of_week"`
	HaltCenters       []HaltRecord `json:"halt_centers"`
}

// ShipmentSubItem is one line item within a ShipmentRecord.
type ShipmentSubItem struct {
	ID                string  `json:"id"`
	ConsignmentNumber string  `json:"cn"`
	IPDDDestination   *string `json:"ipdd_destination"`
}

// ShipmentRecord is the wire shape of a shipment record (§6). A record
// missing ID, Location, Destination, or Time is dropped with a logged
// warning; a nil or missing IPDDDestination means "no deadline"
// (temporal.InstantMax).
type ShipmentRecord struct {
	ID              string            `json:"id"`
	Location        string            `json:"location"`
	Destination     string            `json:"destination"`
	Time            string            `json:"time"`
	IPDDDestination *string           `json:"ipdd_destination"`
	Items           []ShipmentSubItem `json:"item"`
}
