package dispatch

import "errors"

// ErrMissingField indicates a shipment record was dropped because one of
// its required fields (id, location, destination, time) was empty.
var ErrMissingField = errors.New("dispatch: shipment record missing required field")

// ErrMalformedTime indicates a shipment record's time or ipdd_destination
// field could not be parsed as "YYYY-MM-DD HH:MM".
var ErrMalformedTime = errors.New("dispatch: shipment record has malformed timestamp")
