package network

import "errors"

// Sentinel errors for network graph operations.
var (
	// ErrEmptyCode indicates a facility or route code was the empty string.
	ErrEmptyCode = errors.New("network: code is empty")

	// ErrFacilityNotFound indicates an operation referenced a facility code
	// absent from the graph's by-code index.
	ErrFacilityNotFound = errors.New("network: facility not found")

	// ErrRouteNotFound indicates an operation referenced a route code absent
	// from the graph's by-code index.
	ErrRouteNotFound = errors.New("network: route not found")

	// ErrDuplicateFacility names a facility code that already exists. Graph
	// does not return it: UpsertFacility overwrites an existing facility's
	// attributes in place.
	ErrDuplicateFacility = errors.New("network: facility code already exists")

	// ErrDuplicateRoute names a route code that already exists. Graph does
	// not return it: AddRoute overwrites an existing route in place.
	ErrDuplicateRoute = errors.New("network: route code already exists")

	// ErrUnresolvedEndpoint indicates a route's source or target code does
	// not resolve to an existing facility at insertion time.
	ErrUnresolvedEndpoint = errors.New("network: route endpoint does not resolve to a facility")
)
