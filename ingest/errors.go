package ingest

import "errors"

// ErrInactiveFacility names a facility record whose Active flag is false.
// IngestFacility does not return it: an inactive record is skipped and
// IngestFacility returns nil.
var ErrInactiveFacility = errors.New("ingest: facility inactive")

// ErrDroppedRecord indicates a route sub-edge was dropped rather than
// installed: its endpoints do not resolve, or its edge cost could not be
// built. These are §7's InvalidFormat/dropped-with-warning outcomes, never
// fatal to the ingest loop. Shipment records missing a required field are
// rejected by dispatch with its own ErrMissingField.
var ErrDroppedRecord = errors.New("ingest: record dropped")

// ErrBadHaltCount indicates a route record listed fewer than two halts,
// which cannot produce any sub-edge.
var ErrBadHaltCount = errors.New("ingest: route record has fewer than two halts")

// ErrBadDuration indicates a derived sub-edge duration was not strictly
// positive (rel_eta[j] <= rel_etd[i]).
var ErrBadDuration = errors.New("ingest: derived sub-edge duration is not positive")
