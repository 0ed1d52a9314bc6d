package temporal

import "errors"

// ErrInvalidFormat indicates a parse function was given a string that does
// not match its expected layout. The offending string is attached via %w
// wrapping at the call site, not stored on the sentinel itself.
var ErrInvalidFormat = errors.New("temporal: invalid format")

// ErrEmptyWorkingDays indicates an EdgeCost was constructed with a
// departure-day list that sets no bits at all, which would make the edge
// permanently unreachable — a condition the constructor rejects outright
// rather than silently producing a dead edge.
var ErrEmptyWorkingDays = errors.New("temporal: working-day mask is empty")

// ErrNonPositiveDuration indicates a non-transient EdgeCost was constructed
// with a negative loading, duration, or unloading value.
var ErrNonPositiveDuration = errors.New("temporal: negative duration component")
