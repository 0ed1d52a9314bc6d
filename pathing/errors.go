package pathing

import "errors"

// ErrEmptySource indicates Search was called with a source or target code
// that does not resolve to a node; the wrapped message carries the code.
var ErrEmptySource = errors.New("pathing: source node not found")

// ErrNilView indicates a nil *network.Graph was passed to Search.
var ErrNilView = errors.New("pathing: view is nil")

// ErrNoRoute indicates the search terminated with the target still at the
// mode's infinity sentinel — no feasible path exists under the given
// direction and starting instant.
var ErrNoRoute = errors.New("pathing: no route")
