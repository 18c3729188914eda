package subtree

import "errors"

// ErrNilGrid indicates New was called with a nil grid.
var ErrNilGrid = errors.New("subtree: grid must not be nil")
