package engine

import "errors"

// ErrNilGrid indicates RunEnumerate or RunNMC was called with a nil grid.
var ErrNilGrid = errors.New("engine: grid must not be nil")

// ErrUsage indicates the CLI was invoked with the wrong number of
// arguments; callers report it on stderr alongside a usage line and
// exit 1.
var ErrUsage = errors.New("engine: usage error")
