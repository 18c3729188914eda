package permute

import "errors"

// ErrInvalidDim indicates New was called with a non-positive dimension
// size.
var ErrInvalidDim = errors.New("permute: dimension sizes must be >= 1")
