package hrpgraph

import "errors"

// Sentinel errors for hrpgraph construction.
var (
	// ErrEmptyDims indicates New was called with no dimensions.
	ErrEmptyDims = errors.New("hrpgraph: at least one dimension is required")

	// ErrInvalidDim indicates a dimension size was less than 1.
	ErrInvalidDim = errors.New("hrpgraph: dimension sizes must be >= 1")
)
