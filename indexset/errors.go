package indexset

import "errors"

// Sentinel errors for indexset construction and misuse. Misuse of the
// preconditioned operations (PushFront/PushBack on a present index, PopFront/
// PopBack on an empty set) is a programming defect per spec.md §7 and panics
// via invariant.Check rather than returning one of these; these sentinels cover
// only the constructible-error path of New.
var (
	// ErrNegativeCapacity indicates New was called with capacity < 0.
	ErrNegativeCapacity = errors.New("indexset: capacity must be >= 0")
)
