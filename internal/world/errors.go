package world

import "errors"

// Contract errors for world construction. Callers validate before
// constructing; none of these are recovered at frame time.
var (
	// ErrBadRadius indicates a non-positive particle radius.
	ErrBadRadius = errors.New("world: particle radius must be positive")

	// ErrBadCount indicates a negative particle count.
	ErrBadCount = errors.New("world: particle count must be >= 0")

	// ErrBadExtent indicates a non-positive viewport dimension.
	ErrBadExtent = errors.New("world: viewport extent must be positive")
)
