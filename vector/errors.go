package vector

import "errors"

// Sentinel errors returned by Vector operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// element satisfies the predicate.
	ErrNoMatchingItems = errors.New("vector: no elements match the given condition")
)
