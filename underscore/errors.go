package underscore

import "errors"

// Sentinel errors returned by Seq, Dict and mixin operations.
var (
	// ErrNoMatchingItems is returned by FindOrFail when no element
	// satisfies the predicate.
	ErrNoMatchingItems = errors.New("underscore: no items match the given condition")

	// ErrMixinNotFound is returned when an unregistered mixin name is
	// called.
	ErrMixinNotFound = errors.New("underscore: mixin not found")
)
