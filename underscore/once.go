package underscore

import "sync"

// Once wraps a zero-argument producer so that it executes at most once.
//
// The first call to the returned function invokes producer, caches its
// result, and returns it. Every later call returns the cached result
// without invoking producer again. There is no way to reset the wrapper.
//
// The underlying once-only discipline is a [sync.Once], so the returned
// function is safe to call from concurrent goroutines: exactly one caller
// runs producer, the rest block until the result is cached.
//
//	connect := underscore.Once(openConnection)
//	c1 := connect() // opens
//	c2 := connect() // cached; c1 == c2
func Once[T any](producer func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() {
			result = producer()
		})
		return result
	}
}
