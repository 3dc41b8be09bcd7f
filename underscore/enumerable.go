package underscore

// Enumerable is the iteration surface shared by [Seq] and [Dict].
//
// Every package-level operation (Map, Filter, Reduce, …) accepts an
// Enumerable, so the same call works over an ordered sequence and an
// unordered string-keyed dictionary. Accept Enumerable in your own
// functions so that consumers can substitute either shape — or their own
// implementation — without depending on a concrete type.
//
// Each is the foundation: all full-traversal operations are expressed in
// terms of it. Find is the single short-circuiting visitation; it cannot be
// built on Each (which has no early exit) and is therefore part of the
// minimal surface.
type Enumerable[T any] interface {
	// All returns a copy of every element as a plain Go slice, in
	// visitation order: index order for a Seq, map enumeration order
	// for a Dict.
	All() []T

	// Count returns the number of elements.
	Count() int

	// Each calls fn(element) once per element, in visitation order.
	// There is no early exit; whatever fn panics with propagates to the
	// caller unmodified.
	Each(fn func(T))

	// Find returns the first element for which fn returns true, stopping
	// immediately; no further elements are visited. Returns the zero
	// value and false when no element matches or the collection is empty.
	Find(fn func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection has at least one element.
	IsNotEmpty() bool
}
