package underscore

import (
	"encoding/json"
	"fmt"
)

// Seq is the ordered collection shape: a generic, immutable-by-default
// wrapper around a slice of T.
//
// Every method that transforms the sequence returns a *new* Seq, leaving
// the original unchanged. This design is goroutine-safe for reads (multiple
// goroutines may read the same sequence concurrently) and avoids accidental
// aliasing bugs in pipelines.
//
// # Creating a sequence
//
//	s := underscore.New(1, 2, 3, 4, 5)
//	s := underscore.From([]string{"a", "b", "c"})
//	s := underscore.Empty[int]()
//
// # Uniform operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type — and every operation that also
// accepts a [Dict] — live as package-level functions:
//
//	doubled := underscore.Map(s, func(n int) string {
//	    return strconv.Itoa(n * 2)
//	})
type Seq[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Seq from a variadic list of elements (copied).
func New[T any](items ...T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Seq[T]{items: dst}
}

// From creates a Seq from a slice (the slice is copied).
func From[T any](items []T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Seq[T]{items: dst}
}

// Empty creates an empty Seq of type T.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerable
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice, in index order.
func (s *Seq[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of elements in the sequence.
func (s *Seq[T]) Count() int { return len(s.items) }

// Each calls fn(element) for every element, in index order 0..Count()-1.
func (s *Seq[T]) Each(fn func(T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// Find returns the first element for which fn returns true, scanning in
// index order and stopping at the first match. Returns the zero value and
// false when no element matches.
func (s *Seq[T]) Find(fn func(T) bool) (T, bool) {
	for _, item := range s.items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// IsEmpty reports whether the sequence contains no elements.
func (s *Seq[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (s *Seq[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Seq[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no
// element satisfies the predicate.
func (s *Seq[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return s.Find(fns[0])
	}
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no
// element satisfies the predicate.
func (s *Seq[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		found, matched := zero, false
		for _, item := range s.items {
			if fns[0](item) {
				found, matched = item, true
			}
		}
		return found, matched
	}
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// FindOrFail returns the first element matching fn, or [ErrNoMatchingItems].
func (s *Seq[T]) FindOrFail(fn func(T) bool) (T, error) {
	item, ok := s.Find(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Indices returns the integer positions of the sequence (0 … Count()-1),
// the Seq counterpart of [Dict.Keys].
func (s *Seq[T]) Indices() []int {
	keys := make([]int, len(s.items))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & combining
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new sequence with elements in reversed positional order.
func (s *Seq[T]) Reverse() *Seq[T] {
	n := len(s.items)
	out := make([]T, n)
	for i, item := range s.items {
		out[n-1-i] = item
	}
	return &Seq[T]{items: out}
}

// Take returns at most n elements from the start.
// A negative n returns elements from the end (Take(-3) ≡ last 3 elements).
func (s *Seq[T]) Take(n int) *Seq[T] {
	total := len(s.items)
	if n < 0 {
		start := total + n
		if start < 0 {
			start = 0
		}
		return From(s.items[start:])
	}
	if n > total {
		n = total
	}
	return From(s.items[:n])
}

// Skip returns a new sequence skipping the first n elements.
// A negative n skips elements counted from the end.
func (s *Seq[T]) Skip(n int) *Seq[T] {
	total := len(s.items)
	if n < 0 {
		end := total + n
		if end < 0 {
			return Empty[T]()
		}
		return From(s.items[:end])
	}
	if n >= total {
		return Empty[T]()
	}
	return From(s.items[n:])
}

// Push returns a new sequence with items appended.
func (s *Seq[T]) Push(items ...T) *Seq[T] {
	out := make([]T, len(s.items)+len(items))
	copy(out, s.items)
	copy(out[len(s.items):], items)
	return &Seq[T]{items: out}
}

// Concat returns a new sequence with all elements from other appended.
func (s *Seq[T]) Concat(other *Seq[T]) *Seq[T] {
	return s.Push(other.items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the sequence to a JSON array.
func (s *Seq[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Seq[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}
