package underscore

import (
	"encoding/json"
	"fmt"
)

// Dict is the unordered collection shape: a wrapper around a string-keyed
// map of T. Like [Seq] it is immutable-by-default; transforming methods
// return a new Dict and never touch the receiver.
//
// Visitation order is Go's map enumeration order. It is deliberately
// unspecified: code must not rely on any particular ordering of Each,
// Find, Keys, or Values over a Dict.
type Dict[T any] struct {
	entries map[string]T
}

// FromMap creates a Dict from a map (the map is copied).
func FromMap[T any](entries map[string]T) *Dict[T] {
	dst := make(map[string]T, len(entries))
	for k, v := range entries {
		dst[k] = v
	}
	return &Dict[T]{entries: dst}
}

// EmptyDict creates an empty Dict of type T.
func EmptyDict[T any]() *Dict[T] {
	return &Dict[T]{entries: map[string]T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerable
// ─────────────────────────────────────────────────────────────────────────────

// All returns the values as a plain slice, in enumeration order.
func (d *Dict[T]) All() []T {
	out := make([]T, 0, len(d.entries))
	for _, v := range d.entries {
		out = append(out, v)
	}
	return out
}

// Count returns the number of entries in the dictionary.
func (d *Dict[T]) Count() int { return len(d.entries) }

// Each calls fn(value) once per entry, in enumeration order.
func (d *Dict[T]) Each(fn func(T)) {
	for _, v := range d.entries {
		fn(v)
	}
}

// Find returns the first value (in enumeration order) for which fn returns
// true, stopping at the first match. Returns the zero value and false when
// no value matches.
func (d *Dict[T]) Find(fn func(T) bool) (T, bool) {
	for _, v := range d.entries {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IsEmpty reports whether the dictionary contains no entries.
func (d *Dict[T]) IsEmpty() bool { return len(d.entries) == 0 }

// IsNotEmpty reports whether the dictionary has at least one entry.
func (d *Dict[T]) IsNotEmpty() bool { return len(d.entries) > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Keyed access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key together with a presence flag.
func (d *Dict[T]) Get(key string) (T, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Has reports whether key is present in the dictionary.
func (d *Dict[T]) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Keys returns every key as a sequence, in enumeration order.
func (d *Dict[T]) Keys() *Seq[string] {
	out := make([]string, 0, len(d.entries))
	for k := range d.entries {
		out = append(out, k)
	}
	return &Seq[string]{items: out}
}

// Values returns every value as a sequence, in enumeration order.
func (d *Dict[T]) Values() *Seq[T] {
	return &Seq[T]{items: d.All()}
}

// EachPair calls fn(key, value) once per entry, in enumeration order.
func (d *Dict[T]) EachPair(fn func(string, T)) {
	for k, v := range d.entries {
		fn(k, v)
	}
}

// Merge returns a new Dict containing the entries of d overlaid with the
// entries of other; on key collision other wins.
func (d *Dict[T]) Merge(other *Dict[T]) *Dict[T] {
	out := make(map[string]T, len(d.entries)+len(other.entries))
	for k, v := range d.entries {
		out[k] = v
	}
	for k, v := range other.entries {
		out[k] = v
	}
	return &Dict[T]{entries: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the dictionary to a JSON object.
func (d *Dict[T]) ToJSON() ([]byte, error) {
	return json.Marshal(d.entries)
}

// String returns a JSON representation of the dictionary.
// It implements [fmt.Stringer].
func (d *Dict[T]) String() string {
	b, err := d.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.entries)
	}
	return string(b)
}
