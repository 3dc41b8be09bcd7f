package underscore

// This file contains the package-level generic operations. They live here
// rather than as methods for two reasons: Go methods cannot introduce new
// type parameters (so Map's T → U is impossible as a method), and taking an
// [Enumerable] argument lets every operation work uniformly over both
// collection shapes.
//
// All of them are eager: each call fully materialises its result before
// returning. Transforms always allocate a fresh [Seq] and never mutate
// their input.

import (
	"cmp"
	"math"
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transforms
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element, in visitation order, and returns a new
// Seq[U] of exactly Count() results.
//
//	doubled := underscore.Map(underscore.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c Enumerable[T], fn func(T) U) *Seq[U] {
	out := make([]U, 0, c.Count())
	c.Each(func(item T) {
		out = append(out, fn(item))
	})
	return &Seq[U]{items: out}
}

// Filter returns a new sequence with only the elements for which fn returns
// true, in visitation order. The whole collection is traversed.
func Filter[T any](c Enumerable[T], fn func(T) bool) *Seq[T] {
	out := make([]T, 0, c.Count())
	c.Each(func(item T) {
		if fn(item) {
			out = append(out, item)
		}
	})
	return &Seq[T]{items: out}
}

// Reject returns the complement of [Filter]: the elements for which fn
// returns false, in visitation order.
func Reject[T any](c Enumerable[T], fn func(T) bool) *Seq[T] {
	return Filter(c, func(item T) bool { return !fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Folds
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the collection left-to-right (in visitation order) into a
// single value of type U.
//
// The seed is optional. When omitted the accumulator starts at U's zero
// value, so a numeric no-seed fold starts from 0:
//
//	sum := underscore.Reduce(underscore.New(1, 2, 3),
//	    func(acc, n int) int { return acc + n }) // 0+1+2+3 = 6
//
// Whether a seed was supplied is decided by presence, never by its value:
// an explicitly passed zero seed is honoured as given.
func Reduce[T, U any](c Enumerable[T], fn func(U, T) U, seed ...U) U {
	var acc U
	if len(seed) > 0 {
		acc = seed[0]
	}
	c.Each(func(item T) {
		acc = fn(acc, item)
	})
	return acc
}

// ReduceRight folds a Seq over its elements sorted in DESCENDING order by
// value. Note this is ordering by value, not by position: ReduceRight does
// not reverse the sequence unless it was already sorted ascending.
//
//	underscore.ReduceRight(underscore.New(3, 1, 2), join, "") // folds 3, 2, 1
//
// For a Dict the positional notion does not exist and ReduceRight behaves
// exactly like [Reduce], in enumeration order. Seed handling matches
// [Reduce].
func ReduceRight[T cmp.Ordered, U any](c Enumerable[T], fn func(U, T) U, seed ...U) U {
	s, ok := c.(*Seq[T])
	if !ok {
		return Reduce(c, fn, seed...)
	}
	desc := make([]T, len(s.items))
	copy(desc, s.items)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i] > desc[j] })
	return Reduce(&Seq[T]{items: desc}, fn, seed...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & membership
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether fn returns true for all elements. An empty
// collection is vacuously true.
//
// Every always traverses the whole collection, even after the first false;
// callers may rely on fn being invoked exactly Count() times.
func Every[T any](c Enumerable[T], fn func(T) bool) bool {
	all := true
	c.Each(func(item T) {
		if !fn(item) {
			all = false
		}
	})
	return all
}

// Some reports whether fn returns true for at least one element. It is
// built on [Enumerable.Find] and stops at the first match.
func Some[T any](c Enumerable[T], fn func(T) bool) bool {
	_, found := c.Find(fn)
	return found
}

// Contains reports whether the collection contains value.
//
// For a Seq the scan starts at the optional fromIndex (default 0; negative
// values are clamped to 0). For a Dict, fromIndex has no meaning and is
// ignored; membership is an unordered equality search.
func Contains[T comparable](c Enumerable[T], value T, fromIndex ...int) bool {
	if s, ok := c.(*Seq[T]); ok {
		start := 0
		if len(fromIndex) > 0 && fromIndex[0] > 0 {
			start = fromIndex[0]
		}
		for i := start; i < len(s.items); i++ {
			if s.items[i] == value {
				return true
			}
		}
		return false
	}
	_, found := c.Find(func(item T) bool { return item == value })
	return found
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Max returns the element with the largest rank extracted by fn, together
// with that rank. On an empty collection the rank is math.Inf(-1) and the
// element is the zero value; the sentinel rank is the emptiness signal.
//
// Ties keep the first-visited element.
func Max[T any](c Enumerable[T], fn func(T) float64) (T, float64) {
	var best T
	bestRank := math.Inf(-1)
	c.Each(func(item T) {
		if r := fn(item); r > bestRank {
			best, bestRank = item, r
		}
	})
	return best, bestRank
}

// Min returns the element with the smallest rank extracted by fn, together
// with that rank. On an empty collection the rank is math.Inf(1) and the
// element is the zero value.
//
// Ties keep the first-visited element.
func Min[T any](c Enumerable[T], fn func(T) float64) (T, float64) {
	var best T
	bestRank := math.Inf(1)
	c.Each(func(item T) {
		if r := fn(item); r < bestRank {
			best, bestRank = item, r
		}
	})
	return best, bestRank
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a new sequence sorted in ascending order of the key
// derived by fn. The sort is stable: elements whose derived keys compare
// equal retain their relative visitation order.
func SortBy[T any, K cmp.Ordered](c Enumerable[T], fn func(T) K) *Seq[T] {
	type ranked struct {
		item T
		key  K
	}
	pairs := make([]ranked, 0, c.Count())
	c.Each(func(item T) {
		pairs = append(pairs, ranked{item: item, key: fn(item)})
	})
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	out := make([]T, len(pairs))
	for i, p := range pairs {
		out[i] = p.item
	}
	return &Seq[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & partitioning
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups elements by the comparable key K extracted by fn.
// Within each group, elements keep their visitation order.
func GroupBy[T any, K comparable](c Enumerable[T], fn func(T) K) map[K]*Seq[T] {
	groups := make(map[K]*Seq[T])
	c.Each(func(item T) {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	})
	return groups
}

// CountBy tallies elements by the key extracted by fn.
func CountBy[T any, K comparable](c Enumerable[T], fn func(T) K) map[K]int {
	counts := make(map[K]int)
	c.Each(func(item T) {
		counts[fn(item)]++
	})
	return counts
}

// Partition splits the collection into two sequences: the first holds
// elements for which fn returns true, the second the rest. Both preserve
// visitation order, and their lengths always sum to Count().
func Partition[T any](c Enumerable[T], fn func(T) bool) (*Seq[T], *Seq[T]) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	c.Each(func(item T) {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	})
	return &Seq[T]{items: pass}, &Seq[T]{items: fail}
}

// Zip combines two sequences element-by-element into Pairs.
// Stops at the shorter of the two.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[Pair[A, B]] {
	n := len(a.items)
	if len(b.items) < n {
		n = len(b.items)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return &Seq[Pair[A, B]]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a new sequence with the elements in a randomly shuffled
// order.
func Shuffle[T any](c Enumerable[T]) *Seq[T] {
	out := c.All()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return &Seq[T]{items: out}
}

// Sample returns n randomly selected elements (without replacement).
// If n >= Count(), a shuffled copy of the whole collection is returned.
func Sample[T any](c Enumerable[T], n int) *Seq[T] {
	s := Shuffle(c)
	if n >= len(s.items) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return &Seq[T]{items: s.items[:n]}
}
