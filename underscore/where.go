package underscore

// Property matching over collections whose elements are map[string]any —
// the loosely-typed record shape also used by the dot-notation helpers.
// Where, FindWhere, Pluck and SortByKey all address element fields by name.

import "sort"

// Where returns every element that has, for each key in props, a truthy
// value strictly equal to the required value. Order follows visitation
// order.
//
// The truthiness gate is part of the contract: a candidate field holding
// nil, false, a zero number, NaN, or "" never satisfies a requirement, even
// when the required value is that same falsy value.
//
// Strict equality means equal dynamic type and value; int(1) does not
// match float64(1). Comparing values of an uncomparable dynamic type
// (slices, maps, functions) panics at the point of misuse.
func Where(c Enumerable[map[string]any], props map[string]any) *Seq[map[string]any] {
	return Filter(c, func(item map[string]any) bool {
		return matchesProps(item, props)
	})
}

// FindWhere returns the first element matching props, stopping at the
// first match. Returns nil and false when nothing matches. The matching
// rule is identical to [Where].
func FindWhere(c Enumerable[map[string]any], props map[string]any) (map[string]any, bool) {
	return c.Find(func(item map[string]any) bool {
		return matchesProps(item, props)
	})
}

func matchesProps(item, props map[string]any) bool {
	for key, want := range props {
		got, ok := item[key]
		if !ok || !truthy(got) || got != want {
			return false
		}
	}
	return true
}

// Pluck extracts the value stored under key from each element, in
// visitation order. Elements missing the key contribute V's zero value.
// It is [Map] with a fixed key accessor.
func Pluck[V any](c Enumerable[map[string]V], key string) *Seq[V] {
	return Map(c, func(item map[string]V) V {
		return item[key]
	})
}

// SortByKey returns a new sequence sorted in ascending order of the value
// each element stores under key: numbers compare numerically, strings
// lexicographically. The ordering of mixed-type or non-ordered keys is
// unspecified. The sort is stable.
func SortByKey(c Enumerable[map[string]any], key string) *Seq[map[string]any] {
	out := make([]map[string]any, 0, c.Count())
	c.Each(func(item map[string]any) {
		out = append(out, item)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return compareValues(out[i][key], out[j][key]) < 0
	})
	return &Seq[map[string]any]{items: out}
}

// truthy reports whether v is "present and non-zero": nil, false, zero
// numbers, NaN and the empty string are falsy; everything else, including
// empty slices and maps, is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && x == x
	case float64:
		return x != 0 && x == x
	default:
		return true
	}
}

// compareValues orders two field values: -1, 0 or +1. Numbers (of any
// width) compare numerically, strings lexicographically; any other pairing
// compares as equal, leaving the relative order to sort stability.
func compareValues(a, b any) int {
	if av, aok := numericValue(a); aok {
		if bv, bok := numericValue(b); bok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
		return 0
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			switch {
			case as < bs:
				return -1
			case as > bs:
				return 1
			default:
				return 0
			}
		}
	}
	return 0
}

func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
