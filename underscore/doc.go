// Package underscore provides eager, allocation-fresh functional helpers —
// map, filter, reduce, search, ordering and one-shot memoization — that
// work uniformly over two collection shapes: [Seq], an ordered sequence,
// and [Dict], an unordered string-keyed dictionary.
//
// # Overview
//
// The shapes share the [Enumerable] interface, and every package-level
// operation accepts an Enumerable, so the same call works over either:
//
//	s := underscore.New(1, 2, 3, 4)
//	d := underscore.FromMap(map[string]int{"a": 1, "b": 2})
//
//	underscore.Filter[int](s, even) // Seq in index order
//	underscore.Filter[int](d, even) // Dict in enumeration order
//
// Each is the iteration primitive: all full-traversal operations are built
// on it. Find is the single short-circuiting visitation, and [Some] and
// the Dict arm of [Contains] ride it to stop at the first match. [Every]
// deliberately does not short-circuit; its predicate runs exactly Count()
// times.
//
// # Immutability
//
// All transforming operations return a new Seq or Dict, leaving the input
// unchanged. That makes values safe to share across goroutines for reads
// and keeps pipelines free of aliasing surprises.
//
// # Property matching
//
// Elements shaped as map[string]any support field addressing by name:
//
//	admins := underscore.Where(users, map[string]any{"role": "admin"})
//	first, ok := underscore.FindWhere(users, map[string]any{"active": true})
//	names := underscore.Pluck[any](users, "name")
//	byAge := underscore.SortByKey(users, "age")
//
// A candidate field only satisfies a requirement when its value is truthy
// and strictly equal to the required value; see [Where] for the exact rule.
//
// # Memoization
//
//	setup := underscore.Once(loadConfig)
//	cfg := setup() // runs loadConfig
//	cfg = setup()  // cached
//
// # Mixins (runtime extension)
//
// Register named functions at runtime via [RegisterMixin] and call them
// through [CallMixin]; the registry is goroutine-safe.
package underscore
