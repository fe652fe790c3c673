// Package convert turns any coll.Collection into any container shape of
// this module.
//
// Every function drains the source through its Elements iterator, so a
// vector converts to a set, a sorted map's pair view converts to a list,
// and so on. Sequence targets (slice, vector, list, deque, heap) preserve
// multiplicity; key-unique targets (sets, maps) collapse duplicates.
//
//	v := vector.New(1, 2, 2, 3)
//	s := convert.ToHashSet[int](v) // {1 2 3}
//
// Map targets take a collection of [coll.Pair] elements, which is exactly
// what the maps containers expose:
//
//	pairs := vector.New(coll.Pair[string, int]{First: "a", Second: 1})
//	m := convert.ToHashMap[string, int](pairs)
package convert
