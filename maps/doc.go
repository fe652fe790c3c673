// Package maps provides two generic key-value containers: HashMap, a
// map iterating in arbitrary but stable first-insertion order, and
// SortedMap, a parallel-slice map iterating in ascending key order.
//
// Both are immutable: Add, Delete and the filter operations return a new
// map. Element iteration yields [coll.Pair] values, so a map satisfies
// coll.Collection[coll.Pair[K, V]] and plugs into the conversion layer.
//
//	m := maps.NewHash[string, int]().Add("a", 1).Add("b", 2)
//	v, ok := m.Get("a") // 1, true
//
// Key-view predicates (Subset, Superset) compare the map's keys against
// a key list; values are ignored and each key of the map counts once.
// CountUnique counts distinct values and is a package-level function
// because it constrains V to comparable.
package maps
