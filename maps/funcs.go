package maps

// Package-level generic functions: projections that change the key or
// value type, distinct-value counting (constrains V to comparable) and
// the grouping bridge from arbitrary collections.

import (
	"cmp"

	"github.com/hasbyte1/go-container-utils/coll"
)

// MapValues applies fn to every value of a HashMap, keeping the keys and
// their iteration order.
func MapValues[K comparable, V, W any](m *HashMap[K, V], fn func(V) W) *HashMap[K, W] {
	out := emptyHash[K, W](m.Len())
	for _, k := range m.order {
		out.set(k, fn(m.entries[k]))
	}
	return out
}

// MapKeys applies fn to every key of a HashMap, keeping the values; keys
// that collide collapse, the last colliding entry's value winning.
func MapKeys[K, L comparable, V any](m *HashMap[K, V], fn func(K) L) *HashMap[L, V] {
	out := emptyHash[L, V](m.Len())
	for _, k := range m.order {
		out.set(fn(k), m.entries[k])
	}
	return out
}

// MapSortedValues applies fn to every value of a SortedMap, keeping the
// keys and their order.
func MapSortedValues[K cmp.Ordered, V, W any](m *SortedMap[K, V], fn func(V) W) *SortedMap[K, W] {
	keys := m.ToKeys()
	values := make([]W, len(m.values))
	for i, v := range m.values {
		values[i] = fn(v)
	}
	return &SortedMap[K, W]{keys: keys, values: values}
}

// CountUnique returns the number of distinct values in a HashMap.
func CountUnique[K, V comparable](m *HashMap[K, V]) int {
	seen := make(map[V]struct{}, m.Len())
	for _, v := range m.entries {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// CountUniqueSorted returns the number of distinct values in a SortedMap.
func CountUniqueSorted[K cmp.Ordered, V comparable](m *SortedMap[K, V]) int {
	seen := make(map[V]struct{}, m.Len())
	for _, v := range m.values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// GroupBy groups the elements of any collection into a HashMap keyed by
// fn; keys appear in first-occurrence order, groups preserve relative
// element order.
func GroupBy[T any, K comparable](c coll.Collection[T], fn func(T) K) *HashMap[K, []T] {
	out := emptyHash[K, []T](0)
	for item := range c.Elements() {
		k := fn(item)
		out.set(k, append(out.entries[k], item))
	}
	return out
}

// KeyBy indexes the elements of any collection by fn; on duplicate keys
// the last element wins, keeping the key's first position.
func KeyBy[T any, K comparable](c coll.Collection[T], fn func(T) K) *HashMap[K, T] {
	out := emptyHash[K, T](c.Len())
	for item := range c.Elements() {
		out.set(fn(item), item)
	}
	return out
}
