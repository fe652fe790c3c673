package coll

// GroupBy groups elements into slices keyed by fn, preserving the relative
// order of elements inside every group.
func GroupBy[T any, K comparable](c Collection[T], fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for item := range c.Elements() {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// GroupFold builds a key→accumulator table. The first element of a key
// seeds that key's accumulator with fn(initial, element); every later
// element of the same key replaces it with fn(acc, element).
//
// Seeding happens per key, on first occurrence, so initial may be any
// value; it is never shared between keys. initial is copied by plain assignment;
// when the accumulator contains references (slices, maps), allocate them
// inside fn on the first call instead of inside initial.
func GroupFold[T any, K comparable, A any](c Collection[T], toKey func(T) K, initial A, fn func(A, T) A) map[K]A {
	out := make(map[K]A)
	for item := range c.Elements() {
		k := toKey(item)
		acc, seen := out[k]
		if !seen {
			acc = initial
		}
		out[k] = fn(acc, item)
	}
	return out
}

// GroupReduce builds a key→element table. The first element of a key is
// stored as-is; every later element of the same key replaces the stored
// value with fn(stored, element).
func GroupReduce[T any, K comparable](c Collection[T], toKey func(T) K, fn func(T, T) T) map[K]T {
	out := make(map[K]T)
	for item := range c.Elements() {
		k := toKey(item)
		if acc, seen := out[k]; seen {
			out[k] = fn(acc, item)
		} else {
			out[k] = item
		}
	}
	return out
}
