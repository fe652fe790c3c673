package coll

import "cmp"

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & searching
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether every element satisfies fn. Empty input → true.
// Short-circuits on the first failure.
func All[T any](c Collection[T], fn func(T) bool) bool {
	for item := range c.Elements() {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies fn. Empty input → false.
// Short-circuits on the first match.
func Any[T any](c Collection[T], fn func(T) bool) bool {
	for item := range c.Elements() {
		if fn(item) {
			return true
		}
	}
	return false
}

// CountBy returns the number of elements satisfying fn.
func CountBy[T any](c Collection[T], fn func(T) bool) int {
	count := 0
	for item := range c.Elements() {
		if fn(item) {
			count++
		}
	}
	return count
}

// Find returns the first element satisfying fn.
// Returns the zero value and false when no element matches.
func Find[T any](c Collection[T], fn func(T) bool) (T, bool) {
	for item := range c.Elements() {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindMap applies fn to each element and returns the first present result.
// Returns the zero value and false when fn rejects every element.
func FindMap[T, U any](c Collection[T], fn func(T) (U, bool)) (U, bool) {
	for item := range c.Elements() {
		if u, ok := fn(item); ok {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// ForEach calls fn for every element, in iteration order.
func ForEach[T any](c Collection[T], fn func(T)) {
	for item := range c.Elements() {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold left-folds the collection into an accumulator seeded with initial.
func Fold[T, A any](c Collection[T], initial A, fn func(A, T) A) A {
	acc := initial
	for item := range c.Elements() {
		acc = fn(acc, item)
	}
	return acc
}

// Reduce folds the collection using its first element as the seed.
// Returns the zero value and false when the collection is empty.
func Reduce[T any](c Collection[T], fn func(T, T) T) (T, bool) {
	var acc T
	first := true
	for item := range c.Elements() {
		if first {
			acc, first = item, false
			continue
		}
		acc = fn(acc, item)
	}
	return acc, !first
}

// ─────────────────────────────────────────────────────────────────────────────
// Extrema
//
// Tie-breaking is part of the contract: Max* keep the LAST maximum seen,
// Min* keep the FIRST minimum, and MinMax* combine the two.
// ─────────────────────────────────────────────────────────────────────────────

// MaxBy returns the largest element under less, preferring the last of
// equal maxima. Returns the zero value and false on empty input.
func MaxBy[T any](c Collection[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range c.Elements() {
		if !found || !less(item, best) {
			best, found = item, true
		}
	}
	return best, found
}

// MaxByKey returns the element whose key is largest, preferring the last of
// equal maxima. Returns the zero value and false on empty input.
func MaxByKey[T any, K cmp.Ordered](c Collection[T], key func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	for item := range c.Elements() {
		if k := key(item); !found || k >= bestKey {
			best, bestKey, found = item, k, true
		}
	}
	return best, found
}

// MaxOf returns the largest element, preferring the last of equal maxima.
// Returns the zero value and false on empty input.
func MaxOf[T cmp.Ordered](c Collection[T]) (T, bool) {
	return MaxBy(c, func(a, b T) bool { return a < b })
}

// MinBy returns the smallest element under less, preferring the first of
// equal minima. Returns the zero value and false on empty input.
func MinBy[T any](c Collection[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for item := range c.Elements() {
		if !found || less(item, best) {
			best, found = item, true
		}
	}
	return best, found
}

// MinByKey returns the element whose key is smallest, preferring the first
// of equal minima. Returns the zero value and false on empty input.
func MinByKey[T any, K cmp.Ordered](c Collection[T], key func(T) K) (T, bool) {
	var best T
	var bestKey K
	found := false
	for item := range c.Elements() {
		if k := key(item); !found || k < bestKey {
			best, bestKey, found = item, k, true
		}
	}
	return best, found
}

// MinOf returns the smallest element, preferring the first of equal minima.
// Returns the zero value and false on empty input.
func MinOf[T cmp.Ordered](c Collection[T]) (T, bool) {
	return MinBy(c, func(a, b T) bool { return a < b })
}

// MinMaxBy returns the smallest and largest elements under less in one pass.
// The minimum is the first of equal minima; the maximum is the last of equal
// maxima. ok is false on empty input.
func MinMaxBy[T any](c Collection[T], less func(a, b T) bool) (min, max T, ok bool) {
	for item := range c.Elements() {
		if !ok {
			min, max, ok = item, item, true
			continue
		}
		if less(item, min) {
			min = item
		}
		if !less(item, max) {
			max = item
		}
	}
	return min, max, ok
}

// MinMaxByKey returns the elements with the smallest and largest keys in one
// pass, with the same tie-breaking as [MinMaxBy]. ok is false on empty input.
func MinMaxByKey[T any, K cmp.Ordered](c Collection[T], key func(T) K) (min, max T, ok bool) {
	var minKey, maxKey K
	for item := range c.Elements() {
		k := key(item)
		if !ok {
			min, max, minKey, maxKey, ok = item, item, k, k, true
			continue
		}
		if k < minKey {
			min, minKey = item, k
		}
		if k >= maxKey {
			max, maxKey = item, k
		}
	}
	return min, max, ok
}

// MinMaxOf returns the smallest and largest elements in one pass, with the
// same tie-breaking as [MinMaxBy]. ok is false on empty input.
func MinMaxOf[T cmp.Ordered](c Collection[T]) (min, max T, ok bool) {
	return MinMaxBy(c, func(a, b T) bool { return a < b })
}
