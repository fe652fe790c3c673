package seq

import (
	"cmp"
	"slices"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// The full stable/unstable matrix. Stable variants preserve the relative
// order of equal elements; CachedKey evaluates the key function exactly
// once per element.
// ─────────────────────────────────────────────────────────────────────────────

// Sorted returns items sorted ascending.
func Sorted[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)
	return out
}

// SortedBy returns items sorted by less, stable.
func SortedBy[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortedByKey returns items sorted ascending by the key extracted by fn,
// stable.
func SortedByKey[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	return SortedBy(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// SortedByCachedKey returns items sorted ascending by the key extracted by
// fn, stable, evaluating fn exactly once per element.
func SortedByCachedKey[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	keys := make([]K, len(items))
	order := make([]int, len(items))
	for i, item := range items {
		keys[i] = fn(item)
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] })
	out := make([]T, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}

// SortedUnstable returns items sorted ascending without stability
// guarantees.
func SortedUnstable[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)
	return out
}

// SortedUnstableBy returns items sorted by less without stability
// guarantees.
func SortedUnstableBy[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortedUnstableByKey returns items sorted ascending by the key extracted
// by fn without stability guarantees.
func SortedUnstableByKey[T any, K cmp.Ordered](items []T, fn func(T) K) []T {
	return SortedUnstableBy(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Unique removes duplicates, keeping the first occurrence of each value
// and the original order.
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy removes elements with duplicate keys, keeping the first
// occurrence per key and the original order.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Duplicates returns each value occurring more than once, exactly once,
// ordered by the position of its second occurrence.
func Duplicates[T comparable](items []T) []T {
	return DuplicatesBy(items, func(item T) T { return item })
}

// DuplicatesBy returns, for each key occurring more than once, the element
// of its second occurrence, ordered by that position.
func DuplicatesBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	reported := make(map[K]struct{})
	out := make([]T, 0)
	for _, item := range items {
		k := fn(item)
		if _, done := reported[k]; done {
			continue
		}
		if _, ok := seen[k]; ok {
			reported[k] = struct{}{}
			out = append(out, item)
			continue
		}
		seen[k] = struct{}{}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Top/bottom-n selection
//
// A bounded heap of at most n elements; the whole sequence is never sorted.
// ─────────────────────────────────────────────────────────────────────────────

// Largest returns the n largest elements in descending order. An element
// tying with the weakest kept element does not displace it, so of equal
// candidates at the cut the earliest-seen survives.
func Largest[T cmp.Ordered](items []T, n int) []T {
	return LargestBy(items, n, func(a, b T) bool { return a < b })
}

// LargestBy returns the n largest elements under less, in descending
// order; ties at the cut resolve as in [Largest].
func LargestBy[T any](items []T, n int, less func(a, b T) bool) []T {
	return Rev(boundedTop(items, n, less))
}

// Smallest returns the n smallest elements in ascending order; ties at
// the cut resolve as in [Largest].
func Smallest[T cmp.Ordered](items []T, n int) []T {
	return SmallestBy(items, n, func(a, b T) bool { return a < b })
}

// SmallestBy returns the n smallest elements under less, in ascending
// order; ties at the cut resolve as in [Largest].
func SmallestBy[T any](items []T, n int, less func(a, b T) bool) []T {
	return Rev(boundedTop(items, n, func(a, b T) bool { return less(b, a) }))
}

// boundedTop keeps the n largest elements under less in a min-heap (the
// root is the weakest survivor) and drains it in ascending order.
func boundedTop[T any](items []T, n int, less func(a, b T) bool) []T {
	if n <= 0 {
		return []T{}
	}
	heap := make([]T, 0, min(n, len(items)))
	for _, item := range items {
		if len(heap) < n {
			heap = append(heap, item)
			siftUp(heap, len(heap)-1, less)
			continue
		}
		if less(heap[0], item) {
			heap[0] = item
			siftDown(heap, 0, less)
		}
	}
	out := make([]T, 0, len(heap))
	for len(heap) > 0 {
		out = append(out, heap[0])
		last := len(heap) - 1
		heap[0] = heap[last]
		heap = heap[:last]
		siftDown(heap, 0, less)
	}
	return out
}

func siftUp[T any](heap []T, i int, less func(a, b T) bool) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(heap[i], heap[parent]) {
			return
		}
		heap[i], heap[parent] = heap[parent], heap[i]
		i = parent
	}
}

func siftDown[T any](heap []T, i int, less func(a, b T) bool) {
	for {
		smallest := i
		if l := 2*i + 1; l < len(heap) && less(heap[l], heap[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < len(heap) && less(heap[r], heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		heap[i], heap[smallest] = heap[smallest], heap[i]
		i = smallest
	}
}
