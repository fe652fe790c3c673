package seq

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional queries
// ─────────────────────────────────────────────────────────────────────────────

// Position returns the index of the first element satisfying fn, or -1.
func Position[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// PositionMulti returns the indices of every element satisfying fn.
func PositionMulti[T any](items []T, fn func(T) bool) []int {
	out := make([]int, 0)
	for i, item := range items {
		if fn(item) {
			out = append(out, i)
		}
	}
	return out
}

// PositionOf returns the index of the first occurrence of x, or -1.
func PositionOf[T comparable](items []T, x T) int {
	for i, item := range items {
		if item == x {
			return i
		}
	}
	return -1
}

// PositionSeq returns the index of the first contiguous occurrence of sub
// in items, or -1. An empty sub matches at index 0.
func PositionSeq[T comparable](items, sub []T) int {
	if len(sub) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(sub) <= len(items); i++ {
		for j, s := range sub {
			if items[i+j] != s {
				continue outer
			}
		}
		return i
	}
	return -1
}

// RPosition returns the index of the last element satisfying fn, or -1.
func RPosition[T any](items []T, fn func(T) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// CommonPrefixLen returns the length of the longest common prefix of items
// and other.
func CommonPrefixLen[T comparable](items, other []T) int {
	n := min(len(items), len(other))
	for i := 0; i < n; i++ {
		if items[i] != other[i] {
			return i
		}
	}
	return n
}

// CommonSuffixLen returns the length of the longest common suffix of items
// and other.
func CommonSuffixLen[T comparable](items, other []T) int {
	n := min(len(items), len(other))
	for i := 1; i <= n; i++ {
		if items[len(items)-i] != other[len(other)-i] {
			return i - 1
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold left-folds items into an accumulator seeded with initial.
func Fold[T, A any](items []T, initial A, fn func(A, T) A) A {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// RFold right-folds items: like [Fold] but visiting elements back to front.
func RFold[T, A any](items []T, initial A, fn func(A, T) A) A {
	acc := initial
	for i := len(items) - 1; i >= 0; i-- {
		acc = fn(acc, items[i])
	}
	return acc
}

// Reduce folds items using the first element as the seed.
// Returns the zero value and false when items is empty.
func Reduce[T any](items []T, fn func(T, T) T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	acc := items[0]
	for _, item := range items[1:] {
		acc = fn(acc, item)
	}
	return acc, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Frequency tables & joining
// ─────────────────────────────────────────────────────────────────────────────

// Frequencies returns element → occurrence count.
func Frequencies[T comparable](items []T) map[T]int {
	freq := make(map[T]int, len(items))
	for _, item := range items {
		freq[item]++
	}
	return freq
}

// FrequenciesBy returns key → occurrence count with keys extracted by fn.
func FrequenciesBy[T any, K comparable](items []T, fn func(T) K) map[K]int {
	freq := make(map[K]int, len(items))
	for _, item := range items {
		freq[fn(item)]++
	}
	return freq
}

// Join stringifies every element with fmt.Sprint and joins them with sep.
func Join[T any](items []T, sep string) string {
	return JoinBy(items, sep, func(item T) string { return fmt.Sprint(item) })
}

// JoinBy converts every element to a string with fn and joins them with sep.
func JoinBy[T any](items []T, sep string, fn func(T) string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fn(item)
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Number is the constraint accepted by [Sum] and [Product].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum returns the sum of all elements; empty input yields 0.
func Sum[T Number](items []T) T {
	var total T
	for _, item := range items {
		total += item
	}
	return total
}

// SumBy returns the sum of fn over all elements; empty input yields 0.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Product returns the product of all elements; empty input yields 1.
func Product[T Number](items []T) T {
	total := T(1)
	for _, item := range items {
		total *= item
	}
	return total
}
