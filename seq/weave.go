package seq

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-container-utils/coll"
)

// ─────────────────────────────────────────────────────────────────────────────
// Interleaving & separators
// ─────────────────────────────────────────────────────────────────────────────

// Interleave alternates elements of items and other, starting with items;
// once one side is exhausted the remainder of the other is appended.
func Interleave[T any](items, other []T) []T {
	out := make([]T, 0, len(items)+len(other))
	for i := 0; i < len(items) || i < len(other); i++ {
		if i < len(items) {
			out = append(out, items[i])
		}
		if i < len(other) {
			out = append(out, other[i])
		}
	}
	return out
}

// InterleaveExact alternates elements of items and other, starting with
// items, and stops as soon as the shorter side is exhausted.
func InterleaveExact[T any](items, other []T) []T {
	n := min(len(items), len(other))
	out := make([]T, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, items[i], other[i])
	}
	return out
}

// Intersperse inserts x after each run of every elements (never trailing).
// Panics when every <= 0.
func Intersperse[T any](items []T, every int, x T) []T {
	return IntersperseWith(items, every, func() T { return x })
}

// IntersperseWith inserts fn() after each run of every elements (never
// trailing). Panics when every <= 0.
func IntersperseWith[T any](items []T, every int, fn func() T) []T {
	checkSize("intersperse interval", every)
	out := make([]T, 0, len(items)+len(items)/every)
	for i, item := range items {
		if i > 0 && i%every == 0 {
			out = append(out, fn())
		}
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Padding
// ─────────────────────────────────────────────────────────────────────────────

// PadLeft extends items to length n by prepending copies of x.
// Input already n or longer is returned as a plain copy.
func PadLeft[T any](items []T, n int, x T) []T {
	return PadLeftWith(items, n, func(int) T { return x })
}

// PadLeftWith extends items to length n by prepending generated elements;
// fn receives the zero-based position of each generated element in the
// result. Input already n or longer is returned as a plain copy.
func PadLeftWith[T any](items []T, n int, fn func(int) T) []T {
	if n <= len(items) {
		return slices.Clone(items)
	}
	out := make([]T, 0, n)
	for i := 0; i < n-len(items); i++ {
		out = append(out, fn(i))
	}
	return append(out, items...)
}

// PadRight extends items to length n by appending copies of x.
// Input already n or longer is returned as a plain copy.
func PadRight[T any](items []T, n int, x T) []T {
	return PadRightWith(items, n, func(int) T { return x })
}

// PadRightWith extends items to length n by appending generated elements;
// fn receives the zero-based position of each generated element in the
// result. Input already n or longer is returned as a plain copy.
func PadRightWith[T any](items []T, n int, fn func(int) T) []T {
	if n <= len(items) {
		return slices.Clone(items)
	}
	out := make([]T, 0, n)
	out = append(out, items...)
	for i := len(items); i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging ordered runs
// ─────────────────────────────────────────────────────────────────────────────

// Merge merges two already-sorted sequences into one sorted sequence.
// The merge is stable: equal elements keep their order, ties prefer items.
func Merge[T cmp.Ordered](items, other []T) []T {
	return MergeBy(items, other, func(a, b T) bool { return a < b })
}

// MergeBy merges two sequences already sorted under less into one.
// Stable; ties prefer items.
func MergeBy[T any](items, other []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(items)+len(other))
	i, j := 0, 0
	for i < len(items) && j < len(other) {
		if less(other[j], items[i]) {
			out = append(out, other[j])
			j++
		} else {
			out = append(out, items[i])
			i++
		}
	}
	out = append(out, items[i:]...)
	return append(out, other[j:]...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping & scanning
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs elements of a and b at the same index, stopping at the shorter.
func Zip[A, B any](a []A, b []B) []coll.Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]coll.Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = coll.Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// ZipPadded pairs elements of a and b at the same index, extending the
// shorter side with generated values: leftFill(i) supplies a missing left
// element, rightFill(i) a missing right one.
func ZipPadded[A, B any](a []A, b []B, leftFill func(int) A, rightFill func(int) B) []coll.Pair[A, B] {
	n := max(len(a), len(b))
	out := make([]coll.Pair[A, B], n)
	for i := 0; i < n; i++ {
		var left A
		var right B
		if i < len(a) {
			left = a[i]
		} else {
			left = leftFill(i)
		}
		if i < len(b) {
			right = b[i]
		} else {
			right = rightFill(i)
		}
		out[i] = coll.Pair[A, B]{First: left, Second: right}
	}
	return out
}

// Unzip splits a sequence of pairs into its two component sequences.
func Unzip[A, B any](pairs []coll.Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

// Scan left-folds items and emits every intermediate accumulator, one per
// element; the initial value itself is not emitted.
func Scan[T, A any](items []T, initial A, fn func(A, T) A) []A {
	out := make([]A, 0, len(items))
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
		out = append(out, acc)
	}
	return out
}
