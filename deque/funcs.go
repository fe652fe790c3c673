package deque

// Package-level generic functions: type-changing projections and
// operations that constrain the element type.

import (
	"cmp"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

// Map applies fn to every element and returns a new Deque[U].
func Map[T, U any](d *Deque[T], fn func(T) U) *Deque[U] {
	return wrap(seq.Map(d.ToSlice(), fn))
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single Deque[U].
func FlatMap[T, U any](d *Deque[T], fn func(T) []U) *Deque[U] {
	return wrap(seq.FlatMap(d.ToSlice(), fn))
}

// FilterMap applies fn to every element and keeps the present results.
func FilterMap[T, U any](d *Deque[T], fn func(T) (U, bool)) *Deque[U] {
	return wrap(seq.FilterMap(d.ToSlice(), fn))
}

// FoldTo left-folds the deque into an accumulator of an arbitrary type.
func FoldTo[T, A any](d *Deque[T], initial A, fn func(A, T) A) A {
	return coll.Fold[T, A](d, initial, fn)
}

// GroupBy groups elements by the comparable key extracted by fn,
// preserving relative order inside every group.
func GroupBy[T any, K comparable](d *Deque[T], fn func(T) K) map[K]*Deque[T] {
	out := make(map[K]*Deque[T])
	for k, items := range coll.GroupBy[T, K](d, fn) {
		out[k] = wrap(items)
	}
	return out
}

// Contains reports whether the deque contains x.
func Contains[T comparable](d *Deque[T], x T) bool { return seq.PositionOf(d.ToSlice(), x) >= 0 }

// PositionOf returns the index of the first occurrence of x, or -1.
func PositionOf[T comparable](d *Deque[T], x T) int { return seq.PositionOf(d.ToSlice(), x) }

// Delete removes the first occurrence of x.
func Delete[T comparable](d *Deque[T], x T) *Deque[T] { return wrap(seq.Delete(d.ToSlice(), x)) }

// DeleteMulti removes elements by multiset subtraction; see
// [seq.DeleteMulti].
func DeleteMulti[T comparable](d *Deque[T], xs []T) *Deque[T] {
	return wrap(seq.DeleteMulti(d.ToSlice(), xs))
}

// Substitute replaces the first occurrence of old with new.
func Substitute[T comparable](d *Deque[T], old, new T) *Deque[T] {
	return wrap(seq.Substitute(d.ToSlice(), old, new))
}

// Intersect returns the multiset intersection with xs, preserving d's
// order.
func Intersect[T comparable](d *Deque[T], xs []T) *Deque[T] {
	return wrap(seq.Intersect(d.ToSlice(), xs))
}

// Divide splits the deque around every occurrence of sep; separators are
// dropped and empty runs preserved.
func Divide[T comparable](d *Deque[T], sep T) [][]T { return seq.Divide(d.ToSlice(), sep) }

// Unique removes duplicates, keeping first occurrences in order.
func Unique[T comparable](d *Deque[T]) *Deque[T] { return wrap(seq.Unique(d.ToSlice())) }

// Duplicates returns each repeated value once, ordered by second
// occurrence.
func Duplicates[T comparable](d *Deque[T]) *Deque[T] { return wrap(seq.Duplicates(d.ToSlice())) }

// Frequencies returns element → occurrence count.
func Frequencies[T comparable](d *Deque[T]) map[T]int { return coll.Frequencies[T](d) }

// Equivalent reports whether d and elements are equal as multisets.
func Equivalent[T comparable](d *Deque[T], elements []T) bool {
	return coll.Equivalent[T](d, elements)
}

// Sorted returns the deque sorted ascending.
func Sorted[T cmp.Ordered](d *Deque[T]) *Deque[T] { return wrap(seq.Sorted(d.ToSlice())) }

// Merge merges two already-sorted deques; stable, ties prefer d.
func Merge[T cmp.Ordered](d, other *Deque[T]) *Deque[T] {
	return wrap(seq.Merge(d.ToSlice(), other.ToSlice()))
}

// Max returns the largest element, preferring the last of equal maxima.
func Max[T cmp.Ordered](d *Deque[T]) (T, bool) { return coll.MaxOf[T](d) }

// Min returns the smallest element, preferring the first of equal minima.
func Min[T cmp.Ordered](d *Deque[T]) (T, bool) { return coll.MinOf[T](d) }

// Sum returns the sum of all elements; empty deque yields 0.
func Sum[T seq.Number](d *Deque[T]) T { return seq.Sum(d.ToSlice()) }
