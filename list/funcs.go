package list

// Package-level generic functions: type-changing projections and
// operations that constrain the element type. All delegate to the seq
// kernel via a materialized slice.

import (
	"cmp"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

// Map applies fn to every element and returns a new List[U].
func Map[T, U any](l *List[T], fn func(T) U) *List[U] {
	out := &List[U]{}
	for n := l.head; n != nil; n = n.next {
		out.pushBack(fn(n.value))
	}
	return out
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single List[U].
func FlatMap[T, U any](l *List[T], fn func(T) []U) *List[U] {
	out := &List[U]{}
	for n := l.head; n != nil; n = n.next {
		for _, item := range fn(n.value) {
			out.pushBack(item)
		}
	}
	return out
}

// FilterMap applies fn to every element and keeps the present results.
func FilterMap[T, U any](l *List[T], fn func(T) (U, bool)) *List[U] {
	out := &List[U]{}
	for n := l.head; n != nil; n = n.next {
		if item, ok := fn(n.value); ok {
			out.pushBack(item)
		}
	}
	return out
}

// FoldTo left-folds the list into an accumulator of an arbitrary type.
func FoldTo[T, A any](l *List[T], initial A, fn func(A, T) A) A {
	acc := initial
	for n := l.head; n != nil; n = n.next {
		acc = fn(acc, n.value)
	}
	return acc
}

// GroupBy groups elements by the comparable key extracted by fn,
// preserving relative order inside every group.
func GroupBy[T any, K comparable](l *List[T], fn func(T) K) map[K]*List[T] {
	groups := make(map[K]*List[T])
	for n := l.head; n != nil; n = n.next {
		k := fn(n.value)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].pushBack(n.value)
	}
	return groups
}

// Contains reports whether the list contains x.
func Contains[T comparable](l *List[T], x T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == x {
			return true
		}
	}
	return false
}

// PositionOf returns the index of the first occurrence of x, or -1.
func PositionOf[T comparable](l *List[T], x T) int {
	return l.Position(func(item T) bool { return item == x })
}

// Delete removes the first occurrence of x.
func Delete[T comparable](l *List[T], x T) *List[T] {
	return fromSlice(seq.Delete(l.ToSlice(), x))
}

// DeleteMulti removes elements by multiset subtraction; see
// [seq.DeleteMulti].
func DeleteMulti[T comparable](l *List[T], xs []T) *List[T] {
	return fromSlice(seq.DeleteMulti(l.ToSlice(), xs))
}

// Substitute replaces the first occurrence of old with new.
func Substitute[T comparable](l *List[T], old, new T) *List[T] {
	return fromSlice(seq.Substitute(l.ToSlice(), old, new))
}

// Intersect returns the multiset intersection with xs, preserving l's
// order.
func Intersect[T comparable](l *List[T], xs []T) *List[T] {
	return fromSlice(seq.Intersect(l.ToSlice(), xs))
}

// Divide splits the list around every occurrence of sep; separators are
// dropped and empty runs preserved.
func Divide[T comparable](l *List[T], sep T) [][]T { return seq.Divide(l.ToSlice(), sep) }

// Unique removes duplicates, keeping first occurrences in order.
func Unique[T comparable](l *List[T]) *List[T] {
	return fromSlice(seq.Unique(l.ToSlice()))
}

// Duplicates returns each repeated value once, ordered by second
// occurrence.
func Duplicates[T comparable](l *List[T]) *List[T] {
	return fromSlice(seq.Duplicates(l.ToSlice()))
}

// Frequencies returns element → occurrence count.
func Frequencies[T comparable](l *List[T]) map[T]int { return coll.Frequencies[T](l) }

// Equivalent reports whether l and elements are equal as multisets.
func Equivalent[T comparable](l *List[T], elements []T) bool {
	return coll.Equivalent[T](l, elements)
}

// Sorted returns the list sorted ascending.
func Sorted[T cmp.Ordered](l *List[T]) *List[T] { return fromSlice(seq.Sorted(l.ToSlice())) }

// Merge merges two already-sorted lists; stable, ties prefer l.
func Merge[T cmp.Ordered](l, other *List[T]) *List[T] {
	return fromSlice(seq.Merge(l.ToSlice(), other.ToSlice()))
}

// Max returns the largest element, preferring the last of equal maxima.
func Max[T cmp.Ordered](l *List[T]) (T, bool) { return coll.MaxOf[T](l) }

// Min returns the smallest element, preferring the first of equal minima.
func Min[T cmp.Ordered](l *List[T]) (T, bool) { return coll.MinOf[T](l) }

// Sum returns the sum of all elements; empty list yields 0.
func Sum[T seq.Number](l *List[T]) T {
	var total T
	for n := l.head; n != nil; n = n.next {
		total += n.value
	}
	return total
}
