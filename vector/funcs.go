package vector

// This file contains package-level generic functions for operations that
// either transform a Vector[T] into a Vector[U] (methods cannot introduce
// type parameters) or constrain the element type beyond `any`
// (comparable, cmp.Ordered, seq.Number).

import (
	"cmp"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Type-transforming projections
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element and returns a new Vector[U].
func Map[T, U any](v *Vector[T], fn func(T) U) *Vector[U] {
	return wrap(seq.Map(v.items, fn))
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single Vector[U].
func FlatMap[T, U any](v *Vector[T], fn func(T) []U) *Vector[U] {
	return wrap(seq.FlatMap(v.items, fn))
}

// FilterMap applies fn to every element and keeps the present results.
func FilterMap[T, U any](v *Vector[T], fn func(T) (U, bool)) *Vector[U] {
	return wrap(seq.FilterMap(v.items, fn))
}

// FindMap applies fn to each element and returns the first present result.
func FindMap[T, U any](v *Vector[T], fn func(T) (U, bool)) (U, bool) {
	return seq.FindMap(v.items, fn)
}

// PartitionMap maps every element to either a left or a right value and
// splits the results; fn returns (left, right, takeLeft).
func PartitionMap[T, A, B any](v *Vector[T], fn func(T) (A, B, bool)) (*Vector[A], *Vector[B]) {
	lefts, rights := seq.PartitionMap(v.items, fn)
	return wrap(lefts), wrap(rights)
}

// Flat flattens a Vector of slices into a Vector of elements (one level).
func Flat[T any](v *Vector[[]T]) *Vector[T] {
	return wrap(seq.Flat(v.items))
}

// FoldTo left-folds the vector into an accumulator of an arbitrary type.
func FoldTo[T, A any](v *Vector[T], initial A, fn func(A, T) A) A {
	return seq.Fold(v.items, initial, fn)
}

// RFoldTo right-folds the vector into an accumulator of an arbitrary type.
func RFoldTo[T, A any](v *Vector[T], initial A, fn func(A, T) A) A {
	return seq.RFold(v.items, initial, fn)
}

// ScanTo left-folds and keeps every intermediate accumulator.
func ScanTo[T, A any](v *Vector[T], initial A, fn func(A, T) A) *Vector[A] {
	return wrap(seq.Scan(v.items, initial, fn))
}

// MapWhileTo transforms elements with fn until it first reports false.
func MapWhileTo[T, U any](v *Vector[T], fn func(T) (U, bool)) *Vector[U] {
	return wrap(seq.MapWhile(v.items, fn))
}

// Enumerate pairs every element with its index.
func Enumerate[T any](v *Vector[T]) *Vector[seq.Indexed[T]] {
	return wrap(seq.Enumerate(v.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups elements by the comparable key extracted by fn,
// preserving relative order inside every group.
func GroupBy[T any, K comparable](v *Vector[T], fn func(T) K) map[K]*Vector[T] {
	groups := make(map[K]*Vector[T])
	for _, item := range v.items {
		k := fn(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
	}
	return groups
}

// GroupFold builds a key→accumulator table; each key's accumulator is
// seeded from initial on first occurrence. See [coll.GroupFold].
func GroupFold[T any, K comparable, A any](v *Vector[T], toKey func(T) K, initial A, fn func(A, T) A) map[K]A {
	return coll.GroupFold[T, K, A](v, toKey, initial, fn)
}

// GroupReduce builds a key→element table; the first element of a key is
// stored as-is, later ones are folded in. See [coll.GroupReduce].
func GroupReduce[T any, K comparable](v *Vector[T], toKey func(T) K, fn func(T, T) T) map[K]T {
	return coll.GroupReduce[T, K](v, toKey, fn)
}

// KeyBy builds a map keyed by fn; when several elements share a key, the
// last one wins.
func KeyBy[T any, K comparable](v *Vector[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(v.items))
	for _, item := range v.items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip pairs elements of a and b at the same index, stopping at the shorter.
func Zip[A, B any](a *Vector[A], b *Vector[B]) *Vector[coll.Pair[A, B]] {
	return wrap(seq.Zip(a.items, b.items))
}

// ZipPadded pairs elements of a and b, extending the shorter side with
// generated values.
func ZipPadded[A, B any](a *Vector[A], b *Vector[B], leftFill func(int) A, rightFill func(int) B) *Vector[coll.Pair[A, B]] {
	return wrap(seq.ZipPadded(a.items, b.items, leftFill, rightFill))
}

// Unzip splits a vector of pairs into its two component vectors.
func Unzip[A, B any](pairs *Vector[coll.Pair[A, B]]) (*Vector[A], *Vector[B]) {
	as, bs := seq.Unzip(pairs.items)
	return wrap(as), wrap(bs)
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparable-element operations
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the vector contains x.
func Contains[T comparable](v *Vector[T], x T) bool {
	return seq.PositionOf(v.items, x) >= 0
}

// PositionOf returns the index of the first occurrence of x, or -1.
func PositionOf[T comparable](v *Vector[T], x T) int { return seq.PositionOf(v.items, x) }

// PositionSeq returns the index of the first contiguous occurrence of sub.
func PositionSeq[T comparable](v *Vector[T], sub []T) int { return seq.PositionSeq(v.items, sub) }

// Delete removes the first occurrence of x.
func Delete[T comparable](v *Vector[T], x T) *Vector[T] { return wrap(seq.Delete(v.items, x)) }

// DeleteMulti removes elements by multiset subtraction; see
// [seq.DeleteMulti].
func DeleteMulti[T comparable](v *Vector[T], xs []T) *Vector[T] {
	return wrap(seq.DeleteMulti(v.items, xs))
}

// Substitute replaces the first occurrence of old with new.
func Substitute[T comparable](v *Vector[T], old, new T) *Vector[T] {
	return wrap(seq.Substitute(v.items, old, new))
}

// SubstituteMulti replaces one occurrence per (old, new) pair with FIFO
// queuing for repeated olds; see [seq.SubstituteMulti].
func SubstituteMulti[T comparable](v *Vector[T], olds, news []T) *Vector[T] {
	return wrap(seq.SubstituteMulti(v.items, olds, news))
}

// Intersect returns the multiset intersection with xs, preserving v's
// order.
func Intersect[T comparable](v *Vector[T], xs []T) *Vector[T] {
	return wrap(seq.Intersect(v.items, xs))
}

// Divide splits the vector around every occurrence of sep.
func Divide[T comparable](v *Vector[T], sep T) [][]T { return seq.Divide(v.items, sep) }

// Unique removes duplicates, keeping first occurrences in order.
func Unique[T comparable](v *Vector[T]) *Vector[T] { return wrap(seq.Unique(v.items)) }

// UniqueBy removes elements with duplicate keys, keeping first occurrences.
func UniqueBy[T any, K comparable](v *Vector[T], fn func(T) K) *Vector[T] {
	return wrap(seq.UniqueBy(v.items, fn))
}

// Duplicates returns each repeated value once, ordered by second
// occurrence.
func Duplicates[T comparable](v *Vector[T]) *Vector[T] { return wrap(seq.Duplicates(v.items)) }

// DuplicatesBy returns the second-occurrence element of each repeated key.
func DuplicatesBy[T any, K comparable](v *Vector[T], fn func(T) K) *Vector[T] {
	return wrap(seq.DuplicatesBy(v.items, fn))
}

// Frequencies returns element → occurrence count.
func Frequencies[T comparable](v *Vector[T]) map[T]int { return seq.Frequencies(v.items) }

// Subset reports whether v is a multiset subset of elements.
func Subset[T comparable](v *Vector[T], elements []T) bool { return coll.Subset[T](v, elements) }

// Superset reports whether v is a multiset superset of elements.
func Superset[T comparable](v *Vector[T], elements []T) bool { return coll.Superset[T](v, elements) }

// Disjoint reports whether v and elements share no element.
func Disjoint[T comparable](v *Vector[T], elements []T) bool { return coll.Disjoint[T](v, elements) }

// Equivalent reports whether v and elements are equal as multisets.
func Equivalent[T comparable](v *Vector[T], elements []T) bool {
	return coll.Equivalent[T](v, elements)
}

// CommonPrefixLen returns the length of the longest common prefix with
// other.
func CommonPrefixLen[T comparable](v, other *Vector[T]) int {
	return seq.CommonPrefixLen(v.items, other.items)
}

// CommonSuffixLen returns the length of the longest common suffix with
// other.
func CommonSuffixLen[T comparable](v, other *Vector[T]) int {
	return seq.CommonSuffixLen(v.items, other.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordered-element operations
// ─────────────────────────────────────────────────────────────────────────────

// Sorted returns the vector sorted ascending.
func Sorted[T cmp.Ordered](v *Vector[T]) *Vector[T] { return wrap(seq.Sorted(v.items)) }

// SortedByKey returns the vector sorted ascending by key, stable.
func SortedByKey[T any, K cmp.Ordered](v *Vector[T], fn func(T) K) *Vector[T] {
	return wrap(seq.SortedByKey(v.items, fn))
}

// SortedByCachedKey sorts ascending by key, evaluating fn once per element.
func SortedByCachedKey[T any, K cmp.Ordered](v *Vector[T], fn func(T) K) *Vector[T] {
	return wrap(seq.SortedByCachedKey(v.items, fn))
}

// SortedUnstable returns the vector sorted ascending without stability
// guarantees.
func SortedUnstable[T cmp.Ordered](v *Vector[T]) *Vector[T] {
	return wrap(seq.SortedUnstable(v.items))
}

// SortedUnstableByKey sorts ascending by key without stability guarantees.
func SortedUnstableByKey[T any, K cmp.Ordered](v *Vector[T], fn func(T) K) *Vector[T] {
	return wrap(seq.SortedUnstableByKey(v.items, fn))
}

// Merge merges two already-sorted vectors; stable, ties prefer v.
func Merge[T cmp.Ordered](v, other *Vector[T]) *Vector[T] {
	return wrap(seq.Merge(v.items, other.items))
}

// Largest returns the n largest elements, descending.
func Largest[T cmp.Ordered](v *Vector[T], n int) *Vector[T] {
	return wrap(seq.Largest(v.items, n))
}

// Smallest returns the n smallest elements, ascending.
func Smallest[T cmp.Ordered](v *Vector[T], n int) *Vector[T] {
	return wrap(seq.Smallest(v.items, n))
}

// Max returns the largest element, preferring the last of equal maxima.
func Max[T cmp.Ordered](v *Vector[T]) (T, bool) { return coll.MaxOf[T](v) }

// Min returns the smallest element, preferring the first of equal minima.
func Min[T cmp.Ordered](v *Vector[T]) (T, bool) { return coll.MinOf[T](v) }

// MinMax returns the smallest and largest elements in one pass.
func MinMax[T cmp.Ordered](v *Vector[T]) (min, max T, ok bool) { return coll.MinMaxOf[T](v) }

// MaxByKey returns the element with the largest key (last of equal maxima).
func MaxByKey[T any, K cmp.Ordered](v *Vector[T], key func(T) K) (T, bool) {
	return coll.MaxByKey[T, K](v, key)
}

// MinByKey returns the element with the smallest key (first of equal
// minima).
func MinByKey[T any, K cmp.Ordered](v *Vector[T], key func(T) K) (T, bool) {
	return coll.MinByKey[T, K](v, key)
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all elements; empty vector yields 0.
func Sum[T seq.Number](v *Vector[T]) T { return seq.Sum(v.items) }

// SumBy returns the sum of fn over all elements.
func SumBy[T any, N seq.Number](v *Vector[T], fn func(T) N) N { return seq.SumBy(v.items, fn) }

// Product returns the product of all elements; empty vector yields 1.
func Product[T seq.Number](v *Vector[T]) T { return seq.Product(v.items) }
