// Package coll defines the element-visitor contract shared by every
// container in this module, and read-only collection operations built on
// nothing but that contract.
//
// # The visitor contract
//
// A container participates in the generic operation set by implementing
// [Collection]:
//
//	type Collection[T any] interface {
//	    Len() int
//	    Elements() iter.Seq[T]
//	}
//
// Elements yields a finite, single-pass stream of the container's elements
// in its declared iteration order (or an arbitrary-but-stable order for
// unordered containers). The stream is restartable: each call to Elements
// produces a fresh pass. This is the only primitive the functions in this
// package assume.
//
// # Operations
//
// All functions are read-only: they take the collection by reference,
// never mutate it, and return scalars, (value, ok) pairs, or freshly built
// small collections:
//
//	evens := coll.CountBy[int](v, func(n int) bool { return n%2 == 0 })
//	sum   := coll.Fold(v, 0, func(acc, n int) int { return acc + n })
//	m, ok := coll.MaxOf[int](v)
//
// Absence (empty input for Max*/Min*/Reduce/Find) is reported as
// (zero value, false), never as a panic.
//
// # Multiset semantics
//
// [Subset], [Superset], [Includes], [Equivalent] and the frequency table
// returned by [Frequencies] honor element multiplicity: {2,2,3} is not a
// subset of {2,3}. All of them share the one-pass frequency primitive.
package coll
