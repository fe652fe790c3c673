package vector

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

// Vector is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the vector returns a *new* Vector, leaving
// the original unchanged. This design is goroutine-safe for reads and
// avoids accidental aliasing bugs in pipelines.
type Vector[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Vector from a variadic list of items (copied).
func New[T any](items ...T) *Vector[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Vector[T]{items: dst}
}

// From creates a Vector from a slice (the slice is copied).
func From[T any](items []T) *Vector[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Vector[T]{items: dst}
}

// FromSeq creates a Vector by draining an iterator.
func FromSeq[T any](elements iter.Seq[T]) *Vector[T] {
	items := make([]T, 0)
	for item := range elements {
		items = append(items, item)
	}
	return &Vector[T]{items: items}
}

// Empty creates an empty Vector of type T.
func Empty[T any]() *Vector[T] {
	return &Vector[T]{items: []T{}}
}

// Unit creates a one-element Vector.
func Unit[T any](x T) *Vector[T] {
	return &Vector[T]{items: seq.Unit(x)}
}

// Fill creates an n-element Vector with every position set to x.
func Fill[T any](x T, n int) *Vector[T] {
	return &Vector[T]{items: seq.Fill(x, n)}
}

// FillWith creates an n-element Vector whose i-th element is fn(i).
func FillWith[T any](fn func(int) T, n int) *Vector[T] {
	return &Vector[T]{items: seq.FillWith(fn, n)}
}

// wrap adopts a freshly allocated slice without copying. Internal
// constructors must pass slices that no one else aliases.
func wrap[T any](items []T) *Vector[T] { return &Vector[T]{items: items} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (v *Vector[T]) All() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// ToSlice is an alias for [Vector.All].
func (v *Vector[T]) ToSlice() []T { return v.All() }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.items) }

// IsEmpty reports whether the vector contains no elements.
func (v *Vector[T]) IsEmpty() bool { return len(v.items) == 0 }

// IsNotEmpty reports whether the vector has at least one element.
func (v *Vector[T]) IsNotEmpty() bool { return len(v.items) > 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (v *Vector[T]) Get(index int) (T, bool) { return seq.Get(v.items, index) }

// Has reports whether index is a valid position in the vector.
func (v *Vector[T]) Has(index int) bool {
	return index >= 0 && index < len(v.items)
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the vector is empty or no element
// satisfies the predicate.
func (v *Vector[T]) First(fns ...func(T) bool) (T, bool) { return seq.First(v.items, fns...) }

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when the vector is empty or no element
// satisfies the predicate.
func (v *Vector[T]) Last(fns ...func(T) bool) (T, bool) { return seq.Last(v.items, fns...) }

// FirstOrFail returns the first element matching fn, or [ErrNoMatchingItems].
func (v *Vector[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := v.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// LastOrFail returns the last element matching fn, or [ErrNoMatchingItems].
func (v *Vector[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := v.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// String returns a human-readable representation. It implements
// [fmt.Stringer].
func (v *Vector[T]) String() string { return fmt.Sprintf("%v", v.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration (the element-visitor contract)
// ─────────────────────────────────────────────────────────────────────────────

// Elements yields every element in order. Restartable: each call begins a
// fresh pass.
func (v *Vector[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ElementsBackward yields every element in reverse order.
func (v *Vector[T]) ElementsBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(v.items) - 1; i >= 0; i-- {
			if !yield(v.items[i]) {
				return
			}
		}
	}
}

// Each calls fn for every element and returns nothing.
func (v *Vector[T]) Each(fn func(T)) {
	for _, item := range v.items {
		fn(item)
	}
}

// Tap calls fn(v) for side-effects (e.g. logging or debugging) and returns
// v unchanged for further chaining.
func (v *Vector[T]) Tap(fn func(*Vector[T])) *Vector[T] {
	fn(v)
	return v
}

// Dump prints the vector to stdout and returns v for chaining.
func (v *Vector[T]) Dump() *Vector[T] {
	fmt.Println(v.String())
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether all elements satisfy fn. Empty vector → true.
func (v *Vector[T]) Every(fn func(T) bool) bool { return coll.All[T](v, fn) }

// Any reports whether at least one element satisfies fn. Empty → false.
func (v *Vector[T]) Any(fn func(T) bool) bool { return coll.Any[T](v, fn) }

// CountBy returns the number of elements satisfying fn.
func (v *Vector[T]) CountBy(fn func(T) bool) int { return coll.CountBy[T](v, fn) }

// Find returns the first element satisfying fn, or (zero, false).
func (v *Vector[T]) Find(fn func(T) bool) (T, bool) { return coll.Find[T](v, fn) }

// Position returns the index of the first element satisfying fn, or -1.
func (v *Vector[T]) Position(fn func(T) bool) int { return seq.Position(v.items, fn) }

// PositionMulti returns the indices of every element satisfying fn.
func (v *Vector[T]) PositionMulti(fn func(T) bool) []int { return seq.PositionMulti(v.items, fn) }

// RPosition returns the index of the last element satisfying fn, or -1.
func (v *Vector[T]) RPosition(fn func(T) bool) int { return seq.RPosition(v.items, fn) }

// Fold left-folds the elements into an accumulator of the element type.
// For accumulators of a different type use the package-level [FoldTo].
func (v *Vector[T]) Fold(initial T, fn func(acc, item T) T) T {
	return seq.Fold(v.items, initial, fn)
}

// RFold right-folds the elements into an accumulator of the element type.
func (v *Vector[T]) RFold(initial T, fn func(acc, item T) T) T {
	return seq.RFold(v.items, initial, fn)
}

// Reduce folds the elements using the first as the seed.
// Returns the zero value and false when the vector is empty.
func (v *Vector[T]) Reduce(fn func(acc, item T) T) (T, bool) {
	return seq.Reduce(v.items, fn)
}

// MaxBy returns the largest element under less, preferring the last of
// equal maxima. Returns the zero value and false on empty input.
func (v *Vector[T]) MaxBy(less func(a, b T) bool) (T, bool) { return coll.MaxBy[T](v, less) }

// MinBy returns the smallest element under less, preferring the first of
// equal minima. Returns the zero value and false on empty input.
func (v *Vector[T]) MinBy(less func(a, b T) bool) (T, bool) { return coll.MinBy[T](v, less) }

// MinMaxBy returns the smallest and largest elements under less in one
// pass, with [coll.MinMaxBy] tie-breaking. ok is false on empty input.
func (v *Vector[T]) MinMaxBy(less func(a, b T) bool) (min, max T, ok bool) {
	return coll.MinMaxBy[T](v, less)
}

// JoinBy converts every element to a string with fn and joins with sep.
func (v *Vector[T]) JoinBy(sep string, fn func(T) string) string {
	return seq.JoinBy(v.items, sep, fn)
}

// Join stringifies every element with fmt.Sprint and joins with sep.
func (v *Vector[T]) Join(sep string) string { return seq.Join(v.items, sep) }

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(v) if condition is true and returns the result; otherwise
// returns v unchanged.
func (v *Vector[T]) When(condition bool, fn func(*Vector[T]) *Vector[T]) *Vector[T] {
	if condition {
		return fn(v)
	}
	return v
}

// Unless calls fn(v) if condition is false; otherwise returns v.
func (v *Vector[T]) Unless(condition bool, fn func(*Vector[T]) *Vector[T]) *Vector[T] {
	return v.When(!condition, fn)
}

// WhenEmpty calls fn(v) if v is empty; otherwise returns v.
func (v *Vector[T]) WhenEmpty(fn func(*Vector[T]) *Vector[T]) *Vector[T] {
	return v.When(v.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(v) if v is not empty; otherwise returns v.
func (v *Vector[T]) WhenNotEmpty(fn func(*Vector[T]) *Vector[T]) *Vector[T] {
	return v.When(v.IsNotEmpty(), fn)
}
