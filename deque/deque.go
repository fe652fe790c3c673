package deque

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

// Deque is a generic, immutable double-ended queue over a ring buffer.
// Element i lives at buf[(head+i) % len(buf)].
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Deque from a variadic list of items (copied).
func New[T any](items ...T) *Deque[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Deque[T]{buf: buf, size: len(items)}
}

// From creates a Deque from a slice (the slice is copied).
func From[T any](items []T) *Deque[T] { return New(items...) }

// FromSeq creates a Deque by draining an iterator.
func FromSeq[T any](elements iter.Seq[T]) *Deque[T] {
	var items []T
	for item := range elements {
		items = append(items, item)
	}
	return &Deque[T]{buf: items, size: len(items)}
}

// Empty creates an empty Deque of type T.
func Empty[T any]() *Deque[T] { return &Deque[T]{} }

// Unit creates a one-element Deque.
func Unit[T any](x T) *Deque[T] { return New(x) }

// wrap adopts a freshly allocated, densely packed slice.
func wrap[T any](items []T) *Deque[T] { return &Deque[T]{buf: items, size: len(items)} }

// at returns the element at logical index i. Caller checks bounds.
func (d *Deque[T]) at(i int) T { return d.buf[(d.head+i)%len(d.buf)] }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// IsEmpty reports whether the deque contains no elements.
func (d *Deque[T]) IsEmpty() bool { return d.size == 0 }

// IsNotEmpty reports whether the deque has at least one element.
func (d *Deque[T]) IsNotEmpty() bool { return d.size > 0 }

// Front returns the first element. O(1).
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.at(0), true
}

// Back returns the last element. O(1).
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.at(d.size - 1), true
}

// First returns the first element, optionally matching fns[0].
func (d *Deque[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		return d.Front()
	}
	for i := 0; i < d.size; i++ {
		if item := d.at(i); fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
func (d *Deque[T]) Last(fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		return d.Back()
	}
	for i := d.size - 1; i >= 0; i-- {
		if item := d.at(i); fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Get returns the element at index together with a presence flag. O(1).
func (d *Deque[T]) Get(index int) (T, bool) {
	if index < 0 || index >= d.size {
		var zero T
		return zero, false
	}
	return d.at(index), true
}

// ToSlice returns the elements front to back as a fresh slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		out[i] = d.at(i)
	}
	return out
}

// String returns a human-readable representation. It implements
// [fmt.Stringer].
func (d *Deque[T]) String() string { return fmt.Sprintf("%v", d.ToSlice()) }

// ─────────────────────────────────────────────────────────────────────────────
// Double-ended editing
// ─────────────────────────────────────────────────────────────────────────────

// PushFront returns a new deque with x at the front.
func (d *Deque[T]) PushFront(x T) *Deque[T] {
	out := make([]T, 0, d.size+1)
	out = append(out, x)
	for i := 0; i < d.size; i++ {
		out = append(out, d.at(i))
	}
	return wrap(out)
}

// PushBack returns a new deque with x at the back.
func (d *Deque[T]) PushBack(x T) *Deque[T] {
	out := make([]T, 0, d.size+1)
	for i := 0; i < d.size; i++ {
		out = append(out, d.at(i))
	}
	return wrap(append(out, x))
}

// PopFront returns the first element and the deque without it.
// ok is false on an empty deque, which is returned unchanged.
func (d *Deque[T]) PopFront() (T, *Deque[T], bool) {
	if d.size == 0 {
		var zero T
		return zero, d, false
	}
	rest := make([]T, 0, d.size-1)
	for i := 1; i < d.size; i++ {
		rest = append(rest, d.at(i))
	}
	return d.at(0), wrap(rest), true
}

// PopBack returns the last element and the deque without it.
// ok is false on an empty deque, which is returned unchanged.
func (d *Deque[T]) PopBack() (T, *Deque[T], bool) {
	if d.size == 0 {
		var zero T
		return zero, d, false
	}
	rest := make([]T, 0, d.size-1)
	for i := 0; i < d.size-1; i++ {
		rest = append(rest, d.at(i))
	}
	return d.at(d.size - 1), wrap(rest), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Elements yields every element front to back. Restartable.
func (d *Deque[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.at(i)) {
				return
			}
		}
	}
}

// ElementsBackward yields every element back to front.
func (d *Deque[T]) ElementsBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(d.at(i)) {
				return
			}
		}
	}
}

// Each calls fn for every element.
func (d *Deque[T]) Each(fn func(T)) {
	for i := 0; i < d.size; i++ {
		fn(d.at(i))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether all elements satisfy fn. Empty deque → true.
func (d *Deque[T]) Every(fn func(T) bool) bool { return coll.All[T](d, fn) }

// Any reports whether at least one element satisfies fn. Empty → false.
func (d *Deque[T]) Any(fn func(T) bool) bool { return coll.Any[T](d, fn) }

// CountBy returns the number of elements satisfying fn.
func (d *Deque[T]) CountBy(fn func(T) bool) int { return coll.CountBy[T](d, fn) }

// Find returns the first element satisfying fn, or (zero, false).
func (d *Deque[T]) Find(fn func(T) bool) (T, bool) { return coll.Find[T](d, fn) }

// Position returns the index of the first element satisfying fn, or -1.
func (d *Deque[T]) Position(fn func(T) bool) int {
	for i := 0; i < d.size; i++ {
		if fn(d.at(i)) {
			return i
		}
	}
	return -1
}

// RPosition returns the index of the last element satisfying fn, or -1.
func (d *Deque[T]) RPosition(fn func(T) bool) int {
	for i := d.size - 1; i >= 0; i-- {
		if fn(d.at(i)) {
			return i
		}
	}
	return -1
}

// Fold left-folds the elements into an accumulator of the element type.
func (d *Deque[T]) Fold(initial T, fn func(acc, item T) T) T {
	acc := initial
	for i := 0; i < d.size; i++ {
		acc = fn(acc, d.at(i))
	}
	return acc
}

// Reduce folds the elements using the first as the seed.
// Returns the zero value and false when the deque is empty.
func (d *Deque[T]) Reduce(fn func(acc, item T) T) (T, bool) {
	return seq.Reduce(d.ToSlice(), fn)
}

// MaxBy returns the largest element under less, preferring the last of
// equal maxima. ok is false on empty input.
func (d *Deque[T]) MaxBy(less func(a, b T) bool) (T, bool) { return coll.MaxBy[T](d, less) }

// MinBy returns the smallest element under less, preferring the first of
// equal minima. ok is false on empty input.
func (d *Deque[T]) MinBy(less func(a, b T) bool) (T, bool) { return coll.MinBy[T](d, less) }

// Join stringifies every element with fmt.Sprint and joins with sep.
func (d *Deque[T]) Join(sep string) string { return seq.Join(d.ToSlice(), sep) }
