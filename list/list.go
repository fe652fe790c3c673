package list

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a generic, immutable doubly-linked list. First, Last and Len
// are O(1); every transform returns a new List.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items.
func New[T any](items ...T) *List[T] { return fromSlice(items) }

// From creates a List from a slice.
func From[T any](items []T) *List[T] { return fromSlice(items) }

// FromSeq creates a List by draining an iterator.
func FromSeq[T any](elements iter.Seq[T]) *List[T] {
	l := &List[T]{}
	for item := range elements {
		l.pushBack(item)
	}
	return l
}

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] { return &List[T]{} }

// Unit creates a one-element List.
func Unit[T any](x T) *List[T] { return New(x) }

// Fill creates an n-element List with every position set to x.
func Fill[T any](x T, n int) *List[T] { return fromSlice(seq.Fill(x, n)) }

// FillWith creates an n-element List whose i-th element is fn(i).
func FillWith[T any](fn func(int) T, n int) *List[T] { return fromSlice(seq.FillWith(fn, n)) }

// fromSlice builds a fresh chain; the slice itself is not retained.
func fromSlice[T any](items []T) *List[T] {
	l := &List[T]{}
	for _, item := range items {
		l.pushBack(item)
	}
	return l
}

// pushBack appends in place. Only constructors may call it: once a List
// has been handed out it is never mutated.
func (l *List[T]) pushBack(x T) {
	n := &node[T]{value: x, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *List[T]) IsNotEmpty() bool { return l.size > 0 }

// First returns the first element, optionally matching fns[0].
// The no-predicate form is O(1).
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		if l.head == nil {
			var zero T
			return zero, false
		}
		return l.head.value, true
	}
	for n := l.head; n != nil; n = n.next {
		if fns[0](n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
// The no-predicate form is O(1).
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		if l.tail == nil {
			var zero T
			return zero, false
		}
		return l.tail.value, true
	}
	for n := l.tail; n != nil; n = n.prev {
		if fns[0](n.value) {
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// Get returns the element at index together with a presence flag. O(index).
func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, false
	}
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n.value, true
}

// ToSlice returns the elements as a fresh slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// String returns a human-readable representation. It implements
// [fmt.Stringer].
func (l *List[T]) String() string { return fmt.Sprintf("%v", l.ToSlice()) }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Elements yields every element front to back. Restartable.
func (l *List[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ElementsBackward yields every element back to front.
func (l *List[T]) ElementsBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Each calls fn for every element.
func (l *List[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.value)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether all elements satisfy fn. Empty list → true.
func (l *List[T]) Every(fn func(T) bool) bool { return coll.All[T](l, fn) }

// Any reports whether at least one element satisfies fn. Empty → false.
func (l *List[T]) Any(fn func(T) bool) bool { return coll.Any[T](l, fn) }

// CountBy returns the number of elements satisfying fn.
func (l *List[T]) CountBy(fn func(T) bool) int { return coll.CountBy[T](l, fn) }

// Find returns the first element satisfying fn, or (zero, false).
func (l *List[T]) Find(fn func(T) bool) (T, bool) { return coll.Find[T](l, fn) }

// Position returns the index of the first element satisfying fn, or -1.
func (l *List[T]) Position(fn func(T) bool) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if fn(n.value) {
			return i
		}
		i++
	}
	return -1
}

// RPosition returns the index of the last element satisfying fn, or -1.
func (l *List[T]) RPosition(fn func(T) bool) int {
	i := l.size - 1
	for n := l.tail; n != nil; n = n.prev {
		if fn(n.value) {
			return i
		}
		i--
	}
	return -1
}

// Fold left-folds the elements into an accumulator of the element type.
func (l *List[T]) Fold(initial T, fn func(acc, item T) T) T {
	acc := initial
	for n := l.head; n != nil; n = n.next {
		acc = fn(acc, n.value)
	}
	return acc
}

// RFold right-folds the elements into an accumulator of the element type.
func (l *List[T]) RFold(initial T, fn func(acc, item T) T) T {
	acc := initial
	for n := l.tail; n != nil; n = n.prev {
		acc = fn(acc, n.value)
	}
	return acc
}

// Reduce folds the elements using the first as the seed.
// Returns the zero value and false when the list is empty.
func (l *List[T]) Reduce(fn func(acc, item T) T) (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	acc := l.head.value
	for n := l.head.next; n != nil; n = n.next {
		acc = fn(acc, n.value)
	}
	return acc, true
}

// MaxBy returns the largest element under less, preferring the last of
// equal maxima. ok is false on empty input.
func (l *List[T]) MaxBy(less func(a, b T) bool) (T, bool) { return coll.MaxBy[T](l, less) }

// MinBy returns the smallest element under less, preferring the first of
// equal minima. ok is false on empty input.
func (l *List[T]) MinBy(less func(a, b T) bool) (T, bool) { return coll.MinBy[T](l, less) }

// Join stringifies every element with fmt.Sprint and joins with sep.
func (l *List[T]) Join(sep string) string { return seq.Join(l.ToSlice(), sep) }

// JoinBy converts every element to a string with fn and joins with sep.
func (l *List[T]) JoinBy(sep string, fn func(T) string) string {
	return seq.JoinBy(l.ToSlice(), sep, fn)
}
