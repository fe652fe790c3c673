package coll

import (
	"fmt"
	"iter"
)

// Collection is the element-visitor contract: a finite collection that can
// report its size in O(1) and be traversed by reference any number of times.
//
// Elements must yield the container's elements in its declared iteration
// order; unordered containers may pick any order but must keep it stable
// for the lifetime of the value. Each call starts a fresh pass.
type Collection[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Elements yields every element once, in the declared order.
	Elements() iter.Seq[T]
}

// DoubleEnded is satisfied by ordered containers that can be traversed from
// the back without materializing the forward order first.
type DoubleEnded[T any] interface {
	Collection[T]

	// ElementsBackward yields every element once, in reverse order.
	ElementsBackward() iter.Seq[T]
}

// Pair holds two values of possibly different types. It is the element type
// of zipped sequences and the pair view of maps.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// SliceOf adapts a plain slice to the [Collection] contract without copying.
func SliceOf[T any](items []T) Collection[T] { return sliceColl[T](items) }

type sliceColl[T any] []T

func (s sliceColl[T]) Len() int { return len(s) }

func (s sliceColl[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

func (s sliceColl[T]) ElementsBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// ToSlice materializes c into a fresh slice, preserving iteration order.
func ToSlice[T any](c Collection[T]) []T {
	out := make([]T, 0, c.Len())
	for item := range c.Elements() {
		out = append(out, item)
	}
	return out
}
