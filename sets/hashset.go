package sets

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-container-utils/seq"
)

// HashSet is a generic, immutable set backed by a map. Iteration order is
// arbitrary but stable for the lifetime of the value: a small bookkeeping
// slice records first-insertion order, and every pass replays it.
type HashSet[T comparable] struct {
	items map[T]struct{}
	order []T // first-insertion order; parallel source of truth for iteration
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewHash creates a HashSet from a variadic list of items; duplicates
// collapse.
func NewHash[T comparable](items ...T) *HashSet[T] { return HashFrom(items) }

// HashFrom creates a HashSet from a slice; duplicates collapse.
func HashFrom[T comparable](items []T) *HashSet[T] {
	out := emptyHash[T](len(items))
	for _, item := range items {
		out.insert(item)
	}
	return out
}

// HashFromSeq creates a HashSet by draining an iterator.
func HashFromSeq[T comparable](elements iter.Seq[T]) *HashSet[T] {
	out := emptyHash[T](0)
	for item := range elements {
		out.insert(item)
	}
	return out
}

// EmptyHash creates an empty HashSet of type T.
func EmptyHash[T comparable]() *HashSet[T] { return emptyHash[T](0) }

func emptyHash[T comparable](capacity int) *HashSet[T] {
	return &HashSet[T]{
		items: make(map[T]struct{}, capacity),
		order: make([]T, 0, capacity),
	}
}

// insert adds x in place. Only constructors and clone-then-edit paths may
// call it: once a HashSet has been handed out it is never mutated.
func (s *HashSet[T]) insert(x T) {
	if _, ok := s.items[x]; ok {
		return
	}
	s.items[x] = struct{}{}
	s.order = append(s.order, x)
}

// remove deletes x in place, compacting the order slice.
func (s *HashSet[T]) remove(x T) {
	if _, ok := s.items[x]; !ok {
		return
	}
	delete(s.items, x)
	for i, item := range s.order {
		if item == x {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// clone copies the set with room for extra more entries.
func (s *HashSet[T]) clone(extra int) *HashSet[T] {
	out := emptyHash[T](len(s.order) + extra)
	for _, item := range s.order {
		out.insert(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (s *HashSet[T]) Len() int { return len(s.order) }

// IsEmpty reports whether the set contains no elements.
func (s *HashSet[T]) IsEmpty() bool { return len(s.order) == 0 }

// Contains reports whether x is in the set.
func (s *HashSet[T]) Contains(x T) bool {
	_, ok := s.items[x]
	return ok
}

// ContainsAll reports whether every x is in the set.
func (s *HashSet[T]) ContainsAll(xs ...T) bool {
	for _, x := range xs {
		if !s.Contains(x) {
			return false
		}
	}
	return true
}

// ToSlice returns the elements in the set's iteration order.
func (s *HashSet[T]) ToSlice() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// String returns a human-readable representation in the set's iteration
// order. It implements [fmt.Stringer].
func (s *HashSet[T]) String() string { return fmt.Sprintf("%v", s.order) }

// Elements yields every element in the set's stable iteration order.
// Restartable: every pass yields the same order.
func (s *HashSet[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.order {
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn for every element in the set's iteration order.
func (s *HashSet[T]) Each(fn func(T)) {
	for _, item := range s.order {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new set containing x. Adding a present element is a
// no-op copy.
func (s *HashSet[T]) Add(x T) *HashSet[T] {
	out := s.clone(1)
	out.insert(x)
	return out
}

// AddMulti returns a new set containing all xs.
func (s *HashSet[T]) AddMulti(xs ...T) *HashSet[T] {
	out := s.clone(len(xs))
	for _, x := range xs {
		out.insert(x)
	}
	return out
}

// Delete returns a new set without x.
func (s *HashSet[T]) Delete(x T) *HashSet[T] {
	out := s.clone(0)
	out.remove(x)
	return out
}

// DeleteMulti returns a new set without any of xs.
func (s *HashSet[T]) DeleteMulti(xs ...T) *HashSet[T] {
	out := s.clone(0)
	for _, x := range xs {
		out.remove(x)
	}
	return out
}

// Filter returns a new set with only the elements for which fn is true.
func (s *HashSet[T]) Filter(fn func(T) bool) *HashSet[T] {
	out := emptyHash[T](len(s.order))
	for _, item := range s.order {
		if fn(item) {
			out.insert(item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Algebra
// ─────────────────────────────────────────────────────────────────────────────

// Union returns the set of elements in s or other; s's elements first.
func (s *HashSet[T]) Union(other *HashSet[T]) *HashSet[T] {
	out := s.clone(other.Len())
	for _, item := range other.order {
		out.insert(item)
	}
	return out
}

// Intersect returns the set of elements in both s and other, in s's
// order.
func (s *HashSet[T]) Intersect(other *HashSet[T]) *HashSet[T] {
	out := emptyHash[T](min(len(s.order), other.Len()))
	for _, item := range s.order {
		if other.Contains(item) {
			out.insert(item)
		}
	}
	return out
}

// Diff returns the set of elements in s but not in other.
func (s *HashSet[T]) Diff(other *HashSet[T]) *HashSet[T] {
	out := emptyHash[T](len(s.order))
	for _, item := range s.order {
		if !other.Contains(item) {
			out.insert(item)
		}
	}
	return out
}

// SymmetricDiff returns the set of elements in exactly one of s and
// other; s's survivors first.
func (s *HashSet[T]) SymmetricDiff(other *HashSet[T]) *HashSet[T] {
	out := s.Diff(other)
	for _, item := range other.order {
		if !s.Contains(item) {
			out.insert(item)
		}
	}
	return out
}

// Subset reports whether every element of s is in other.
func (s *HashSet[T]) Subset(other *HashSet[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for _, item := range s.order {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Superset reports whether every element of other is in s.
func (s *HashSet[T]) Superset(other *HashSet[T]) bool { return other.Subset(s) }

// Disjoint reports whether s and other share no element.
func (s *HashSet[T]) Disjoint(other *HashSet[T]) bool {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for _, item := range small.order {
		if large.Contains(item) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other hold exactly the same elements,
// regardless of iteration order.
func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	return s.Len() == other.Len() && s.Subset(other)
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level projections
// ─────────────────────────────────────────────────────────────────────────────

// MapHash applies fn to every element of s and collects the results into
// a new HashSet; results that collide collapse on first occurrence.
func MapHash[T, U comparable](s *HashSet[T], fn func(T) U) *HashSet[U] {
	out := emptyHash[U](s.Len())
	for _, item := range s.order {
		out.insert(fn(item))
	}
	return out
}

// HashSum returns the sum of all elements.
func HashSum[T interface {
	comparable
	seq.Number
}](s *HashSet[T]) T {
	var total T
	for _, item := range s.order {
		total += item
	}
	return total
}
