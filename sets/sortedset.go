package sets

import (
	"cmp"
	"fmt"
	"iter"
	"sort"
)

// SortedSet is a generic, immutable set over a sorted unique slice.
// Iteration ascends; membership is a binary search.
type SortedSet[T cmp.Ordered] struct {
	items []T // sorted, no duplicates
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSorted creates a SortedSet from a variadic list of items; duplicates
// collapse.
func NewSorted[T cmp.Ordered](items ...T) *SortedSet[T] { return SortedFrom(items) }

// SortedFrom creates a SortedSet from a slice; duplicates collapse.
func SortedFrom[T cmp.Ordered](items []T) *SortedSet[T] {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := sorted[:0:len(sorted)]
	for i, item := range sorted {
		if i == 0 || item != out[len(out)-1] {
			out = append(out, item)
		}
	}
	return &SortedSet[T]{items: out}
}

// SortedFromSeq creates a SortedSet by draining an iterator.
func SortedFromSeq[T cmp.Ordered](elements iter.Seq[T]) *SortedSet[T] {
	var items []T
	for item := range elements {
		items = append(items, item)
	}
	return SortedFrom(items)
}

// EmptySorted creates an empty SortedSet of type T.
func EmptySorted[T cmp.Ordered]() *SortedSet[T] { return &SortedSet[T]{items: []T{}} }

// search returns the insertion point of x and whether x is present.
func (s *SortedSet[T]) search(x T) (int, bool) {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i] >= x })
	return i, i < len(s.items) && s.items[i] == x
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (s *SortedSet[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the set contains no elements.
func (s *SortedSet[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether x is in the set. O(log n).
func (s *SortedSet[T]) Contains(x T) bool {
	_, ok := s.search(x)
	return ok
}

// Min returns the smallest element. O(1).
func (s *SortedSet[T]) Min() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

// Max returns the largest element. O(1).
func (s *SortedSet[T]) Max() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// First is an alias for [SortedSet.Min]: iteration ascends.
func (s *SortedSet[T]) First() (T, bool) { return s.Min() }

// Last is an alias for [SortedSet.Max].
func (s *SortedSet[T]) Last() (T, bool) { return s.Max() }

// ToSlice returns the elements ascending as a fresh slice.
func (s *SortedSet[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// String returns a human-readable representation. It implements
// [fmt.Stringer].
func (s *SortedSet[T]) String() string { return fmt.Sprintf("%v", s.items) }

// Elements yields every element ascending. Restartable.
func (s *SortedSet[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ElementsBackward yields every element descending.
func (s *SortedSet[T]) ElementsBackward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Range yields the elements in [lo, hi) ascending.
func (s *SortedSet[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		start, _ := s.search(lo)
		for _, item := range s.items[start:] {
			if item >= hi {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new set containing x. Adding a present element is a
// no-op copy.
func (s *SortedSet[T]) Add(x T) *SortedSet[T] {
	i, ok := s.search(x)
	if ok {
		return &SortedSet[T]{items: s.ToSlice()}
	}
	out := make([]T, 0, len(s.items)+1)
	out = append(out, s.items[:i]...)
	out = append(out, x)
	out = append(out, s.items[i:]...)
	return &SortedSet[T]{items: out}
}

// AddMulti returns a new set containing all xs.
func (s *SortedSet[T]) AddMulti(xs ...T) *SortedSet[T] {
	return SortedFrom(append(s.ToSlice(), xs...))
}

// Delete returns a new set without x.
func (s *SortedSet[T]) Delete(x T) *SortedSet[T] {
	i, ok := s.search(x)
	if !ok {
		return &SortedSet[T]{items: s.ToSlice()}
	}
	out := make([]T, 0, len(s.items)-1)
	out = append(out, s.items[:i]...)
	out = append(out, s.items[i+1:]...)
	return &SortedSet[T]{items: out}
}

// Filter returns a new set with only the elements for which fn is true.
func (s *SortedSet[T]) Filter(fn func(T) bool) *SortedSet[T] {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return &SortedSet[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Algebra (linear merges over the sorted backing)
// ─────────────────────────────────────────────────────────────────────────────

// Union returns the set of elements in s or other.
func (s *SortedSet[T]) Union(other *SortedSet[T]) *SortedSet[T] {
	out := make([]T, 0, len(s.items)+len(other.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] < other.items[j]:
			out = append(out, s.items[i])
			i++
		case other.items[j] < s.items[i]:
			out = append(out, other.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i, j = i+1, j+1
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return &SortedSet[T]{items: out}
}

// Intersect returns the set of elements in both s and other.
func (s *SortedSet[T]) Intersect(other *SortedSet[T]) *SortedSet[T] {
	out := make([]T, 0)
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch {
		case s.items[i] < other.items[j]:
			i++
		case other.items[j] < s.items[i]:
			j++
		default:
			out = append(out, s.items[i])
			i, j = i+1, j+1
		}
	}
	return &SortedSet[T]{items: out}
}

// Diff returns the set of elements in s but not in other.
func (s *SortedSet[T]) Diff(other *SortedSet[T]) *SortedSet[T] {
	out := make([]T, 0, len(s.items))
	i, j := 0, 0
	for i < len(s.items) {
		if j == len(other.items) || s.items[i] < other.items[j] {
			out = append(out, s.items[i])
			i++
		} else if other.items[j] < s.items[i] {
			j++
		} else {
			i, j = i+1, j+1
		}
	}
	return &SortedSet[T]{items: out}
}

// SymmetricDiff returns the set of elements in exactly one of s and other.
func (s *SortedSet[T]) SymmetricDiff(other *SortedSet[T]) *SortedSet[T] {
	return s.Diff(other).Union(other.Diff(s))
}

// Subset reports whether every element of s is in other.
func (s *SortedSet[T]) Subset(other *SortedSet[T]) bool {
	return s.Intersect(other).Len() == s.Len()
}

// Superset reports whether every element of other is in s.
func (s *SortedSet[T]) Superset(other *SortedSet[T]) bool { return other.Subset(s) }

// Disjoint reports whether s and other share no element.
func (s *SortedSet[T]) Disjoint(other *SortedSet[T]) bool {
	return s.Intersect(other).Len() == 0
}

// Equal reports whether s and other hold exactly the same elements.
func (s *SortedSet[T]) Equal(other *SortedSet[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for i, item := range s.items {
		if item != other.items[i] {
			return false
		}
	}
	return true
}
