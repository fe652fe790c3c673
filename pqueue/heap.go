package pqueue

import (
	"fmt"
	"iter"
)

// Heap is a generic, immutable binary max-heap: the element for which no
// other is greater under less sits at the root. Every operation returns a
// new Heap and leaves the receiver untouched.
type Heap[T any] struct {
	items []T // heap-ordered: items[i] is not less than its children
	less  func(a, b T) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Heap ordered by less from a variadic list of items.
// Building heapifies in O(n).
func New[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	h := &Heap[T]{items: buf, less: less}
	for i := len(buf)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// From creates a Heap ordered by less from a slice (copied).
func From[T any](less func(a, b T) bool, items []T) *Heap[T] { return New(less, items...) }

// FromSeq creates a Heap by draining an iterator.
func FromSeq[T any](less func(a, b T) bool, elements iter.Seq[T]) *Heap[T] {
	var items []T
	for item := range elements {
		items = append(items, item)
	}
	return New(less, items...)
}

// Empty creates an empty Heap ordered by less.
func Empty[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{items: []T{}, less: less}
}

// clone copies the backing array with room for extra more elements.
func (h *Heap[T]) clone(extra int) *Heap[T] {
	items := make([]T, len(h.items), len(h.items)+extra)
	copy(items, h.items)
	return &Heap[T]{items: items, less: h.less}
}

// siftUp restores the heap invariant from leaf i toward the root.
// Mutates; callers operate on a private copy.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[parent], h.items[i]) {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown restores the heap invariant from node i toward the leaves.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		largest := i
		if l := 2*i + 1; l < n && h.less(h.items[largest], h.items[l]) {
			largest = l
		}
		if r := 2*i + 2; r < n && h.less(h.items[largest], h.items[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Peek returns the largest element under less. O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// ToSlice returns the backing array in unspecified order.
func (h *Heap[T]) ToSlice() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// ToSorted returns the elements in pop order: largest first.
func (h *Heap[T]) ToSorted() []T {
	out := make([]T, 0, len(h.items))
	rest := h
	for {
		top, next, ok := rest.Pop()
		if !ok {
			return out
		}
		out = append(out, top)
		rest = next
	}
}

// String returns a human-readable representation in unspecified element
// order. It implements [fmt.Stringer].
func (h *Heap[T]) String() string { return fmt.Sprintf("%v", h.items) }

// Elements yields the elements in unspecified order. Restartable.
func (h *Heap[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range h.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Each calls fn for every element in unspecified order.
func (h *Heap[T]) Each(fn func(T)) {
	for _, item := range h.items {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new heap containing x. O(log n) plus the copy.
func (h *Heap[T]) Add(x T) *Heap[T] {
	out := h.clone(1)
	out.items = append(out.items, x)
	out.siftUp(len(out.items) - 1)
	return out
}

// AddMulti returns a new heap containing all xs.
func (h *Heap[T]) AddMulti(xs ...T) *Heap[T] {
	out := h.clone(len(xs))
	for _, x := range xs {
		out.items = append(out.items, x)
		out.siftUp(len(out.items) - 1)
	}
	return out
}

// Pop returns the largest element and the heap without it.
// ok is false on an empty heap, which is returned unchanged.
func (h *Heap[T]) Pop() (T, *Heap[T], bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, h, false
	}
	top := h.items[0]
	out := h.clone(0)
	last := len(out.items) - 1
	out.items[0] = out.items[last]
	out.items = out.items[:last]
	out.siftDown(0)
	return top, out, true
}

// Delete returns a new heap without the first element (in backing-array
// order) satisfying fn. ok is false when nothing matches.
func (h *Heap[T]) Delete(fn func(T) bool) (*Heap[T], bool) {
	for i, item := range h.items {
		if !fn(item) {
			continue
		}
		out := h.clone(0)
		last := len(out.items) - 1
		out.items[i] = out.items[last]
		out.items = out.items[:last]
		if i < last {
			out.siftDown(i)
			out.siftUp(i)
		}
		return out, true
	}
	return h, false
}

// Filter returns a new heap with only the elements for which fn is true.
func (h *Heap[T]) Filter(fn func(T) bool) *Heap[T] {
	kept := make([]T, 0, len(h.items))
	for _, item := range h.items {
		if fn(item) {
			kept = append(kept, item)
		}
	}
	return New(h.less, kept...)
}
