package seq

import "slices"

// ─────────────────────────────────────────────────────────────────────────────
// Structural selection (copying variants)
// ─────────────────────────────────────────────────────────────────────────────

// Init returns all elements but the last. Empty input yields an empty slice.
func Init[T any](items []T) []T {
	return slices.Clone(InitRef(items))
}

// Tail returns all elements but the first. Empty input yields an empty slice.
func Tail[T any](items []T) []T {
	return slices.Clone(TailRef(items))
}

// Slice returns the elements at positions [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ len(items).
func Slice[T any](items []T, lo, hi int) []T {
	return slices.Clone(SliceRef(items, lo, hi))
}

// Take returns at most n elements from the start. n is clamped to [0, len].
func Take[T any](items []T, n int) []T {
	return slices.Clone(TakeRef(items, n))
}

// Skip drops the first n elements. n is clamped to [0, len].
func Skip[T any](items []T, n int) []T {
	return slices.Clone(SkipRef(items, n))
}

// TakeWhile returns the longest prefix whose elements all satisfy fn.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	return slices.Clone(TakeWhileRef(items, fn))
}

// SkipWhile drops the longest prefix whose elements all satisfy fn and
// returns the rest.
func SkipWhile[T any](items []T, fn func(T) bool) []T {
	return slices.Clone(SkipWhileRef(items, fn))
}

// StepBy returns every step-th element starting with the first.
// Panics when step <= 0.
func StepBy[T any](items []T, step int) []T {
	checkSize("step", step)
	out := make([]T, 0, (len(items)+step-1)/step)
	for i := 0; i < len(items); i += step {
		out = append(out, items[i])
	}
	return out
}

// Rev returns a reversed copy of items.
func Rev[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Repeat returns items concatenated n times. n <= 0 yields an empty slice.
func Repeat[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, 0, len(items)*n)
	for i := 0; i < n; i++ {
		out = append(out, items...)
	}
	return out
}

// Enumerate pairs every element with its index.
func Enumerate[T any](items []T) []Indexed[T] {
	out := make([]Indexed[T], len(items))
	for i, item := range items {
		out[i] = Indexed[T]{Index: i, Value: item}
	}
	return out
}

// Indexed is an (index, value) pair produced by [Enumerate].
type Indexed[T any] struct {
	Index int
	Value T
}

// ─────────────────────────────────────────────────────────────────────────────
// Slice bundle (non-owning variants)
//
// The *Ref helpers return subslices sharing the input's backing array.
// They allocate nothing; callers must not mutate the result.
// ─────────────────────────────────────────────────────────────────────────────

// InitRef is [Init] without copying: a subslice of the input.
func InitRef[T any](items []T) []T {
	if len(items) == 0 {
		return items
	}
	return items[:len(items)-1]
}

// TailRef is [Tail] without copying: a subslice of the input.
func TailRef[T any](items []T) []T {
	if len(items) == 0 {
		return items
	}
	return items[1:]
}

// SliceRef is [Slice] without copying: a subslice of the input.
// Panics unless 0 ≤ lo ≤ hi ≤ len(items).
func SliceRef[T any](items []T, lo, hi int) []T {
	if lo < 0 || hi < lo || hi > len(items) {
		panic("seq: slice bounds out of range")
	}
	return items[lo:hi]
}

// TakeRef is [Take] without copying: a subslice of the input.
func TakeRef[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// SkipRef is [Skip] without copying: a subslice of the input.
func SkipRef[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[n:]
}

// TakeWhileRef is [TakeWhile] without copying: a subslice of the input.
func TakeWhileRef[T any](items []T, fn func(T) bool) []T {
	for i, item := range items {
		if !fn(item) {
			return items[:i]
		}
	}
	return items
}

// SkipWhileRef is [SkipWhile] without copying: a subslice of the input.
func SkipWhileRef[T any](items []T, fn func(T) bool) []T {
	for i, item := range items {
		if !fn(item) {
			return items[i:]
		}
	}
	return items[len(items):]
}
