package seq

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Unit returns a one-element slice containing x.
func Unit[T any](x T) []T { return []T{x} }

// Fill returns an n-element slice with every position set to x.
// n <= 0 yields an empty slice.
func Fill[T any](x T, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// FillWith returns an n-element slice whose i-th element is fn(i).
// n <= 0 yields an empty slice.
func FillWith[T any](fn func(int) T, n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func Get[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Projections
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements for which fn returns true, preserving order.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// FilterMap applies fn to every element and keeps the present results,
// preserving order.
func FilterMap[T, U any](items []T, fn func(T) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		if u, ok := fn(item); ok {
			out = append(out, u)
		}
	}
	return out
}

// FindMap applies fn to each element and returns the first present result.
// Returns the zero value and false when fn rejects every element.
func FindMap[T, U any](items []T, fn func(T) (U, bool)) (U, bool) {
	for _, item := range items {
		if u, ok := fn(item); ok {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapWhile applies fn to each element and collects results until fn first
// reports false; the rest of the sequence is not visited.
func MapWhile[T, U any](items []T, fn func(T) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		u, ok := fn(item)
		if !ok {
			break
		}
		out = append(out, u)
	}
	return out
}

// FlatMap applies fn to each element (producing a []U) and flattens the
// results one level.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// Flat flattens a slice of slices into a single flat slice (one level).
func Flat[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Partition splits items into two slices: those satisfying fn and the rest.
// Relative order is preserved in both halves.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// PartitionMap maps every element to either a left or a right value and
// splits the results accordingly. fn returns (left, right, takeLeft): when
// takeLeft is true the left value is kept, otherwise the right value.
func PartitionMap[T, A, B any](items []T, fn func(T) (A, B, bool)) ([]A, []B) {
	lefts := make([]A, 0)
	rights := make([]B, 0)
	for _, item := range items {
		a, b, takeLeft := fn(item)
		if takeLeft {
			lefts = append(lefts, a)
		} else {
			rights = append(rights, b)
		}
	}
	return lefts, rights
}

// ForEach calls fn for every element, in order.
func ForEach[T any](items []T, fn func(T)) {
	for _, item := range items {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Panic helpers (the precondition contract of this package)
// ─────────────────────────────────────────────────────────────────────────────

func checkAccess(index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", index, n))
	}
}

func checkInsert(index, n int) {
	if index < 0 || index > n {
		panic(fmt.Sprintf("seq: insertion index %d out of range [0, %d]", index, n))
	}
}

func checkSize(name string, size int) {
	if size <= 0 {
		panic(fmt.Sprintf("seq: %s must be greater than 0, got %d", name, size))
	}
}
