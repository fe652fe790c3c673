package seq

import (
	"fmt"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Positional editing
//
// Access indices must satisfy 0 ≤ i < n; insertion indices permit i = n.
// Index lists are unique-normalized: duplicates collapse to one edit.
// ─────────────────────────────────────────────────────────────────────────────

// AddAt inserts x before position index (appends when index = len).
// Panics when index is outside [0, len].
func AddAt[T any](items []T, index int, x T) []T {
	return AddAtMulti(items, index, []T{x})
}

// AddAtMulti inserts xs before position index (appends when index = len).
// Panics when index is outside [0, len].
func AddAtMulti[T any](items []T, index int, xs []T) []T {
	checkInsert(index, len(items))
	out := make([]T, 0, len(items)+len(xs))
	out = append(out, items[:index]...)
	out = append(out, xs...)
	out = append(out, items[index:]...)
	return out
}

// DeleteAt removes the element at index.
// Panics when index is outside [0, len).
func DeleteAt[T any](items []T, index int) []T {
	checkAccess(index, len(items))
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out
}

// DeleteAtMulti removes the elements at every position in indices.
// Duplicate indices collapse. Panics when any index is outside [0, len).
func DeleteAtMulti[T any](items []T, indices []int) []T {
	drop := normalizeIndices(indices, len(items))
	out := make([]T, 0, len(items)-len(drop))
	next := 0
	for i, item := range items {
		if next < len(drop) && drop[next] == i {
			next++
			continue
		}
		out = append(out, item)
	}
	return out
}

// MoveAt removes the element at src and reinserts it so that its position
// in the result is dst (an index into the post-removal sequence).
// src = dst is a no-op copy. Panics when either index is outside [0, len).
func MoveAt[T any](items []T, src, dst int) []T {
	checkAccess(src, len(items))
	checkAccess(dst, len(items))
	out := slices.Clone(items)
	if src == dst {
		return out
	}
	moved := out[src]
	if src < dst {
		copy(out[src:dst], out[src+1:dst+1])
	} else {
		copy(out[dst+1:src+1], out[dst:src])
	}
	out[dst] = moved
	return out
}

// SwapAt exchanges the elements at positions i and j.
// Panics when either index is outside [0, len).
func SwapAt[T any](items []T, i, j int) []T {
	checkAccess(i, len(items))
	checkAccess(j, len(items))
	out := slices.Clone(items)
	out[i], out[j] = out[j], out[i]
	return out
}

// SubstituteAt replaces the element at index with x.
// Panics when index is outside [0, len).
func SubstituteAt[T any](items []T, index int, x T) []T {
	checkAccess(index, len(items))
	out := slices.Clone(items)
	out[index] = x
	return out
}

// SubstituteAtMulti pairs indices with xs positionally and replaces each
// paired position with its value; indices beyond len(xs) perform no
// substitution, extra values are ignored. A duplicated index keeps the
// last paired value. Panics when any index, paired or not, is outside
// [0, len).
func SubstituteAtMulti[T any](items []T, indices []int, xs []T) []T {
	replacements := make(map[int]T, len(indices))
	for i, index := range indices {
		checkAccess(index, len(items))
		if i < len(xs) {
			replacements[index] = xs[i]
		}
	}
	out := slices.Clone(items)
	for index, x := range replacements {
		out[index] = x
	}
	return out
}

// normalizeIndices sorts and deduplicates indices, panicking on any index
// outside [0, n).
func normalizeIndices(indices []int, n int) []int {
	out := slices.Clone(indices)
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) > 0 && (out[0] < 0 || out[len(out)-1] >= n) {
		bad := out[0]
		if bad >= 0 {
			bad = out[len(out)-1]
		}
		panic(fmt.Sprintf("seq: index %d out of range [0, %d)", bad, n))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Value editing (multiset-aware)
// ─────────────────────────────────────────────────────────────────────────────

// Delete removes the first occurrence of x, preserving the order of the
// remaining elements. Absent x yields a plain copy.
func Delete[T comparable](items []T, x T) []T {
	for i, item := range items {
		if item == x {
			return DeleteAt(items, i)
		}
	}
	return slices.Clone(items)
}

// DeleteMulti removes elements by multiset subtraction: for every distinct
// value, exactly min(count in items, count in xs) occurrences are removed,
// earliest occurrences first.
func DeleteMulti[T comparable](items []T, xs []T) []T {
	pending := make(map[T]int, len(xs))
	for _, x := range xs {
		pending[x]++
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pending[item] > 0 {
			pending[item]--
			continue
		}
		out = append(out, item)
	}
	return out
}

// Substitute replaces the first occurrence of old with new, leaving every
// other element untouched.
func Substitute[T comparable](items []T, old, new T) []T {
	out := slices.Clone(items)
	for i, item := range out {
		if item == old {
			out[i] = new
			break
		}
	}
	return out
}

// SubstituteMulti pairs olds with news positionally and replaces, for each
// pair, one occurrence of the old value with the new one. When a value
// repeats in olds, its queued replacements are consumed by successive
// occurrences in FIFO order. Extra news are ignored; unpaired olds leave
// the sequence unchanged.
func SubstituteMulti[T comparable](items []T, olds, news []T) []T {
	queued := make(map[T][]T, len(olds))
	for i, old := range olds {
		if i >= len(news) {
			break
		}
		queued[old] = append(queued[old], news[i])
	}
	out := slices.Clone(items)
	for i, item := range out {
		if q := queued[item]; len(q) > 0 {
			out[i] = q[0]
			queued[item] = q[1:]
		}
	}
	return out
}

// Intersect returns the multiset intersection of items and xs, preserving
// the order of items: each value keeps min(count in items, count in xs)
// occurrences.
func Intersect[T comparable](items []T, xs []T) []T {
	avail := make(map[T]int, len(xs))
	for _, x := range xs {
		avail[x]++
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if avail[item] > 0 {
			avail[item]--
			out = append(out, item)
		}
	}
	return out
}

// Add returns items with x appended.
func Add[T any](items []T, x T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, x)
}

// AddMulti returns items with xs appended.
func AddMulti[T any](items []T, xs []T) []T {
	out := make([]T, 0, len(items)+len(xs))
	out = append(out, items...)
	return append(out, xs...)
}
