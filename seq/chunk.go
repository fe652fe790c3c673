package seq

import "slices"

// ─────────────────────────────────────────────────────────────────────────────
// Chunking & splitting
// ─────────────────────────────────────────────────────────────────────────────

// Chunked splits items into consecutive groups of size; the final group may
// be shorter. Panics when size <= 0.
func Chunked[T any](items []T, size int) [][]T {
	return chunked(items, size, true)
}

// ChunkedExact splits items into consecutive groups of exactly size,
// dropping a final short group. Panics when size <= 0.
func ChunkedExact[T any](items []T, size int) [][]T {
	return chunked(items, size, false)
}

func chunked[T any](items []T, size int, keepRemainder bool) [][]T {
	checkSize("chunk size", size)
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i+size <= len(items); i += size {
		chunks = append(chunks, slices.Clone(items[i:i+size]))
	}
	if rem := len(items) % size; keepRemainder && rem > 0 {
		chunks = append(chunks, slices.Clone(items[len(items)-rem:]))
	}
	return chunks
}

// ChunkedBy splits items into chunks of adjacent elements: a new chunk
// begins whenever split(previous, current) reports true.
func ChunkedBy[T any](items []T, split func(prev, curr T) bool) [][]T {
	chunks := make([][]T, 0)
	var chunk []T
	for i, item := range items {
		if i > 0 && split(items[i-1], item) {
			chunks = append(chunks, chunk)
			chunk = nil
		}
		chunk = append(chunk, item)
	}
	if chunk != nil {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Divide splits items into subsequences around every occurrence of sep.
// Separators are not part of the output; leading, trailing, and adjacent
// separators produce empty subsequences.
func Divide[T comparable](items []T, sep T) [][]T {
	return DivideBy(items, func(item T) bool { return item == sep })
}

// DivideBy splits items into subsequences around every element matching fn,
// with the same boundary behavior as [Divide].
func DivideBy[T any](items []T, fn func(T) bool) [][]T {
	out := make([][]T, 0)
	run := []T{}
	for _, item := range items {
		if fn(item) {
			out = append(out, run)
			run = []T{}
			continue
		}
		run = append(run, item)
	}
	return append(out, run)
}

// Coalesce merges adjacent elements: fn(prev, curr) returning (merged, true)
// replaces the pair with merged (which becomes the new prev); returning
// (_, false) emits prev and makes curr the new prev.
func Coalesce[T any](items []T, fn func(prev, curr T) (T, bool)) []T {
	out := make([]T, 0, len(items))
	var prev T
	have := false
	for _, curr := range items {
		if !have {
			prev, have = curr, true
			continue
		}
		if merged, ok := fn(prev, curr); ok {
			prev = merged
		} else {
			out = append(out, prev)
			prev = curr
		}
	}
	if have {
		out = append(out, prev)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Windowing
// ─────────────────────────────────────────────────────────────────────────────

// Windowed returns the overlapping windows of the given size whose starts
// are step apart; a final incomplete window is dropped.
// Panics when size <= 0 or step <= 0.
func Windowed[T any](items []T, size, step int) [][]T {
	checkSize("window size", size)
	checkSize("window step", step)
	out := make([][]T, 0, windowCount(len(items), size, step))
	for start := 0; start+size <= len(items); start += step {
		out = append(out, slices.Clone(items[start:start+size]))
	}
	return out
}

// WindowedCircular is [Windowed] over the sequence extended by a copy of
// its first size-1 elements, so the last windows wrap around the end at
// most once. When size > len(items) no window can wrap only once and
// the result is empty. Panics when size <= 0 or step <= 0.
func WindowedCircular[T any](items []T, size, step int) [][]T {
	checkSize("window size", size)
	checkSize("window step", step)
	if size > len(items) {
		return [][]T{}
	}
	extended := make([]T, 0, len(items)+size-1)
	extended = append(extended, items...)
	extended = append(extended, items[:size-1]...)
	return Windowed(extended, size, step)
}

func windowCount(n, size, step int) int {
	if n < size {
		return 0
	}
	return (n-size)/step + 1
}
