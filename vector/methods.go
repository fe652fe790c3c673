package vector

import "github.com/hasbyte1/go-container-utils/seq"

// This file holds the type-preserving transforms: every method returns a
// fresh Vector and leaves the receiver untouched. Index preconditions and
// panics follow the seq package contract.

// ─────────────────────────────────────────────────────────────────────────────
// Building
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new vector with x appended.
func (v *Vector[T]) Add(x T) *Vector[T] { return wrap(seq.Add(v.items, x)) }

// AddMulti returns a new vector with xs appended.
func (v *Vector[T]) AddMulti(xs ...T) *Vector[T] { return wrap(seq.AddMulti(v.items, xs)) }

// Prepend returns a new vector with xs inserted at the front.
func (v *Vector[T]) Prepend(xs ...T) *Vector[T] { return wrap(seq.AddAtMulti(v.items, 0, xs)) }

// Filter returns a new vector with only the elements for which fn is true.
func (v *Vector[T]) Filter(fn func(T) bool) *Vector[T] { return wrap(seq.Filter(v.items, fn)) }

// Reject returns a new vector with the elements for which fn is true
// removed. It is the complement of [Vector.Filter].
func (v *Vector[T]) Reject(fn func(T) bool) *Vector[T] {
	return v.Filter(func(item T) bool { return !fn(item) })
}

// Partition splits the vector into two: the elements satisfying fn and the
// rest, relative order preserved in both.
func (v *Vector[T]) Partition(fn func(T) bool) (*Vector[T], *Vector[T]) {
	pass, fail := seq.Partition(v.items, fn)
	return wrap(pass), wrap(fail)
}

// Map transforms each element with fn, staying in the element type.
// For transformations to a different type use the package-level [Map].
func (v *Vector[T]) Map(fn func(T) T) *Vector[T] { return wrap(seq.Map(v.items, fn)) }

// Scan left-folds the elements and keeps every intermediate accumulator
// of the element type; see the package-level [ScanTo] for other types.
func (v *Vector[T]) Scan(initial T, fn func(acc, item T) T) *Vector[T] {
	return wrap(seq.Scan(v.items, initial, fn))
}

// MapWhile transforms elements with fn until it first reports false.
func (v *Vector[T]) MapWhile(fn func(T) (T, bool)) *Vector[T] {
	return wrap(seq.MapWhile(v.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional editing
// ─────────────────────────────────────────────────────────────────────────────

// AddAt inserts x before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (v *Vector[T]) AddAt(index int, x T) *Vector[T] { return wrap(seq.AddAt(v.items, index, x)) }

// AddAtMulti inserts xs before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (v *Vector[T]) AddAtMulti(index int, xs ...T) *Vector[T] {
	return wrap(seq.AddAtMulti(v.items, index, xs))
}

// DeleteAt removes the element at index. Panics when out of range.
func (v *Vector[T]) DeleteAt(index int) *Vector[T] { return wrap(seq.DeleteAt(v.items, index)) }

// DeleteAtMulti removes the elements at the given positions; duplicate
// indices collapse. Panics when any index is out of range.
func (v *Vector[T]) DeleteAtMulti(indices ...int) *Vector[T] {
	return wrap(seq.DeleteAtMulti(v.items, indices))
}

// MoveAt moves the element at src so its position in the result is dst.
// Panics when either index is out of range.
func (v *Vector[T]) MoveAt(src, dst int) *Vector[T] { return wrap(seq.MoveAt(v.items, src, dst)) }

// SwapAt exchanges the elements at i and j. Panics when out of range.
func (v *Vector[T]) SwapAt(i, j int) *Vector[T] { return wrap(seq.SwapAt(v.items, i, j)) }

// SubstituteAt replaces the element at index with x. Panics when out of
// range.
func (v *Vector[T]) SubstituteAt(index int, x T) *Vector[T] {
	return wrap(seq.SubstituteAt(v.items, index, x))
}

// SubstituteAtMulti replaces the elements at the paired positions; see
// [seq.SubstituteAtMulti] for the pairing and panic rules.
func (v *Vector[T]) SubstituteAtMulti(indices []int, xs []T) *Vector[T] {
	return wrap(seq.SubstituteAtMulti(v.items, indices, xs))
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural selection
// ─────────────────────────────────────────────────────────────────────────────

// Init returns all elements but the last.
func (v *Vector[T]) Init() *Vector[T] { return wrap(seq.Init(v.items)) }

// Tail returns all elements but the first.
func (v *Vector[T]) Tail() *Vector[T] { return wrap(seq.Tail(v.items)) }

// Slice returns the elements at positions [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ Len.
func (v *Vector[T]) Slice(lo, hi int) *Vector[T] { return wrap(seq.Slice(v.items, lo, hi)) }

// Take returns at most n elements from the start.
func (v *Vector[T]) Take(n int) *Vector[T] { return wrap(seq.Take(v.items, n)) }

// Skip drops the first n elements.
func (v *Vector[T]) Skip(n int) *Vector[T] { return wrap(seq.Skip(v.items, n)) }

// TakeWhile returns the longest prefix satisfying fn.
func (v *Vector[T]) TakeWhile(fn func(T) bool) *Vector[T] { return wrap(seq.TakeWhile(v.items, fn)) }

// SkipWhile drops the longest prefix satisfying fn.
func (v *Vector[T]) SkipWhile(fn func(T) bool) *Vector[T] { return wrap(seq.SkipWhile(v.items, fn)) }

// StepBy returns every step-th element starting with the first.
// Panics when step <= 0.
func (v *Vector[T]) StepBy(step int) *Vector[T] { return wrap(seq.StepBy(v.items, step)) }

// Rev returns the reversed vector.
func (v *Vector[T]) Rev() *Vector[T] { return wrap(seq.Rev(v.items)) }

// Repeat returns the vector concatenated n times.
func (v *Vector[T]) Repeat(n int) *Vector[T] { return wrap(seq.Repeat(v.items, n)) }

// Concat returns a new vector with all elements of other appended.
func (v *Vector[T]) Concat(other *Vector[T]) *Vector[T] {
	return wrap(seq.AddMulti(v.items, other.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking & windowing
// ─────────────────────────────────────────────────────────────────────────────

// Chunked splits the vector into consecutive groups of size; the final
// group may be shorter. Panics when size <= 0.
func (v *Vector[T]) Chunked(size int) [][]T { return seq.Chunked(v.items, size) }

// ChunkedExact splits into groups of exactly size, dropping a short tail.
// Panics when size <= 0.
func (v *Vector[T]) ChunkedExact(size int) [][]T { return seq.ChunkedExact(v.items, size) }

// ChunkedBy starts a new chunk whenever split(prev, curr) reports true.
func (v *Vector[T]) ChunkedBy(split func(prev, curr T) bool) [][]T {
	return seq.ChunkedBy(v.items, split)
}

// Windowed returns overlapping windows of the given size, step apart.
// Panics when size <= 0 or step <= 0.
func (v *Vector[T]) Windowed(size, step int) [][]T { return seq.Windowed(v.items, size, step) }

// WindowedCircular is [Vector.Windowed] wrapping once around the end.
func (v *Vector[T]) WindowedCircular(size, step int) [][]T {
	return seq.WindowedCircular(v.items, size, step)
}

// DivideBy splits the vector around every element matching fn; matches are
// dropped and empty runs preserved.
func (v *Vector[T]) DivideBy(fn func(T) bool) [][]T { return seq.DivideBy(v.items, fn) }

// Coalesce merges adjacent elements; see [seq.Coalesce].
func (v *Vector[T]) Coalesce(fn func(prev, curr T) (T, bool)) *Vector[T] {
	return wrap(seq.Coalesce(v.items, fn))
}

// ─────────────────────────────────────────────────────────────────────────────
// Weaving
// ─────────────────────────────────────────────────────────────────────────────

// Interleave alternates elements of v and other; the longer remainder is
// appended.
func (v *Vector[T]) Interleave(other *Vector[T]) *Vector[T] {
	return wrap(seq.Interleave(v.items, other.items))
}

// InterleaveExact alternates elements of v and other, stopping with the
// shorter side.
func (v *Vector[T]) InterleaveExact(other *Vector[T]) *Vector[T] {
	return wrap(seq.InterleaveExact(v.items, other.items))
}

// Intersperse inserts x after each run of every elements.
// Panics when every <= 0.
func (v *Vector[T]) Intersperse(every int, x T) *Vector[T] {
	return wrap(seq.Intersperse(v.items, every, x))
}

// IntersperseWith inserts fn() after each run of every elements.
// Panics when every <= 0.
func (v *Vector[T]) IntersperseWith(every int, fn func() T) *Vector[T] {
	return wrap(seq.IntersperseWith(v.items, every, fn))
}

// PadLeft extends the vector to length n by prepending copies of x.
func (v *Vector[T]) PadLeft(n int, x T) *Vector[T] { return wrap(seq.PadLeft(v.items, n, x)) }

// PadLeftWith extends to length n by prepending fn(position) elements.
func (v *Vector[T]) PadLeftWith(n int, fn func(int) T) *Vector[T] {
	return wrap(seq.PadLeftWith(v.items, n, fn))
}

// PadRight extends the vector to length n by appending copies of x.
func (v *Vector[T]) PadRight(n int, x T) *Vector[T] { return wrap(seq.PadRight(v.items, n, x)) }

// PadRightWith extends to length n by appending fn(position) elements.
func (v *Vector[T]) PadRightWith(n int, fn func(int) T) *Vector[T] {
	return wrap(seq.PadRightWith(v.items, n, fn))
}

// MergeBy merges v with another vector already sorted under less; stable,
// ties prefer v. See the package-level [Merge] for cmp.Ordered elements.
func (v *Vector[T]) MergeBy(other *Vector[T], less func(a, b T) bool) *Vector[T] {
	return wrap(seq.MergeBy(v.items, other.items, less))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering by closure
// ─────────────────────────────────────────────────────────────────────────────

// SortedBy returns the vector sorted by less; the sort is stable.
func (v *Vector[T]) SortedBy(less func(a, b T) bool) *Vector[T] {
	return wrap(seq.SortedBy(v.items, less))
}

// SortedUnstableBy returns the vector sorted by less without stability
// guarantees.
func (v *Vector[T]) SortedUnstableBy(less func(a, b T) bool) *Vector[T] {
	return wrap(seq.SortedUnstableBy(v.items, less))
}

// LargestBy returns the n largest elements under less, descending.
func (v *Vector[T]) LargestBy(n int, less func(a, b T) bool) *Vector[T] {
	return wrap(seq.LargestBy(v.items, n, less))
}

// SmallestBy returns the n smallest elements under less, ascending.
func (v *Vector[T]) SmallestBy(n int, less func(a, b T) bool) *Vector[T] {
	return wrap(seq.SmallestBy(v.items, n, less))
}
