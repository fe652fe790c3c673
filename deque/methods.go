package deque

import "github.com/hasbyte1/go-container-utils/seq"

// Bulk type-preserving transforms; each materializes the elements and
// delegates to the seq kernel. Index preconditions and panics follow the
// seq package contract.

// Filter returns a new deque with only the elements for which fn is true.
func (d *Deque[T]) Filter(fn func(T) bool) *Deque[T] { return wrap(seq.Filter(d.ToSlice(), fn)) }

// Reject returns a new deque with the elements for which fn is true
// removed.
func (d *Deque[T]) Reject(fn func(T) bool) *Deque[T] {
	return d.Filter(func(item T) bool { return !fn(item) })
}

// Partition splits the deque into the elements satisfying fn and the rest.
func (d *Deque[T]) Partition(fn func(T) bool) (*Deque[T], *Deque[T]) {
	pass, fail := seq.Partition(d.ToSlice(), fn)
	return wrap(pass), wrap(fail)
}

// Map transforms each element with fn, staying in the element type.
// For transformations to a different type use the package-level [Map].
func (d *Deque[T]) Map(fn func(T) T) *Deque[T] { return wrap(seq.Map(d.ToSlice(), fn)) }

// Init returns all elements but the last.
func (d *Deque[T]) Init() *Deque[T] { return wrap(seq.Init(d.ToSlice())) }

// Tail returns all elements but the first.
func (d *Deque[T]) Tail() *Deque[T] { return wrap(seq.Tail(d.ToSlice())) }

// Slice returns the elements at positions [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ Len.
func (d *Deque[T]) Slice(lo, hi int) *Deque[T] { return wrap(seq.Slice(d.ToSlice(), lo, hi)) }

// Take returns at most n elements from the front.
func (d *Deque[T]) Take(n int) *Deque[T] { return wrap(seq.Take(d.ToSlice(), n)) }

// Skip drops the first n elements.
func (d *Deque[T]) Skip(n int) *Deque[T] { return wrap(seq.Skip(d.ToSlice(), n)) }

// TakeWhile returns the longest prefix satisfying fn.
func (d *Deque[T]) TakeWhile(fn func(T) bool) *Deque[T] {
	return wrap(seq.TakeWhile(d.ToSlice(), fn))
}

// SkipWhile drops the longest prefix satisfying fn.
func (d *Deque[T]) SkipWhile(fn func(T) bool) *Deque[T] {
	return wrap(seq.SkipWhile(d.ToSlice(), fn))
}

// StepBy returns every step-th element starting with the first.
// Panics when step <= 0.
func (d *Deque[T]) StepBy(step int) *Deque[T] { return wrap(seq.StepBy(d.ToSlice(), step)) }

// Rev returns the reversed deque.
func (d *Deque[T]) Rev() *Deque[T] { return wrap(seq.Rev(d.ToSlice())) }

// Repeat returns the deque concatenated n times.
func (d *Deque[T]) Repeat(n int) *Deque[T] { return wrap(seq.Repeat(d.ToSlice(), n)) }

// Concat returns a new deque with all elements of other appended.
func (d *Deque[T]) Concat(other *Deque[T]) *Deque[T] {
	return wrap(seq.AddMulti(d.ToSlice(), other.ToSlice()))
}

// AddAt inserts x before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (d *Deque[T]) AddAt(index int, x T) *Deque[T] {
	return wrap(seq.AddAt(d.ToSlice(), index, x))
}

// AddAtMulti inserts xs before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (d *Deque[T]) AddAtMulti(index int, xs ...T) *Deque[T] {
	return wrap(seq.AddAtMulti(d.ToSlice(), index, xs))
}

// DeleteAt removes the element at index. Panics when out of range.
func (d *Deque[T]) DeleteAt(index int) *Deque[T] {
	return wrap(seq.DeleteAt(d.ToSlice(), index))
}

// DeleteAtMulti removes the elements at the given positions; duplicate
// indices collapse. Panics when any index is out of range.
func (d *Deque[T]) DeleteAtMulti(indices ...int) *Deque[T] {
	return wrap(seq.DeleteAtMulti(d.ToSlice(), indices))
}

// MoveAt moves the element at src so its position in the result is dst.
// Panics when either index is out of range.
func (d *Deque[T]) MoveAt(src, dst int) *Deque[T] {
	return wrap(seq.MoveAt(d.ToSlice(), src, dst))
}

// SwapAt exchanges the elements at i and j. Panics when out of range.
func (d *Deque[T]) SwapAt(i, j int) *Deque[T] {
	return wrap(seq.SwapAt(d.ToSlice(), i, j))
}

// SubstituteAt replaces the element at index with x. Panics when out of
// range.
func (d *Deque[T]) SubstituteAt(index int, x T) *Deque[T] {
	return wrap(seq.SubstituteAt(d.ToSlice(), index, x))
}

// SubstituteAtMulti replaces the elements at the paired positions; see
// [seq.SubstituteAtMulti] for the pairing and panic rules.
func (d *Deque[T]) SubstituteAtMulti(indices []int, xs []T) *Deque[T] {
	return wrap(seq.SubstituteAtMulti(d.ToSlice(), indices, xs))
}

// Chunked splits the deque into consecutive groups of size; the final
// group may be shorter. Panics when size <= 0.
func (d *Deque[T]) Chunked(size int) [][]T { return seq.Chunked(d.ToSlice(), size) }

// ChunkedExact splits into groups of exactly size, dropping a short tail.
// Panics when size <= 0.
func (d *Deque[T]) ChunkedExact(size int) [][]T { return seq.ChunkedExact(d.ToSlice(), size) }

// ChunkedBy starts a new chunk whenever split(prev, curr) reports true.
func (d *Deque[T]) ChunkedBy(split func(prev, curr T) bool) [][]T {
	return seq.ChunkedBy(d.ToSlice(), split)
}

// Windowed returns overlapping windows of the given size, step apart.
// Panics when size <= 0 or step <= 0.
func (d *Deque[T]) Windowed(size, step int) [][]T { return seq.Windowed(d.ToSlice(), size, step) }

// WindowedCircular is [Deque.Windowed] wrapping once around the end.
func (d *Deque[T]) WindowedCircular(size, step int) [][]T {
	return seq.WindowedCircular(d.ToSlice(), size, step)
}

// DivideBy splits the deque around every element matching fn; matches are
// dropped and empty runs preserved.
func (d *Deque[T]) DivideBy(fn func(T) bool) [][]T { return seq.DivideBy(d.ToSlice(), fn) }

// Coalesce merges adjacent elements; see [seq.Coalesce].
func (d *Deque[T]) Coalesce(fn func(prev, curr T) (T, bool)) *Deque[T] {
	return wrap(seq.Coalesce(d.ToSlice(), fn))
}

// SortedBy returns the deque sorted by less; the sort is stable.
func (d *Deque[T]) SortedBy(less func(a, b T) bool) *Deque[T] {
	return wrap(seq.SortedBy(d.ToSlice(), less))
}

// Interleave alternates elements of d and other; the longer remainder is
// appended.
func (d *Deque[T]) Interleave(other *Deque[T]) *Deque[T] {
	return wrap(seq.Interleave(d.ToSlice(), other.ToSlice()))
}

// InterleaveExact alternates elements of d and other, stopping with the
// shorter side.
func (d *Deque[T]) InterleaveExact(other *Deque[T]) *Deque[T] {
	return wrap(seq.InterleaveExact(d.ToSlice(), other.ToSlice()))
}

// Intersperse inserts x after each run of every elements.
// Panics when every <= 0.
func (d *Deque[T]) Intersperse(every int, x T) *Deque[T] {
	return wrap(seq.Intersperse(d.ToSlice(), every, x))
}

// IntersperseWith inserts fn() after each run of every elements.
// Panics when every <= 0.
func (d *Deque[T]) IntersperseWith(every int, fn func() T) *Deque[T] {
	return wrap(seq.IntersperseWith(d.ToSlice(), every, fn))
}

// PadLeft extends the deque to length n by prepending copies of x.
func (d *Deque[T]) PadLeft(n int, x T) *Deque[T] { return wrap(seq.PadLeft(d.ToSlice(), n, x)) }

// PadLeftWith extends to length n by prepending fn(position) elements.
func (d *Deque[T]) PadLeftWith(n int, fn func(int) T) *Deque[T] {
	return wrap(seq.PadLeftWith(d.ToSlice(), n, fn))
}

// PadRight extends the deque to length n by appending copies of x.
func (d *Deque[T]) PadRight(n int, x T) *Deque[T] { return wrap(seq.PadRight(d.ToSlice(), n, x)) }

// PadRightWith extends to length n by appending fn(position) elements.
func (d *Deque[T]) PadRightWith(n int, fn func(int) T) *Deque[T] {
	return wrap(seq.PadRightWith(d.ToSlice(), n, fn))
}

// MergeBy merges d with another deque already sorted under less; stable,
// ties prefer d. See the package-level [Merge] for cmp.Ordered elements.
func (d *Deque[T]) MergeBy(other *Deque[T], less func(a, b T) bool) *Deque[T] {
	return wrap(seq.MergeBy(d.ToSlice(), other.ToSlice(), less))
}
