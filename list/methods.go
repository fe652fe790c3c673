package list

import "github.com/hasbyte1/go-container-utils/seq"

// Type-preserving transforms. Front/back access works on the chain
// directly; positional and bulk operations materialize the elements,
// apply the seq kernel and rebuild a chain. Index preconditions and
// panics follow the seq package contract.

// ─────────────────────────────────────────────────────────────────────────────
// Front/back building
// ─────────────────────────────────────────────────────────────────────────────

// AddFront returns a new list with x prepended.
func (l *List[T]) AddFront(x T) *List[T] {
	out := &List[T]{}
	out.pushBack(x)
	for n := l.head; n != nil; n = n.next {
		out.pushBack(n.value)
	}
	return out
}

// AddBack returns a new list with x appended.
func (l *List[T]) AddBack(x T) *List[T] {
	out := l.clone()
	out.pushBack(x)
	return out
}

// Add is an alias for [List.AddBack].
func (l *List[T]) Add(x T) *List[T] { return l.AddBack(x) }

// AddMulti returns a new list with xs appended.
func (l *List[T]) AddMulti(xs ...T) *List[T] {
	out := l.clone()
	for _, x := range xs {
		out.pushBack(x)
	}
	return out
}

// Concat returns a new list with all elements of other appended.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := l.clone()
	for n := other.head; n != nil; n = n.next {
		out.pushBack(n.value)
	}
	return out
}

// clone rebuilds the chain. Nodes hold prev pointers, so chains are never
// shared between lists.
func (l *List[T]) clone() *List[T] {
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		out.pushBack(n.value)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural selection
// ─────────────────────────────────────────────────────────────────────────────

// Init returns all elements but the last.
func (l *List[T]) Init() *List[T] { return fromSlice(seq.Init(l.ToSlice())) }

// Tail returns all elements but the first.
func (l *List[T]) Tail() *List[T] { return fromSlice(seq.Tail(l.ToSlice())) }

// Slice returns the elements at positions [lo, hi).
// Panics unless 0 ≤ lo ≤ hi ≤ Len.
func (l *List[T]) Slice(lo, hi int) *List[T] { return fromSlice(seq.Slice(l.ToSlice(), lo, hi)) }

// Take returns at most n elements from the front.
func (l *List[T]) Take(n int) *List[T] { return fromSlice(seq.Take(l.ToSlice(), n)) }

// Skip drops the first n elements.
func (l *List[T]) Skip(n int) *List[T] { return fromSlice(seq.Skip(l.ToSlice(), n)) }

// TakeWhile returns the longest prefix satisfying fn.
func (l *List[T]) TakeWhile(fn func(T) bool) *List[T] {
	return fromSlice(seq.TakeWhile(l.ToSlice(), fn))
}

// SkipWhile drops the longest prefix satisfying fn.
func (l *List[T]) SkipWhile(fn func(T) bool) *List[T] {
	return fromSlice(seq.SkipWhile(l.ToSlice(), fn))
}

// StepBy returns every step-th element starting with the first.
// Panics when step <= 0.
func (l *List[T]) StepBy(step int) *List[T] { return fromSlice(seq.StepBy(l.ToSlice(), step)) }

// Rev returns the reversed list.
func (l *List[T]) Rev() *List[T] {
	out := &List[T]{}
	for n := l.tail; n != nil; n = n.prev {
		out.pushBack(n.value)
	}
	return out
}

// Repeat returns the list concatenated n times.
func (l *List[T]) Repeat(n int) *List[T] { return fromSlice(seq.Repeat(l.ToSlice(), n)) }

// ─────────────────────────────────────────────────────────────────────────────
// Positional editing
// ─────────────────────────────────────────────────────────────────────────────

// AddAt inserts x before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (l *List[T]) AddAt(index int, x T) *List[T] {
	return fromSlice(seq.AddAt(l.ToSlice(), index, x))
}

// AddAtMulti inserts xs before position index (appends when index = Len).
// Panics when index is outside [0, Len].
func (l *List[T]) AddAtMulti(index int, xs ...T) *List[T] {
	return fromSlice(seq.AddAtMulti(l.ToSlice(), index, xs))
}

// DeleteAt removes the element at index. Panics when out of range.
func (l *List[T]) DeleteAt(index int) *List[T] {
	return fromSlice(seq.DeleteAt(l.ToSlice(), index))
}

// DeleteAtMulti removes the elements at the given positions; duplicate
// indices collapse. Panics when any index is out of range.
func (l *List[T]) DeleteAtMulti(indices ...int) *List[T] {
	return fromSlice(seq.DeleteAtMulti(l.ToSlice(), indices))
}

// MoveAt moves the element at src so its position in the result is dst.
// Panics when either index is out of range.
func (l *List[T]) MoveAt(src, dst int) *List[T] {
	return fromSlice(seq.MoveAt(l.ToSlice(), src, dst))
}

// SwapAt exchanges the elements at i and j. Panics when out of range.
func (l *List[T]) SwapAt(i, j int) *List[T] {
	return fromSlice(seq.SwapAt(l.ToSlice(), i, j))
}

// SubstituteAt replaces the element at index with x. Panics when out of
// range.
func (l *List[T]) SubstituteAt(index int, x T) *List[T] {
	return fromSlice(seq.SubstituteAt(l.ToSlice(), index, x))
}

// SubstituteAtMulti replaces the elements at the paired positions; see
// [seq.SubstituteAtMulti] for the pairing and panic rules.
func (l *List[T]) SubstituteAtMulti(indices []int, xs []T) *List[T] {
	return fromSlice(seq.SubstituteAtMulti(l.ToSlice(), indices, xs))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & mapping
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the elements for which fn is true.
func (l *List[T]) Filter(fn func(T) bool) *List[T] {
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		if fn(n.value) {
			out.pushBack(n.value)
		}
	}
	return out
}

// Reject returns a new list with the elements for which fn is true removed.
func (l *List[T]) Reject(fn func(T) bool) *List[T] {
	return l.Filter(func(item T) bool { return !fn(item) })
}

// Partition splits the list into the elements satisfying fn and the rest.
func (l *List[T]) Partition(fn func(T) bool) (*List[T], *List[T]) {
	pass, fail := &List[T]{}, &List[T]{}
	for n := l.head; n != nil; n = n.next {
		if fn(n.value) {
			pass.pushBack(n.value)
		} else {
			fail.pushBack(n.value)
		}
	}
	return pass, fail
}

// Map transforms each element with fn, staying in the element type.
// For transformations to a different type use the package-level [Map].
func (l *List[T]) Map(fn func(T) T) *List[T] {
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		out.pushBack(fn(n.value))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking & ordering
// ─────────────────────────────────────────────────────────────────────────────

// Chunked splits the list into consecutive groups of size; the final
// group may be shorter. Panics when size <= 0.
func (l *List[T]) Chunked(size int) [][]T { return seq.Chunked(l.ToSlice(), size) }

// ChunkedExact splits into groups of exactly size, dropping a short tail.
// Panics when size <= 0.
func (l *List[T]) ChunkedExact(size int) [][]T { return seq.ChunkedExact(l.ToSlice(), size) }

// ChunkedBy starts a new chunk whenever split(prev, curr) reports true.
func (l *List[T]) ChunkedBy(split func(prev, curr T) bool) [][]T {
	return seq.ChunkedBy(l.ToSlice(), split)
}

// Windowed returns overlapping windows of the given size, step apart.
// Panics when size <= 0 or step <= 0.
func (l *List[T]) Windowed(size, step int) [][]T { return seq.Windowed(l.ToSlice(), size, step) }

// WindowedCircular is [List.Windowed] wrapping once around the end.
func (l *List[T]) WindowedCircular(size, step int) [][]T {
	return seq.WindowedCircular(l.ToSlice(), size, step)
}

// DivideBy splits the list around every element matching fn; matches are
// dropped and empty runs preserved.
func (l *List[T]) DivideBy(fn func(T) bool) [][]T { return seq.DivideBy(l.ToSlice(), fn) }

// Coalesce merges adjacent elements; see [seq.Coalesce].
func (l *List[T]) Coalesce(fn func(prev, curr T) (T, bool)) *List[T] {
	return fromSlice(seq.Coalesce(l.ToSlice(), fn))
}

// SortedBy returns the list sorted by less; the sort is stable.
func (l *List[T]) SortedBy(less func(a, b T) bool) *List[T] {
	return fromSlice(seq.SortedBy(l.ToSlice(), less))
}

// ─────────────────────────────────────────────────────────────────────────────
// Weaving & padding
// ─────────────────────────────────────────────────────────────────────────────

// Interleave alternates elements of l and other; the longer remainder is
// appended.
func (l *List[T]) Interleave(other *List[T]) *List[T] {
	return fromSlice(seq.Interleave(l.ToSlice(), other.ToSlice()))
}

// InterleaveExact alternates elements of l and other, stopping with the
// shorter side.
func (l *List[T]) InterleaveExact(other *List[T]) *List[T] {
	return fromSlice(seq.InterleaveExact(l.ToSlice(), other.ToSlice()))
}

// Intersperse inserts x after each run of every elements.
// Panics when every <= 0.
func (l *List[T]) Intersperse(every int, x T) *List[T] {
	return fromSlice(seq.Intersperse(l.ToSlice(), every, x))
}

// IntersperseWith inserts fn() after each run of every elements.
// Panics when every <= 0.
func (l *List[T]) IntersperseWith(every int, fn func() T) *List[T] {
	return fromSlice(seq.IntersperseWith(l.ToSlice(), every, fn))
}

// PadLeft extends the list to length n by prepending copies of x.
func (l *List[T]) PadLeft(n int, x T) *List[T] { return fromSlice(seq.PadLeft(l.ToSlice(), n, x)) }

// PadLeftWith extends to length n by prepending fn(position) elements.
func (l *List[T]) PadLeftWith(n int, fn func(int) T) *List[T] {
	return fromSlice(seq.PadLeftWith(l.ToSlice(), n, fn))
}

// PadRight extends the list to length n by appending copies of x.
func (l *List[T]) PadRight(n int, x T) *List[T] { return fromSlice(seq.PadRight(l.ToSlice(), n, x)) }

// PadRightWith extends to length n by appending fn(position) elements.
func (l *List[T]) PadRightWith(n int, fn func(int) T) *List[T] {
	return fromSlice(seq.PadRightWith(l.ToSlice(), n, fn))
}

// MergeBy merges l with another list already sorted under less; stable,
// ties prefer l. See the package-level [Merge] for cmp.Ordered elements.
func (l *List[T]) MergeBy(other *List[T], less func(a, b T) bool) *List[T] {
	return fromSlice(seq.MergeBy(l.ToSlice(), other.ToSlice(), less))
}
