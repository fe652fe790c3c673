// Package seq is the sequence kernel of this module: generic functions
// over plain []T covering positional editing, chunking, windowing,
// weaving, ordering, and multiset-aware surgery.
//
// Every function returns a freshly allocated slice and never mutates its
// input, so results can be chained and inputs shared freely. The only
// exceptions are the *Ref helpers, which deliberately return subslices of
// the input (zero allocation) and say so in their names:
//
//	seq.Take([]int{1, 2, 3}, 2)    // fresh copy [1 2]
//	seq.TakeRef([]int{1, 2, 3}, 2) // subslice of the input
//
// # Index semantics
//
// Indices that access an existing position must satisfy 0 ≤ i < n and
// panic otherwise; insertion indices ([AddAt], [AddAtMulti]) additionally
// permit i = n. Index lists passed to the *AtMulti editors are
// unique-normalized: a duplicated index collapses to one edit. These
// panics are part of the contract: they signal caller bugs, not
// recoverable conditions:
//
//   - any out-of-range index in a positional edit
//   - [Chunked] / [Windowed] with size = 0 (or a zero step)
//   - [Intersperse] with every = 0
//   - [StepBy] with step = 0
//
// Absence, by contrast, is never a panic: [First], [Last], [Reduce] and
// friends return (zero value, false) on empty input.
//
// # Multiset operations
//
// [DeleteMulti], [Intersect], [Subset], [Superset] honor element counts:
//
//	seq.Intersect([]int{1, 2, 2, 3}, []int{2, 2, 3, 3}) // → [2 2 3]
//	seq.DeleteMulti([]int{1, 2, 2, 3}, []int{2, 2})     // → [1 3]
//
// They share one frequency-table primitive with the coll package.
//
// # Ordering guarantees
//
// Operations preserve the relative order of the input except where the
// name says otherwise (Sorted*, [Largest], [Smallest]). [Unique] keeps
// first occurrences; [Duplicates] emits each repeated value once, at the
// position of its second occurrence; [Merge] is stable with ties
// preferring the receiver side.
package seq
