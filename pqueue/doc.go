// Package pqueue provides Heap, a generic immutable binary max-heap
// ordered by a user-supplied less function.
//
// Peek returns the largest element under less; Pop returns it together
// with the heap without it. Both leave the receiver untouched, as does
// every other operation.
//
//	h := pqueue.New(func(a, b int) bool { return a < b }, 3, 1, 4)
//	top, _ := h.Peek()        // 4
//	top, rest, _ := h.Pop()   // 4, heap of {3, 1}
//
// Heap order is not an observable sequence: Elements yields the backing
// array in unspecified order. Use [Heap.ToSorted] for the pop order.
package pqueue
