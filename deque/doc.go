// Package deque provides Deque, a generic double-ended queue backed by a
// ring buffer.
//
// A Deque is immutable: PushFront, PushBack, PopFront and PopBack return
// a new Deque and leave the receiver untouched. When a pipeline needs to
// build a deque incrementally, [Builder] offers the same four operations
// with O(1) amortized cost on a private buffer; [Builder.Deque] seals the
// result.
//
//	d := deque.New(2, 3).PushFront(1).PushBack(4)
//	front, _ := d.Front() // 1
//	back, _ := d.Back()   // 4
//
// Bulk transforms materialize the elements and delegate to the seq
// kernel, exactly like the list package. Type-changing transforms and
// element-type-constrained operations are package-level functions.
package deque
