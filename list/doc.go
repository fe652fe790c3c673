// Package list provides List, a generic immutable doubly-linked list.
//
// A List keeps its elements in a chain of nodes with head and tail
// pointers, so First, Last and Len are O(1) and iteration runs in both
// directions without extra allocation. Every transform returns a new
// List and leaves the receiver untouched.
//
// Positional and bulk operations share the slice kernel of the seq
// package: the list materializes its elements, applies the operation and
// rebuilds a chain. Use [vector.Vector] when the workload is dominated by
// such bulk transforms; use List when the workload is dominated by
// front/back access.
//
//	l := list.New(2, 3).AddFront(1).AddBack(4)
//	first, _ := l.First() // 1
//	last, _ := l.Last()   // 4
//
// Type-changing transforms and operations that constrain the element type
// are package-level functions, mirroring the vector package:
//
//	labels := list.Map(l, strconv.Itoa)
//	total := list.Sum(l)
package list
