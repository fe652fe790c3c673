// Package vector provides Vector[T], the primary ordered container of this
// module: a generic, immutable-by-default wrapper around a slice of T with
// a rich, chainable API.
//
// # Creating a vector
//
//	v := vector.New(1, 2, 3, 4, 5)
//	v := vector.From([]string{"a", "b", "c"})
//	v := vector.Empty[int]()
//
// # Method chaining
//
//	result := vector.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Rev().
//	    Take(2)
//
// Every transforming method returns a new Vector, leaving the receiver
// unchanged, so vectors can be shared across goroutines for reading and
// chained without aliasing surprises.
//
// # Type-transforming and constrained operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type (or constrain it beyond `any`)
// are package-level functions:
//
//	squares := vector.Map(v, func(n int) int { return n * n })
//	groups  := vector.GroupBy(v, func(n int) int { return n % 3 })
//	uniq    := vector.Unique(v)            // needs comparable
//	top3    := vector.Largest(v, 3)        // needs cmp.Ordered
//
// # Capability surface
//
// Vector is ordered, indexable, double-ended, and rebuildable, so it
// carries the whole operation set: traversal queries, building ops,
// positional edits with the documented panic contract, chunking and
// windowing, weaving, sorting, and the combinatorial generators
// ([Vector.Combinations], [Vector.Powerset], [Vector.Partitions], …),
// which return plain [][]T ready for further processing.
package vector
