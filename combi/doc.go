// Package combi enumerates combinatorial selections of a sequence:
// combinations (with and without repetition), k-ary cartesian products,
// variations (k-permutations), the powerset, and full set partitions.
//
// All generators are deterministic and lexicographic: they snapshot the
// input, walk index tuples in strictly increasing lexicographic order, and
// materialize the full result as [][]T (or [][][]T for [Partitions]);
// there is no lazy iteration. Outer result slices are pre-sized from the
// closed-form counts when those fit in an int:
//
//	combi.Combinations([]int{1, 2, 3}, 2)
//	// → [[1 2] [1 3] [2 3]]            (C(3,2) = 3 tuples)
//
//	combi.CartesianProduct([]int{0, 1}, 3)
//	// → all 8 binary triples, 000 … 111
//
// Size-zero selections follow the mathematical convention: k = 0 yields
// exactly one empty tuple; k greater than the population (for families
// without repetition) yields none.
//
// The four index-tuple families share one driver, a first/next pair over
// a small index vector, parameterized on how a slot advances and how the
// slots to its right refill (strictly increasing for combinations, copied
// for multiset combinations, reset to zero for products, next-unused for
// variations).
package combi
