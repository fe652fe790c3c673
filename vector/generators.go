package vector

import "github.com/hasbyte1/go-container-utils/combi"

// Combinatorial generators. Each snapshots the vector's elements and
// returns a fully materialized [][]T in lexicographic index order; see the
// combi package for the enumeration rules and edge cases.

// Combinations returns all size-k subsets of the vector's elements.
func (v *Vector[T]) Combinations(k int) [][]T { return combi.Combinations(v.items, k) }

// CombinationsMulti returns all size-k multisets (combinations with
// repetition).
func (v *Vector[T]) CombinationsMulti(k int) [][]T { return combi.CombinationsMulti(v.items, k) }

// CartesianProduct returns all k-tuples over the vector's elements.
func (v *Vector[T]) CartesianProduct(k int) [][]T { return combi.CartesianProduct(v.items, k) }

// Variations returns all size-k ordered selections without repetition.
func (v *Vector[T]) Variations(k int) [][]T { return combi.Variations(v.items, k) }

// Powerset returns every subset, ordered by size then lexicographically.
func (v *Vector[T]) Powerset() [][]T { return combi.Powerset(v.items) }

// Partitions returns every set partition of the vector's elements.
func (v *Vector[T]) Partitions() [][][]T { return combi.Partitions(v.items) }
