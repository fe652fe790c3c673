// Package sets provides two generic set containers with key-unique
// semantics: HashSet, a map-backed set iterating in arbitrary but stable
// order, and SortedSet, a sorted-slice set with ascending iteration and
// binary-search membership.
//
// Both are immutable: Add, Delete, Union and the other transforms return
// a new set. Adding an element that is already present is a no-op that
// returns an equal set.
//
//	a := sets.NewHash(1, 2, 3)
//	b := sets.NewHash(3, 4)
//	a.Union(b).Len()     // 4
//	a.Intersect(b).Len() // 1
//
// A HashSet iterates in first-insertion order, so repeated passes over
// the same value always agree; the order still carries no meaning beyond
// that. Use SortedSet when a meaningful order matters:
//
//	s := sets.NewSorted(3, 1, 2)
//	s.ToSlice() // [1 2 3]
package sets
