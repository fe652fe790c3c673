package convert

import (
	"cmp"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/deque"
	"github.com/hasbyte1/go-container-utils/list"
	"github.com/hasbyte1/go-container-utils/maps"
	"github.com/hasbyte1/go-container-utils/pqueue"
	"github.com/hasbyte1/go-container-utils/sets"
	"github.com/hasbyte1/go-container-utils/vector"
)

// ToSlice drains c into a fresh slice, preserving order and multiplicity.
func ToSlice[T any](c coll.Collection[T]) []T { return coll.ToSlice(c) }

// ToVector drains c into a Vector.
func ToVector[T any](c coll.Collection[T]) *vector.Vector[T] {
	return vector.FromSeq(c.Elements())
}

// ToList drains c into a List.
func ToList[T any](c coll.Collection[T]) *list.List[T] {
	return list.FromSeq(c.Elements())
}

// ToDeque drains c into a Deque.
func ToDeque[T any](c coll.Collection[T]) *deque.Deque[T] {
	return deque.FromSeq(c.Elements())
}

// ToHashSet drains c into a HashSet; duplicates collapse.
func ToHashSet[T comparable](c coll.Collection[T]) *sets.HashSet[T] {
	return sets.HashFromSeq(c.Elements())
}

// ToSortedSet drains c into a SortedSet; duplicates collapse.
func ToSortedSet[T cmp.Ordered](c coll.Collection[T]) *sets.SortedSet[T] {
	return sets.SortedFromSeq(c.Elements())
}

// ToHeap drains c into a Heap ordered by less; multiplicity is preserved.
func ToHeap[T any](c coll.Collection[T], less func(a, b T) bool) *pqueue.Heap[T] {
	return pqueue.FromSeq(less, c.Elements())
}

// ToHashMap drains a collection of pairs into a HashMap; on duplicate
// keys the last pair wins.
func ToHashMap[K comparable, V any](c coll.Collection[coll.Pair[K, V]]) *maps.HashMap[K, V] {
	return maps.HashFromPairs(coll.ToSlice(c))
}

// ToSortedMap drains a collection of pairs into a SortedMap; on duplicate
// keys the last pair wins.
func ToSortedMap[K cmp.Ordered, V any](c coll.Collection[coll.Pair[K, V]]) *maps.SortedMap[K, V] {
	return maps.SortedFromPairs(coll.ToSlice(c))
}
