package maps

import (
	"cmp"
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/hasbyte1/go-container-utils/coll"
)

// SortedMap is a generic, immutable key-value map iterating in ascending
// key order. Keys and values live in parallel slices; lookup is a binary
// search.
type SortedMap[K cmp.Ordered, V any] struct {
	keys   []K // sorted, no duplicates
	values []V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewSorted creates an empty SortedMap.
func NewSorted[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{keys: []K{}, values: []V{}}
}

// SortedFrom creates a SortedMap from a plain map.
func SortedFrom[K cmp.Ordered, V any](entries map[K]V) *SortedMap[K, V] {
	keys := make([]K, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = entries[k]
	}
	return &SortedMap[K, V]{keys: keys, values: values}
}

// SortedFromPairs creates a SortedMap from key-value pairs; on duplicate
// keys the last pair wins.
func SortedFromPairs[K cmp.Ordered, V any](pairs []coll.Pair[K, V]) *SortedMap[K, V] {
	entries := make(map[K]V, len(pairs))
	for _, p := range pairs {
		entries[p.First] = p.Second
	}
	return SortedFrom(entries)
}

// search returns the insertion point of k and whether k is present.
func (m *SortedMap[K, V]) search(k K) (int, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= k })
	return i, i < len(m.keys) && m.keys[i] == k
}

func (m *SortedMap[K, V]) cloneSlices() ([]K, []V) {
	keys := make([]K, len(m.keys))
	values := make([]V, len(m.values))
	copy(keys, m.keys)
	copy(values, m.values)
	return keys, values
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int { return len(m.keys) }

// IsEmpty reports whether the map contains no entries.
func (m *SortedMap[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// Get returns the value stored under k together with a presence flag.
// O(log n).
func (m *SortedMap[K, V]) Get(k K) (V, bool) {
	if i, ok := m.search(k); ok {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// GetOr returns the value stored under k, or fallback when absent.
func (m *SortedMap[K, V]) GetOr(k K, fallback V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return fallback
}

// ContainsKey reports whether k is present. O(log n).
func (m *SortedMap[K, V]) ContainsKey(k K) bool {
	_, ok := m.search(k)
	return ok
}

// MinKey returns the smallest key. O(1).
func (m *SortedMap[K, V]) MinKey() (K, bool) {
	if len(m.keys) == 0 {
		var zero K
		return zero, false
	}
	return m.keys[0], true
}

// MaxKey returns the largest key. O(1).
func (m *SortedMap[K, V]) MaxKey() (K, bool) {
	if len(m.keys) == 0 {
		var zero K
		return zero, false
	}
	return m.keys[len(m.keys)-1], true
}

// ToKeys returns the keys ascending.
func (m *SortedMap[K, V]) ToKeys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// ToValues returns the values in ascending key order.
func (m *SortedMap[K, V]) ToValues() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)
	return out
}

// ToMap returns the entries as a fresh plain map.
func (m *SortedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for i, k := range m.keys {
		out[k] = m.values[i]
	}
	return out
}

// ToSlice returns the entries as pairs in ascending key order.
func (m *SortedMap[K, V]) ToSlice() []coll.Pair[K, V] {
	out := make([]coll.Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = coll.Pair[K, V]{First: k, Second: m.values[i]}
	}
	return out
}

// String returns a human-readable representation in ascending key order.
// It implements [fmt.Stringer].
func (m *SortedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, m.values[i])
	}
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Elements yields every entry as a pair in ascending key order.
// Restartable.
func (m *SortedMap[K, V]) Elements() iter.Seq[coll.Pair[K, V]] {
	return func(yield func(coll.Pair[K, V]) bool) {
		for i, k := range m.keys {
			if !yield(coll.Pair[K, V]{First: k, Second: m.values[i]}) {
				return
			}
		}
	}
}

// Keys yields every key ascending.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in ascending key order.
func (m *SortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Each calls fn for every entry in ascending key order.
func (m *SortedMap[K, V]) Each(fn func(k K, v V)) {
	for i, k := range m.keys {
		fn(k, m.values[i])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new map with k set to v, overwriting any previous value.
func (m *SortedMap[K, V]) Add(k K, v V) *SortedMap[K, V] {
	i, ok := m.search(k)
	if ok {
		keys, values := m.cloneSlices()
		values[i] = v
		return &SortedMap[K, V]{keys: keys, values: values}
	}
	keys := make([]K, 0, len(m.keys)+1)
	keys = append(keys, m.keys[:i]...)
	keys = append(keys, k)
	keys = append(keys, m.keys[i:]...)
	values := make([]V, 0, len(m.values)+1)
	values = append(values, m.values[:i]...)
	values = append(values, v)
	values = append(values, m.values[i:]...)
	return &SortedMap[K, V]{keys: keys, values: values}
}

// AddMulti returns a new map with all pairs set; on duplicate keys the
// last pair wins.
func (m *SortedMap[K, V]) AddMulti(pairs ...coll.Pair[K, V]) *SortedMap[K, V] {
	entries := m.ToMap()
	for _, p := range pairs {
		entries[p.First] = p.Second
	}
	return SortedFrom(entries)
}

// Delete returns a new map without k.
func (m *SortedMap[K, V]) Delete(k K) *SortedMap[K, V] {
	i, ok := m.search(k)
	if !ok {
		keys, values := m.cloneSlices()
		return &SortedMap[K, V]{keys: keys, values: values}
	}
	keys := make([]K, 0, len(m.keys)-1)
	keys = append(keys, m.keys[:i]...)
	keys = append(keys, m.keys[i+1:]...)
	values := make([]V, 0, len(m.values)-1)
	values = append(values, m.values[:i]...)
	values = append(values, m.values[i+1:]...)
	return &SortedMap[K, V]{keys: keys, values: values}
}

// DeleteMulti returns a new map without any of ks.
func (m *SortedMap[K, V]) DeleteMulti(ks ...K) *SortedMap[K, V] {
	entries := m.ToMap()
	for _, k := range ks {
		delete(entries, k)
	}
	return SortedFrom(entries)
}

// Filter returns a new map with only the entries for which fn is true.
func (m *SortedMap[K, V]) Filter(fn func(k K, v V) bool) *SortedMap[K, V] {
	keys := make([]K, 0, len(m.keys))
	values := make([]V, 0, len(m.values))
	for i, k := range m.keys {
		if fn(k, m.values[i]) {
			keys = append(keys, k)
			values = append(values, m.values[i])
		}
	}
	return &SortedMap[K, V]{keys: keys, values: values}
}

// FilterKeys returns a new map with only the entries whose key satisfies
// fn.
func (m *SortedMap[K, V]) FilterKeys(fn func(K) bool) *SortedMap[K, V] {
	return m.Filter(func(k K, _ V) bool { return fn(k) })
}

// FilterValues returns a new map with only the entries whose value
// satisfies fn.
func (m *SortedMap[K, V]) FilterValues(fn func(V) bool) *SortedMap[K, V] {
	return m.Filter(func(_ K, v V) bool { return fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Key-view predicates
// ─────────────────────────────────────────────────────────────────────────────

// Subset reports whether the map's key view is a multiset subset of the
// keys list. Each key of the map counts once, so every key must appear in
// keys at least once. Values are ignored.
func (m *SortedMap[K, V]) Subset(keys []K) bool {
	freq := coll.FrequencyOf(keys)
	for _, k := range m.keys {
		if freq[k] == 0 {
			return false
		}
	}
	return true
}

// Superset reports whether the keys list is a multiset subset of the
// map's key view. Each key of the map counts once, so a key repeated in
// keys is never contained. Values are ignored.
func (m *SortedMap[K, V]) Superset(keys []K) bool {
	for k, count := range coll.FrequencyOf(keys) {
		if count > 1 || !m.ContainsKey(k) {
			return false
		}
	}
	return true
}
