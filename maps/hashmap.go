package maps

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hasbyte1/go-container-utils/coll"
)

// HashMap is a generic, immutable key-value map. Iteration order is
// arbitrary but stable for the lifetime of the value: a bookkeeping slice
// records first-insertion order of the keys, and every pass replays it.
type HashMap[K comparable, V any] struct {
	entries map[K]V
	order   []K // first-insertion order of the keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewHash creates an empty HashMap.
func NewHash[K comparable, V any]() *HashMap[K, V] { return emptyHash[K, V](0) }

// HashFrom creates a HashMap from a plain map; the insertion order is
// fixed arbitrarily at construction.
func HashFrom[K comparable, V any](entries map[K]V) *HashMap[K, V] {
	out := emptyHash[K, V](len(entries))
	for k, v := range entries {
		out.set(k, v)
	}
	return out
}

// HashFromPairs creates a HashMap from key-value pairs; on duplicate keys
// the last pair wins, keeping the key's first position.
func HashFromPairs[K comparable, V any](pairs []coll.Pair[K, V]) *HashMap[K, V] {
	out := emptyHash[K, V](len(pairs))
	for _, p := range pairs {
		out.set(p.First, p.Second)
	}
	return out
}

func emptyHash[K comparable, V any](capacity int) *HashMap[K, V] {
	return &HashMap[K, V]{
		entries: make(map[K]V, capacity),
		order:   make([]K, 0, capacity),
	}
}

// set stores k→v in place. Only constructors and clone-then-edit paths
// may call it: once a HashMap has been handed out it is never mutated.
func (m *HashMap[K, V]) set(k K, v V) {
	if _, ok := m.entries[k]; !ok {
		m.order = append(m.order, k)
	}
	m.entries[k] = v
}

// unset removes k in place, compacting the order slice.
func (m *HashMap[K, V]) unset(k K) {
	if _, ok := m.entries[k]; !ok {
		return
	}
	delete(m.entries, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// clone copies the map with room for extra more entries.
func (m *HashMap[K, V]) clone(extra int) *HashMap[K, V] {
	out := emptyHash[K, V](len(m.order) + extra)
	for _, k := range m.order {
		out.set(k, m.entries[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (m *HashMap[K, V]) Len() int { return len(m.order) }

// IsEmpty reports whether the map contains no entries.
func (m *HashMap[K, V]) IsEmpty() bool { return len(m.order) == 0 }

// Get returns the value stored under k together with a presence flag.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// GetOr returns the value stored under k, or fallback when absent.
func (m *HashMap[K, V]) GetOr(k K, fallback V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return fallback
}

// ContainsKey reports whether k is present.
func (m *HashMap[K, V]) ContainsKey(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// ToKeys returns the keys in the map's iteration order.
func (m *HashMap[K, V]) ToKeys() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// ToValues returns the values in the map's iteration order.
func (m *HashMap[K, V]) ToValues() []V {
	out := make([]V, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.entries[k])
	}
	return out
}

// ToMap returns the entries as a fresh plain map.
func (m *HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// ToSlice returns the entries as pairs in the map's iteration order.
func (m *HashMap[K, V]) ToSlice() []coll.Pair[K, V] {
	out := make([]coll.Pair[K, V], 0, len(m.order))
	for _, k := range m.order {
		out = append(out, coll.Pair[K, V]{First: k, Second: m.entries[k]})
	}
	return out
}

// String returns a human-readable representation in the map's iteration
// order. It implements [fmt.Stringer].
func (m *HashMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, k := range m.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, m.entries[k])
	}
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Elements yields every entry as a pair, in the map's stable iteration
// order. Restartable: every pass yields the same order.
func (m *HashMap[K, V]) Elements() iter.Seq[coll.Pair[K, V]] {
	return func(yield func(coll.Pair[K, V]) bool) {
		for _, k := range m.order {
			if !yield(coll.Pair[K, V]{First: k, Second: m.entries[k]}) {
				return
			}
		}
	}
}

// Keys yields every key in the map's iteration order.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in the map's iteration order.
func (m *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.order {
			if !yield(m.entries[k]) {
				return
			}
		}
	}
}

// Each calls fn for every entry in the map's iteration order.
func (m *HashMap[K, V]) Each(fn func(k K, v V)) {
	for _, k := range m.order {
		fn(k, m.entries[k])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new map with k set to v, overwriting any previous value.
func (m *HashMap[K, V]) Add(k K, v V) *HashMap[K, V] {
	out := m.clone(1)
	out.set(k, v)
	return out
}

// AddMulti returns a new map with all pairs set; on duplicate keys the
// last pair wins.
func (m *HashMap[K, V]) AddMulti(pairs ...coll.Pair[K, V]) *HashMap[K, V] {
	out := m.clone(len(pairs))
	for _, p := range pairs {
		out.set(p.First, p.Second)
	}
	return out
}

// Delete returns a new map without k.
func (m *HashMap[K, V]) Delete(k K) *HashMap[K, V] {
	out := m.clone(0)
	out.unset(k)
	return out
}

// DeleteMulti returns a new map without any of ks.
func (m *HashMap[K, V]) DeleteMulti(ks ...K) *HashMap[K, V] {
	out := m.clone(0)
	for _, k := range ks {
		out.unset(k)
	}
	return out
}

// Filter returns a new map with only the entries for which fn is true.
func (m *HashMap[K, V]) Filter(fn func(k K, v V) bool) *HashMap[K, V] {
	out := emptyHash[K, V](len(m.order))
	for _, k := range m.order {
		if v := m.entries[k]; fn(k, v) {
			out.set(k, v)
		}
	}
	return out
}

// FilterKeys returns a new map with only the entries whose key satisfies
// fn.
func (m *HashMap[K, V]) FilterKeys(fn func(K) bool) *HashMap[K, V] {
	return m.Filter(func(k K, _ V) bool { return fn(k) })
}

// FilterValues returns a new map with only the entries whose value
// satisfies fn.
func (m *HashMap[K, V]) FilterValues(fn func(V) bool) *HashMap[K, V] {
	return m.Filter(func(_ K, v V) bool { return fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Key-view predicates
// ─────────────────────────────────────────────────────────────────────────────

// Subset reports whether the map's key view is a multiset subset of the
// keys list. Each key of the map counts once, so every key must appear in
// keys at least once. Values are ignored.
func (m *HashMap[K, V]) Subset(keys []K) bool {
	freq := coll.FrequencyOf(keys)
	for _, k := range m.order {
		if freq[k] == 0 {
			return false
		}
	}
	return true
}

// Superset reports whether the keys list is a multiset subset of the
// map's key view. Each key of the map counts once, so a key repeated in
// keys is never contained. Values are ignored.
func (m *HashMap[K, V]) Superset(keys []K) bool {
	for k, count := range coll.FrequencyOf(keys) {
		if count > 1 || !m.ContainsKey(k) {
			return false
		}
	}
	return true
}
