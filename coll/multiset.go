package coll

// ─────────────────────────────────────────────────────────────────────────────
// Multiset containment
//
// One frequency-table primitive backs Subset, Superset, Includes,
// Equivalent, and, through the seq package, DeleteMulti and Intersect.
// All of them honor multiplicity: {2,2,3} is not a subset of {2,3}.
// ─────────────────────────────────────────────────────────────────────────────

// Frequencies returns the multiset view of c: element → occurrence count.
func Frequencies[T comparable](c Collection[T]) map[T]int {
	freq := make(map[T]int, c.Len())
	for item := range c.Elements() {
		freq[item]++
	}
	return freq
}

// FrequenciesBy returns key → occurrence count with keys extracted by fn.
func FrequenciesBy[T any, K comparable](c Collection[T], fn func(T) K) map[K]int {
	freq := make(map[K]int, c.Len())
	for item := range c.Elements() {
		freq[fn(item)]++
	}
	return freq
}

// FrequencyOf returns element → occurrence count for a plain slice.
func FrequencyOf[T comparable](items []T) map[T]int {
	freq := make(map[T]int, len(items))
	for _, item := range items {
		freq[item]++
	}
	return freq
}

// Subset reports whether c is a multiset subset of elements: every element
// of c occurs in elements at least as many times. Empty c → true.
func Subset[T comparable](c Collection[T], elements []T) bool {
	if c.Len() > len(elements) {
		return false
	}
	freq := FrequencyOf(elements)
	for item := range c.Elements() {
		if freq[item] == 0 {
			return false
		}
		freq[item]--
	}
	return true
}

// Superset reports whether c is a multiset superset of elements: every
// element of elements occurs in c at least as many times. Empty elements →
// true.
func Superset[T comparable](c Collection[T], elements []T) bool {
	if c.Len() < len(elements) {
		return false
	}
	freq := FrequencyOf(elements)
	remaining := len(elements)
	for item := range c.Elements() {
		if freq[item] > 0 {
			freq[item]--
			remaining--
			if remaining == 0 {
				return true
			}
		}
	}
	return remaining == 0
}

// Includes reports whether c contains every element of elements,
// multiplicity included. It is [Superset] under its traditional name.
func Includes[T comparable](c Collection[T], elements []T) bool {
	return Superset(c, elements)
}

// Equivalent reports whether c and elements are equal as multisets:
// the same elements with the same counts, order ignored.
func Equivalent[T comparable](c Collection[T], elements []T) bool {
	return c.Len() == len(elements) && Subset(c, elements)
}

// Disjoint reports whether c and elements share no element.
// Either side empty → true.
func Disjoint[T comparable](c Collection[T], elements []T) bool {
	seen := make(map[T]struct{}, c.Len())
	for item := range c.Elements() {
		seen[item] = struct{}{}
	}
	for _, item := range elements {
		if _, found := seen[item]; found {
			return false
		}
	}
	return true
}
