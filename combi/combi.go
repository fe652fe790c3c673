package combi

// tupleFamily drives the shared enumeration: first seeds the index vector
// (reporting whether any tuple exists at all) and next advances it to the
// lexicographically following tuple, returning false on exhaustion.
type tupleFamily struct {
	first func(idx []int) bool
	next  func(idx []int) bool
}

// enumerate gathers every index tuple of length k into value tuples.
// sizeHint pre-sizes the outer slice; pass 0 when the count is unknown or
// does not fit in an int.
func enumerate[T any](values []T, k, sizeHint int, family tupleFamily) [][]T {
	out := make([][]T, 0, sizeHint)
	idx := make([]int, k)
	if !family.first(idx) {
		return out
	}
	for {
		tuple := make([]T, k)
		for i, v := range idx {
			tuple[i] = values[v]
		}
		out = append(out, tuple)
		if !family.next(idx) {
			return out
		}
	}
}

// Combinations returns all size-k subsets of items in lexicographic index
// order. k = 0 yields one empty subset; k > len(items) yields none.
func Combinations[T any](items []T, k int) [][]T {
	n := len(items)
	return enumerate(items, k, binomial(n, k), tupleFamily{
		first: func(idx []int) bool {
			if k > n {
				return false
			}
			for i := range idx {
				idx[i] = i
			}
			return true
		},
		next: func(idx []int) bool {
			for i := k - 1; i >= 0; i-- {
				if idx[i] < n-k+i {
					idx[i]++
					for j := i + 1; j < k; j++ {
						idx[j] = idx[j-1] + 1
					}
					return true
				}
			}
			return false
		},
	})
}

// CombinationsMulti returns all size-k multisets of items (combinations
// with repetition) in lexicographic index order: C(n+k-1, k) tuples.
func CombinationsMulti[T any](items []T, k int) [][]T {
	n := len(items)
	return enumerate(items, k, binomial(n+k-1, k), tupleFamily{
		first: func(idx []int) bool {
			return n > 0 || k == 0
		},
		next: func(idx []int) bool {
			for i := k - 1; i >= 0; i-- {
				if idx[i] < n-1 {
					idx[i]++
					for j := i + 1; j < k; j++ {
						idx[j] = idx[i]
					}
					return true
				}
			}
			return false
		},
	})
}

// CartesianProduct returns all k-tuples over items (items^k) in
// lexicographic index order: n^k tuples.
func CartesianProduct[T any](items []T, k int) [][]T {
	n := len(items)
	return enumerate(items, k, intPow(n, k), tupleFamily{
		first: func(idx []int) bool {
			return n > 0 || k == 0
		},
		next: func(idx []int) bool {
			for i := k - 1; i >= 0; i-- {
				if idx[i] < n-1 {
					idx[i]++
					for j := i + 1; j < k; j++ {
						idx[j] = 0
					}
					return true
				}
			}
			return false
		},
	})
}

// Variations returns all size-k ordered selections of distinct elements
// (k-permutations) in lexicographic index order: n!/(n-k)! tuples.
func Variations[T any](items []T, k int) [][]T {
	n := len(items)
	used := make([]bool, n)
	return enumerate(items, k, fallingFactorial(n, k), tupleFamily{
		first: func(idx []int) bool {
			if k > n {
				return false
			}
			for i := range idx {
				idx[i] = i
				used[i] = true
			}
			return true
		},
		next: func(idx []int) bool {
			for i := k - 1; i >= 0; i-- {
				used[idx[i]] = false
				advanced := false
				for v := idx[i] + 1; v < n; v++ {
					if !used[v] {
						idx[i] = v
						used[v] = true
						advanced = true
						break
					}
				}
				if !advanced {
					continue
				}
				// Refill the suffix with the smallest unused indices.
				v := 0
				for j := i + 1; j < k; j++ {
					for used[v] {
						v++
					}
					idx[j] = v
					used[v] = true
				}
				return true
			}
			return false
		},
	})
}

// Powerset returns every subset of items: the empty subset followed by all
// combinations of size 1, 2, …, n: 2^n subsets, ordered by size and
// lexicographically within each size.
func Powerset[T any](items []T) [][]T {
	n := len(items)
	hint := 0
	if n < 31 {
		hint = 1 << n
	}
	out := make([][]T, 0, hint)
	for k := 0; k <= n; k++ {
		out = append(out, Combinations(items, k)...)
	}
	return out
}

// binomial returns C(n, k), or 0 when the parameters select nothing.
// Saturates at 0 capacity-hint on overflow rather than panicking.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		next := result * (n - k + i) / i
		if next < result {
			return 0 // overflowed; callers only use this as a size hint
		}
		result = next
	}
	return result
}

// intPow returns n^k, saturating to 0 on overflow (size hint only).
func intPow(n, k int) int {
	result := 1
	for i := 0; i < k; i++ {
		next := result * n
		if n != 0 && next/n != result {
			return 0
		}
		result = next
	}
	return result
}

// fallingFactorial returns n·(n-1)·…·(n-k+1), saturating to 0 on overflow.
func fallingFactorial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		next := result * (n - i)
		if result != 0 && next/result != n-i {
			return 0
		}
		result = next
	}
	return result
}
