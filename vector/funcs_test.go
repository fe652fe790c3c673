package vector_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/vector"
)

func TestMapToOtherType(t *testing.T) {
	v := vector.New(1, 2, 3)

	labels := vector.Map(v, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, labels.ToSlice())
}

func TestFlatMapAndFlat(t *testing.T) {
	v := vector.New("go", "up")

	letters := vector.FlatMap(v, func(s string) []rune { return []rune(s) })
	assert.Equal(t, []rune{'g', 'o', 'u', 'p'}, letters.ToSlice())

	nested := vector.New([]int{1, 2}, []int{}, []int{3})
	assert.Equal(t, []int{1, 2, 3}, vector.Flat(nested).ToSlice())
}

func TestFilterMapAndFindMap(t *testing.T) {
	v := vector.New("1", "x", "3")
	parse := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	}

	assert.Equal(t, []int{1, 3}, vector.FilterMap(v, parse).ToSlice())

	first, ok := vector.FindMap(v, parse)
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	_, ok = vector.FindMap(vector.New("a", "b"), parse)
	assert.False(t, ok)
}

func TestPartitionMap(t *testing.T) {
	v := vector.New(1, 2, 3, 4)

	evens, odds := vector.PartitionMap(v, func(n int) (string, int, bool) {
		return strconv.Itoa(n), n, n%2 == 0
	})
	assert.Equal(t, []string{"2", "4"}, evens.ToSlice())
	assert.Equal(t, []int{1, 3}, odds.ToSlice())
}

func TestFoldToAndScanTo(t *testing.T) {
	v := vector.New(1, 2, 3)

	joined := vector.FoldTo(v, "", func(acc string, n int) string { return acc + strconv.Itoa(n) })
	assert.Equal(t, "123", joined)

	reversed := vector.RFoldTo(v, "", func(acc string, n int) string { return acc + strconv.Itoa(n) })
	assert.Equal(t, "321", reversed)

	steps := vector.ScanTo(v, "", func(acc string, n int) string { return acc + strconv.Itoa(n) })
	assert.Equal(t, []string{"1", "12", "123"}, steps.ToSlice())
}

func TestMapWhileTo(t *testing.T) {
	v := vector.New(1, 2, 3)

	out := vector.MapWhileTo(v, func(n int) (string, bool) { return strconv.Itoa(n), n < 3 })
	assert.Equal(t, []string{"1", "2"}, out.ToSlice())
}

func TestEnumerate(t *testing.T) {
	v := vector.New("a", "b")
	pairs := vector.Enumerate(v)

	first, _ := pairs.Get(0)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "a", first.Value)
	assert.Equal(t, 2, pairs.Len())
}

func TestGroupByPreservesOrder(t *testing.T) {
	v := vector.New(1, 2, 3, 4, 5)
	groups := vector.GroupBy(v, func(n int) int { return n % 2 })

	assert.Equal(t, []int{2, 4}, groups[0].ToSlice())
	assert.Equal(t, []int{1, 3, 5}, groups[1].ToSlice())
}

func TestGroupByPartitionsInput(t *testing.T) {
	v := vector.New(7, 42, 13, 0, 42, 9, 13, 100, 7, 7)
	key := func(n int) int { return n % 3 }
	groups := vector.GroupBy(v, key)

	var regrouped []int
	wantKeys := map[int]bool{}
	for item := range v.Elements() {
		wantKeys[key(item)] = true
	}
	gotKeys := map[int]bool{}
	for k, group := range groups {
		gotKeys[k] = true
		regrouped = append(regrouped, group.ToSlice()...)
		assert.NotZero(t, group.Len(), "no empty groups")
		for item := range group.Elements() {
			assert.Equal(t, k, key(item))
		}
	}

	assert.True(t, vector.Equivalent(v, regrouped),
		"groups together hold exactly the input elements")
	assert.Equal(t, wantKeys, gotKeys)
}

func TestGroupFoldAndGroupReduce(t *testing.T) {
	v := vector.New(1, 2, 3, 4)

	sums := vector.GroupFold(v, func(n int) int { return n % 2 }, 10, func(acc, n int) int { return acc + n })
	assert.Equal(t, 14, sums[1], "seed applied once per key")
	assert.Equal(t, 16, sums[0])

	maxes := vector.GroupReduce(v, func(n int) int { return n % 2 }, func(a, b int) int {
		if b > a {
			return b
		}
		return a
	})
	assert.Equal(t, 3, maxes[1])
	assert.Equal(t, 4, maxes[0])
}

func TestKeyByLastWins(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	v := vector.New(user{1, "old"}, user{2, "two"}, user{1, "new"})

	byID := vector.KeyBy(v, func(u user) int { return u.id })
	assert.Equal(t, "new", byID[1].name)
	assert.Equal(t, "two", byID[2].name)
}

func TestZipUnzip(t *testing.T) {
	nums := vector.New(1, 2, 3)
	tags := vector.New("a", "b")

	zipped := vector.Zip(nums, tags)
	assert.Equal(t, []coll.Pair[int, string]{{First: 1, Second: "a"}, {First: 2, Second: "b"}}, zipped.ToSlice())

	padded := vector.ZipPadded(nums, tags,
		func(int) int { return 0 },
		func(int) string { return "?" })
	assert.Equal(t, 3, padded.Len())
	last, _ := padded.Get(2)
	assert.Equal(t, coll.Pair[int, string]{First: 3, Second: "?"}, last)

	as, bs := vector.Unzip(zipped)
	assert.Equal(t, []int{1, 2}, as.ToSlice())
	assert.Equal(t, []string{"a", "b"}, bs.ToSlice())
}

func TestComparableSearches(t *testing.T) {
	v := vector.New(1, 2, 3, 2)

	assert.True(t, vector.Contains(v, 2))
	assert.False(t, vector.Contains(v, 9))
	assert.Equal(t, 1, vector.PositionOf(v, 2))
	assert.Equal(t, -1, vector.PositionOf(v, 9))
	assert.Equal(t, 1, vector.PositionSeq(v, []int{2, 3}))
	assert.Equal(t, -1, vector.PositionSeq(v, []int{3, 1}))
}

func TestMultisetEditing(t *testing.T) {
	v := vector.New(1, 2, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, vector.Delete(v, 2).ToSlice())
	assert.Equal(t, []int{1, 3}, vector.DeleteMulti(v, []int{2, 2}).ToSlice())
	assert.Equal(t, []int{2, 3}, vector.DeleteMulti(v, []int{1, 2, 9}).ToSlice())

	assert.Equal(t, []int{1, 9, 2, 3}, vector.Substitute(v, 2, 9).ToSlice())
	assert.Equal(t, []int{1, 8, 9, 3}, vector.SubstituteMulti(v, []int{2, 2}, []int{8, 9}).ToSlice())

	assert.Equal(t, []int{2, 2, 3}, vector.Intersect(v, []int{3, 2, 2, 7}).ToSlice())
}

func TestDivide(t *testing.T) {
	v := vector.New(1, 0, 2, 3, 0)
	assert.Equal(t, [][]int{{1}, {2, 3}, {}}, vector.Divide(v, 0))
}

func TestUniqueDuplicates(t *testing.T) {
	v := vector.New(1, 2, 1, 3, 2, 1)

	assert.Equal(t, []int{1, 2, 3}, vector.Unique(v).ToSlice())
	assert.Equal(t, []int{1, 2}, vector.Duplicates(v).ToSlice())

	words := vector.New("Go", "go", "up", "GO")
	uniq := vector.UniqueBy(words, func(s string) int { return len(s) })
	assert.Equal(t, []string{"Go"}, uniq.ToSlice())
}

func TestFrequenciesAndMultisetPredicates(t *testing.T) {
	v := vector.New(1, 2, 2, 3)

	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, vector.Frequencies(v))

	assert.True(t, vector.Subset(v, []int{3, 2, 1, 2, 5}))
	assert.False(t, vector.Subset(v, []int{1, 2, 3}), "counts matter")
	assert.True(t, vector.Superset(v, []int{2, 2}))
	assert.False(t, vector.Superset(v, []int{2, 2, 2}))
	assert.True(t, vector.Equivalent(v, []int{3, 2, 1, 2}))
	assert.True(t, vector.Disjoint(v, []int{7, 8}))
	assert.False(t, vector.Disjoint(v, []int{9, 3}))
}

func TestCommonPrefixSuffix(t *testing.T) {
	a := vector.New(1, 2, 3, 9)
	b := vector.New(1, 2, 7, 9)

	assert.Equal(t, 2, vector.CommonPrefixLen(a, b))
	assert.Equal(t, 1, vector.CommonSuffixLen(a, b))
}

func TestSortedVariants(t *testing.T) {
	v := vector.New(3, 1, 2)

	assert.Equal(t, []int{1, 2, 3}, vector.Sorted(v).ToSlice())
	assert.Equal(t, []int{3, 1, 2}, v.ToSlice(), "receiver unchanged")

	words := vector.New("bb", "a", "ccc")
	assert.Equal(t, []string{"a", "bb", "ccc"},
		vector.SortedByKey(words, func(s string) int { return len(s) }).ToSlice())

	calls := 0
	cached := vector.SortedByCachedKey(words, func(s string) int {
		calls++
		return len(s)
	})
	assert.Equal(t, []string{"a", "bb", "ccc"}, cached.ToSlice())
	assert.Equal(t, 3, calls, "key computed once per element")

	assert.ElementsMatch(t, []int{1, 2, 3}, vector.SortedUnstable(v).ToSlice())
}

func TestMergeLargestSmallest(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6},
		vector.Merge(vector.New(1, 3, 5), vector.New(2, 4, 6)).ToSlice())

	v := vector.New(5, 1, 4, 2, 3)
	assert.Equal(t, []int{5, 4, 3}, vector.Largest(v, 3).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, vector.Smallest(v, 3).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, vector.Smallest(v, 99).ToSlice())
}

func TestMinMaxOrdered(t *testing.T) {
	v := vector.New(2, 1, 3, 1, 3)

	max, ok := vector.Max(v)
	assert.True(t, ok)
	assert.Equal(t, 3, max)

	min, ok := vector.Min(v)
	assert.True(t, ok)
	assert.Equal(t, 1, min)

	lo, hi, ok := vector.MinMax(v)
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)

	_, _, ok = vector.MinMax(vector.Empty[int]())
	assert.False(t, ok)

	words := vector.New("bb", "a", "cc")
	longest, ok := vector.MaxByKey(words, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "cc", longest, "equal keys resolve to the last")

	shortest, ok := vector.MinByKey(words, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "a", shortest)
}

func TestNumericAggregation(t *testing.T) {
	v := vector.New(1, 2, 3, 4)

	assert.Equal(t, 10, vector.Sum(v))
	assert.Equal(t, 24, vector.Product(v))
	assert.Equal(t, 0, vector.Sum(vector.Empty[int]()))
	assert.Equal(t, 1, vector.Product(vector.Empty[int]()))

	words := vector.New("a", "bb")
	assert.Equal(t, 3, vector.SumBy(words, func(s string) int { return len(s) }))
}
