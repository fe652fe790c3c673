package vector_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-container-utils/vector"
)

func TestConstructorsCopyInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := vector.From(src)
	src[0] = 99

	assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
}

func TestAllReturnsCopy(t *testing.T) {
	v := vector.New(1, 2, 3)
	out := v.All()
	out[0] = 99

	assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
}

func TestFillAndFillWith(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, vector.Fill("x", 3).ToSlice())
	assert.Equal(t, []int{0, 2, 4}, vector.FillWith(func(i int) int { return i * 2 }, 3).ToSlice())
	assert.True(t, vector.Fill(0, 0).IsEmpty())
}

func TestFromSeqDrainsIterator(t *testing.T) {
	v := vector.New(1, 2, 3)
	again := vector.FromSeq(v.Elements())

	assert.Equal(t, v.ToSlice(), again.ToSlice())
}

func TestGetAndHas(t *testing.T) {
	v := vector.New("a", "b")

	item, ok := v.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", item)

	_, ok = v.Get(2)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)

	assert.True(t, v.Has(0))
	assert.False(t, v.Has(2))
}

func TestFirstLastWithPredicate(t *testing.T) {
	v := vector.New(1, 2, 3, 4)

	first, ok := v.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	firstEven, ok := v.First(func(n int) bool { return n%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 2, firstEven)

	lastEven, ok := v.Last(func(n int) bool { return n%2 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 4, lastEven)

	_, ok = vector.Empty[int]().First()
	assert.False(t, ok)
}

func TestFirstOrFail(t *testing.T) {
	v := vector.New(1, 3, 5)

	_, err := v.FirstOrFail(func(n int) bool { return n%2 == 0 })
	require.ErrorIs(t, err, vector.ErrNoMatchingItems)

	item, err := v.FirstOrFail(func(n int) bool { return n > 1 })
	require.NoError(t, err)
	assert.Equal(t, 3, item)
}

func TestElementsBackward(t *testing.T) {
	v := vector.New(1, 2, 3)

	var out []int
	for item := range v.ElementsBackward() {
		out = append(out, item)
	}
	assert.Equal(t, []int{3, 2, 1}, out)
}

func TestElementsIsRestartable(t *testing.T) {
	v := vector.New(1, 2)
	it := v.Elements()

	count := 0
	for range it {
		count++
	}
	for range it {
		count++
	}
	assert.Equal(t, 4, count)
}

func TestQueries(t *testing.T) {
	v := vector.New(1, 2, 3, 4)
	even := func(n int) bool { return n%2 == 0 }

	assert.False(t, v.Every(even))
	assert.True(t, v.Any(even))
	assert.Equal(t, 2, v.CountBy(even))

	found, ok := v.Find(even)
	assert.True(t, ok)
	assert.Equal(t, 2, found)

	assert.Equal(t, 1, v.Position(even))
	assert.Equal(t, []int{1, 3}, v.PositionMulti(even))
	assert.Equal(t, 3, v.RPosition(even))

	assert.True(t, vector.Empty[int]().Every(even))
	assert.False(t, vector.Empty[int]().Any(even))
}

func TestFoldReduce(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Equal(t, 6, v.Fold(0, func(acc, n int) int { return acc + n }))
	assert.Equal(t, 16, v.RFold(10, func(acc, n int) int { return acc + n }))

	sum, ok := v.Reduce(func(acc, n int) int { return acc + n })
	assert.True(t, ok)
	assert.Equal(t, 6, sum)

	_, ok = vector.Empty[int]().Reduce(func(acc, n int) int { return acc + n })
	assert.False(t, ok)
}

func TestMinMaxByTieBreaking(t *testing.T) {
	type box struct{ k, id int }
	v := vector.New(box{1, 0}, box{2, 1}, box{2, 2}, box{1, 3})
	less := func(a, b box) bool { return a.k < b.k }

	max, ok := v.MaxBy(less)
	assert.True(t, ok)
	assert.Equal(t, box{2, 2}, max, "equal maxima resolve to the last")

	min, ok := v.MinBy(less)
	assert.True(t, ok)
	assert.Equal(t, box{1, 0}, min, "equal minima resolve to the first")

	lo, hi, ok := v.MinMaxBy(less)
	assert.True(t, ok)
	assert.Equal(t, box{1, 0}, lo)
	assert.Equal(t, box{2, 2}, hi)
}

func TestJoin(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Equal(t, "1-2-3", v.Join("-"))
	assert.Equal(t, "#1!#2!#3", v.JoinBy("!", func(n int) string { return "#" + strconv.Itoa(n) }))
}

func TestConditionalPipeline(t *testing.T) {
	double := func(v *vector.Vector[int]) *vector.Vector[int] {
		return v.Map(func(n int) int { return n * 2 })
	}

	v := vector.New(1, 2)
	assert.Equal(t, []int{2, 4}, v.When(true, double).ToSlice())
	assert.Equal(t, []int{1, 2}, v.When(false, double).ToSlice())
	assert.Equal(t, []int{2, 4}, v.Unless(false, double).ToSlice())
	assert.Equal(t, []int{1, 2}, v.WhenEmpty(double).ToSlice())
	assert.Equal(t, []int{2, 4}, v.WhenNotEmpty(double).ToSlice())

	seeded := vector.Empty[int]().WhenEmpty(func(v *vector.Vector[int]) *vector.Vector[int] {
		return v.Add(42)
	})
	assert.Equal(t, []int{42}, seeded.ToSlice())
}

func TestBuildingIsNonMutating(t *testing.T) {
	v := vector.New(1, 2)

	grown := v.Add(3).AddMulti(4, 5).Prepend(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, grown.ToSlice())
	assert.Equal(t, []int{1, 2}, v.ToSlice(), "receiver unchanged")
}

func TestFilterRejectPartition(t *testing.T) {
	v := vector.New(1, 2, 3, 4, 5)
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, v.Filter(even).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, v.Reject(even).ToSlice())

	pass, fail := v.Partition(even)
	assert.Equal(t, []int{2, 4}, pass.ToSlice())
	assert.Equal(t, []int{1, 3, 5}, fail.ToSlice())
}

func TestMapScanMapWhile(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Equal(t, []int{2, 4, 6}, v.Map(func(n int) int { return n * 2 }).ToSlice())
	assert.Equal(t, []int{1, 3, 6}, v.Scan(0, func(acc, n int) int { return acc + n }).ToSlice())

	capped := v.MapWhile(func(n int) (int, bool) { return n * 10, n < 3 })
	assert.Equal(t, []int{10, 20}, capped.ToSlice())
}

func TestPositionalEditing(t *testing.T) {
	v := vector.New(10, 20, 30)

	assert.Equal(t, []int{10, 15, 20, 30}, v.AddAt(1, 15).ToSlice())
	assert.Equal(t, []int{10, 20, 30, 40}, v.AddAt(3, 40).ToSlice())
	assert.Equal(t, []int{10, 1, 2, 20, 30}, v.AddAtMulti(1, 1, 2).ToSlice())
	assert.Equal(t, []int{10, 30}, v.DeleteAt(1).ToSlice())
	assert.Equal(t, []int{20}, v.DeleteAtMulti(0, 2, 2).ToSlice())
	assert.Equal(t, []int{20, 30, 10}, v.MoveAt(0, 2).ToSlice())
	assert.Equal(t, []int{30, 20, 10}, v.SwapAt(0, 2).ToSlice())
	assert.Equal(t, []int{10, 99, 30}, v.SubstituteAt(1, 99).ToSlice())
	assert.Equal(t, []int{7, 20, 9}, v.SubstituteAtMulti([]int{0, 2}, []int{7, 9}).ToSlice())
	assert.Equal(t, []int{10, 20, 30}, v.ToSlice(), "receiver unchanged")
}

func TestEditingPanicsOnBadIndex(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Panics(t, func() { v.AddAt(4, 9) })
	assert.Panics(t, func() { v.DeleteAt(3) })
	assert.Panics(t, func() { v.DeleteAtMulti(0, 5) })
	assert.Panics(t, func() { v.MoveAt(-1, 0) })
	assert.Panics(t, func() { v.SwapAt(0, 3) })
	assert.Panics(t, func() { v.Slice(1, 4) })
	assert.Panics(t, func() { v.StepBy(0) })
}

func TestStructuralSelection(t *testing.T) {
	v := vector.New(1, 2, 3, 4, 5)

	assert.Equal(t, []int{1, 2, 3, 4}, v.Init().ToSlice())
	assert.Equal(t, []int{2, 3, 4, 5}, v.Tail().ToSlice())
	assert.Equal(t, []int{2, 3}, v.Slice(1, 3).ToSlice())
	assert.Equal(t, []int{1, 2}, v.Take(2).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Take(10).ToSlice())
	assert.Equal(t, []int{4, 5}, v.Skip(3).ToSlice())
	assert.Equal(t, []int{1, 2}, v.TakeWhile(func(n int) bool { return n < 3 }).ToSlice())
	assert.Equal(t, []int{3, 4, 5}, v.SkipWhile(func(n int) bool { return n < 3 }).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, v.StepBy(2).ToSlice())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, v.Rev().ToSlice())
	assert.Equal(t, []int{1, 2, 1, 2}, vector.New(1, 2).Repeat(2).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, vector.New(1).Concat(vector.New(2, 3)).ToSlice())
}

func TestChunkingAndWindowing(t *testing.T) {
	v := vector.New(1, 2, 3, 4, 5)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, v.Chunked(2))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, v.ChunkedExact(2))
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4, 5}}, v.Windowed(3, 2))
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 1}},
		vector.New(1, 2, 3).WindowedCircular(2, 1))

	descRuns := vector.New(3, 1, 4, 4, 2).ChunkedBy(func(prev, curr int) bool { return curr < prev })
	assert.Equal(t, [][]int{{3}, {1, 4, 4}, {2}}, descRuns)

	assert.Equal(t, [][]int{{1}, {3}, {5}}, v.DivideBy(func(n int) bool { return n%2 == 0 }))
}

func TestCoalesce(t *testing.T) {
	v := vector.New(1, 1, 2, 2, 2, 3)
	deduped := v.Coalesce(func(prev, curr int) (int, bool) {
		return prev, prev == curr
	})
	assert.Equal(t, []int{1, 2, 3}, deduped.ToSlice())

	summed := vector.New(1, 3, 2, 3).Coalesce(func(prev, curr int) (int, bool) {
		if prev%2 == curr%2 {
			return prev + curr, true
		}
		return 0, false
	})
	assert.Equal(t, []int{6, 3}, summed.ToSlice(), "merged value becomes the new prev")
}

func TestWeaving(t *testing.T) {
	a := vector.New(1, 3, 5, 7)
	b := vector.New(2, 4)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 7}, a.Interleave(b).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, a.InterleaveExact(b).ToSlice())
	assert.Equal(t, []int{1, 0, 3, 0, 5, 0, 7}, a.Intersperse(1, 0).ToSlice())
	assert.Equal(t, []int{0, 0, 1, 3}, vector.New(1, 3).PadLeft(4, 0).ToSlice())
	assert.Equal(t, []int{1, 3, 0, 0}, vector.New(1, 3).PadRight(4, 0).ToSlice())
	assert.Equal(t, []int{1, 3, 2, 3}, vector.New(1, 3).PadRightWith(4, func(i int) int { return i }).ToSlice())

	merged := vector.New(1, 3, 5).MergeBy(vector.New(2, 3, 6), func(x, y int) bool { return x < y })
	assert.Equal(t, []int{1, 2, 3, 3, 5, 6}, merged.ToSlice())
}

func TestOrderingByClosure(t *testing.T) {
	v := vector.New(3, 1, 2)
	less := func(a, b int) bool { return a < b }

	assert.Equal(t, []int{1, 2, 3}, v.SortedBy(less).ToSlice())
	assert.Equal(t, []int{3, 1, 2}, v.ToSlice(), "receiver unchanged")

	big := vector.New(5, 1, 4, 2, 3)
	assert.Equal(t, []int{5, 4}, big.LargestBy(2, less).ToSlice())
	assert.Equal(t, []int{1, 2}, big.SmallestBy(2, less).ToSlice())
}

func TestGenerators(t *testing.T) {
	v := vector.New(1, 2, 3)

	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, v.Combinations(2))
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}}, v.Variations(2))
	assert.Len(t, v.CartesianProduct(2), 9)
	assert.Len(t, v.Powerset(), 8)
	assert.Len(t, v.Partitions(), 5)
}
