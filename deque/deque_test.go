package deque_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-container-utils/deque"
)

func TestConstructorsAndAccessors(t *testing.T) {
	d := deque.New(1, 2, 3)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []int{1, 2, 3}, d.ToSlice())
	assert.True(t, deque.Empty[int]().IsEmpty())
	assert.True(t, d.IsNotEmpty())
	assert.Equal(t, []int{7}, deque.Unit(7).ToSlice())

	src := []int{1, 2}
	fromSrc := deque.From(src)
	src[0] = 99
	assert.Equal(t, []int{1, 2}, fromSrc.ToSlice())
}

func TestFrontBackGet(t *testing.T) {
	d := deque.New("a", "b", "c")

	front, ok := d.Front()
	assert.True(t, ok)
	assert.Equal(t, "a", front)

	back, ok := d.Back()
	assert.True(t, ok)
	assert.Equal(t, "c", back)

	mid, ok := d.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", mid)

	_, ok = d.Get(3)
	assert.False(t, ok)

	_, ok = deque.Empty[string]().Front()
	assert.False(t, ok)
	_, ok = deque.Empty[string]().Back()
	assert.False(t, ok)
}

func TestPushPopAreNonMutating(t *testing.T) {
	d := deque.New(2, 3)

	grown := d.PushFront(1).PushBack(4)
	assert.Equal(t, []int{1, 2, 3, 4}, grown.ToSlice())
	assert.Equal(t, []int{2, 3}, d.ToSlice(), "receiver unchanged")

	front, rest, ok := grown.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, front)
	assert.Equal(t, []int{2, 3, 4}, rest.ToSlice())

	back, rest, ok := rest.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 4, back)
	assert.Equal(t, []int{2, 3}, rest.ToSlice())

	_, same, ok := deque.Empty[int]().PopFront()
	assert.False(t, ok)
	assert.True(t, same.IsEmpty())
}

func TestBuilderRoundTrip(t *testing.T) {
	b := deque.NewBuilder[int](2)
	b.PushBack(2)
	b.PushBack(3)
	b.PushFront(1)
	b.PushBack(4)

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Deque().ToSlice())

	front, ok := b.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := b.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 4, back)

	assert.Equal(t, []int{2, 3}, b.Deque().ToSlice())

	_, ok = deque.NewBuilder[int](1).PopBack()
	assert.False(t, ok)
}

func TestBuilderGrowKeepsOrder(t *testing.T) {
	b := deque.NewBuilder[int](1)
	for i := 1; i <= 100; i++ {
		if i%2 == 0 {
			b.PushBack(i)
		} else {
			b.PushFront(i)
		}
	}
	got := b.Deque().ToSlice()
	assert.Len(t, got, 100)
	assert.Equal(t, 99, got[0], "odd pushes stack at the front")
	assert.Equal(t, 100, got[99])
}

func TestIterationBothDirections(t *testing.T) {
	d := deque.New(1, 2, 3)

	var forward, backward []int
	for item := range d.Elements() {
		forward = append(forward, item)
	}
	for item := range d.ElementsBackward() {
		backward = append(backward, item)
	}
	assert.Equal(t, []int{1, 2, 3}, forward)
	assert.Equal(t, []int{3, 2, 1}, backward)
}

func TestQueriesAndFolds(t *testing.T) {
	d := deque.New(1, 2, 3, 4)
	even := func(n int) bool { return n%2 == 0 }

	assert.False(t, d.Every(even))
	assert.True(t, d.Any(even))
	assert.Equal(t, 2, d.CountBy(even))
	assert.Equal(t, 1, d.Position(even))
	assert.Equal(t, 3, d.RPosition(even))

	found, ok := d.Find(even)
	assert.True(t, ok)
	assert.Equal(t, 2, found)

	assert.Equal(t, 10, d.Fold(0, func(acc, n int) int { return acc + n }))

	sum, ok := d.Reduce(func(acc, n int) int { return acc + n })
	assert.True(t, ok)
	assert.Equal(t, 10, sum)

	assert.Equal(t, "1|2|3|4", d.Join("|"))
}

func TestBulkTransforms(t *testing.T) {
	d := deque.New(1, 2, 3, 4, 5)
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, d.Filter(even).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, d.Reject(even).ToSlice())

	pass, fail := d.Partition(even)
	assert.Equal(t, []int{2, 4}, pass.ToSlice())
	assert.Equal(t, []int{1, 3, 5}, fail.ToSlice())

	assert.Equal(t, []int{2, 4, 6, 8, 10}, d.Map(func(n int) int { return n * 2 }).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, d.Init().ToSlice())
	assert.Equal(t, []int{2, 3, 4, 5}, d.Tail().ToSlice())
	assert.Equal(t, []int{2, 3}, d.Slice(1, 3).ToSlice())
	assert.Equal(t, []int{1, 2}, d.Take(2).ToSlice())
	assert.Equal(t, []int{4, 5}, d.Skip(3).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, d.StepBy(2).ToSlice())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, d.Rev().ToSlice())
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, d.Chunked(2))
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4, 5}}, d.Windowed(3, 2))

	assert.Equal(t, []int{10, 15, 20}, deque.New(10, 20).AddAt(1, 15).ToSlice())
	assert.Equal(t, []int{10}, deque.New(10, 20).DeleteAt(1).ToSlice())
	assert.Equal(t, []int{10, 99}, deque.New(10, 20).SubstituteAt(1, 99).ToSlice())
	assert.Panics(t, func() { d.DeleteAt(5) })

	sorted := deque.New(3, 1, 2).SortedBy(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, sorted.ToSlice())
}

func TestPositionalEditing(t *testing.T) {
	d := deque.New(10, 20, 30, 40)

	assert.Equal(t, []int{10, 1, 2, 20, 30, 40}, d.AddAtMulti(1, 1, 2).ToSlice())
	assert.Equal(t, []int{20, 40}, d.DeleteAtMulti(0, 2, 2).ToSlice(),
		"duplicate indices collapse")
	assert.Equal(t, []int{20, 30, 40, 10}, d.MoveAt(0, 3).ToSlice())
	assert.Equal(t, []int{40, 20, 30, 10}, d.SwapAt(0, 3).ToSlice())
	assert.Equal(t, []int{10, 21, 30, 41}, d.SubstituteAtMulti([]int{1, 3}, []int{21, 41}).ToSlice())
	assert.Equal(t, []int{10, 20, 30, 40}, d.ToSlice(), "receiver unchanged")

	assert.Panics(t, func() { d.AddAtMulti(5, 0) })
	assert.Panics(t, func() { d.MoveAt(0, 4) })
}

func TestChunkingAndDividing(t *testing.T) {
	d := deque.New(1, 2, 4, 5, 9)

	assert.Equal(t, [][]int{{1, 2}, {4, 5}}, d.ChunkedExact(2))
	assert.Equal(t, [][]int{{1, 2}, {4, 5}, {9}},
		d.ChunkedBy(func(prev, curr int) bool { return curr-prev > 1 }))

	assert.Equal(t, [][]int{{1, 2}, {2, 4}, {4, 5}, {5, 9}, {9, 1}},
		d.WindowedCircular(2, 1))

	assert.Equal(t, [][]int{{1, 2}, {3}, {}},
		deque.New(1, 2, 0, 3, 0).DivideBy(func(n int) bool { return n == 0 }))
	assert.Equal(t, [][]int{{1, 2}, {3}, {}}, deque.Divide(deque.New(1, 2, 0, 3, 0), 0))

	merged := deque.New(1, 1, 2, 2, 2, 3).Coalesce(func(prev, curr int) (int, bool) {
		return prev, prev == curr
	})
	assert.Equal(t, []int{1, 2, 3}, merged.ToSlice())
}

func TestWeavingAndPadding(t *testing.T) {
	a := deque.New(1, 3, 5)
	b := deque.New(2, 4)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.Interleave(b).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, a.InterleaveExact(b).ToSlice())

	assert.Equal(t, []int{1, 0, 3, 0, 5}, a.Intersperse(1, 0).ToSlice())
	counter := 0
	withFn := a.IntersperseWith(1, func() int { counter++; return -counter })
	assert.Equal(t, []int{1, -1, 3, -2, 5}, withFn.ToSlice())

	assert.Equal(t, []int{0, 0, 1, 3, 5}, a.PadLeft(5, 0).ToSlice())
	assert.Equal(t, []int{1, 3, 5, 0, 0}, a.PadRight(5, 0).ToSlice())
	assert.Equal(t, []int{0, 1, 1, 3, 5}, a.PadLeftWith(5, func(i int) int { return i }).ToSlice())
	assert.Equal(t, []int{1, 3, 5, 3, 4}, a.PadRightWith(5, func(i int) int { return i }).ToSlice())
	assert.Equal(t, []int{1, 3, 5}, a.PadRight(2, 0).ToSlice(), "already long enough")

	sorted := a.MergeBy(b, func(x, y int) bool { return x < y })
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted.ToSlice())
}

func TestTypedAndConstrainedFunctions(t *testing.T) {
	d := deque.New(1, 2, 2, 3)

	assert.Equal(t, []string{"1", "2", "2", "3"}, deque.Map(d, strconv.Itoa).ToSlice())
	assert.Equal(t, []int{1, 1, 2, 2, 2, 2, 3, 3},
		deque.FlatMap(d, func(n int) []int { return []int{n, n} }).ToSlice())

	evens := deque.FilterMap(d, func(n int) (int, bool) { return n * 10, n%2 == 0 })
	assert.Equal(t, []int{20, 20}, evens.ToSlice())

	joined := deque.FoldTo(d, "", func(acc string, n int) string { return acc + strconv.Itoa(n) })
	assert.Equal(t, "1223", joined)

	groups := deque.GroupBy(d, func(n int) int { return n % 2 })
	assert.Equal(t, []int{2, 2}, groups[0].ToSlice())
	assert.Equal(t, []int{1, 3}, groups[1].ToSlice())

	assert.True(t, deque.Contains(d, 3))
	assert.Equal(t, 1, deque.PositionOf(d, 2))
	assert.Equal(t, []int{1, 2, 3}, deque.Delete(d, 2).ToSlice())
	assert.Equal(t, []int{1, 3}, deque.DeleteMulti(d, []int{2, 2}).ToSlice())
	assert.Equal(t, []int{1, 9, 2, 3}, deque.Substitute(d, 2, 9).ToSlice())
	assert.Equal(t, []int{2, 2}, deque.Intersect(d, []int{2, 2, 7}).ToSlice())
	assert.Equal(t, []int{1, 2, 3}, deque.Unique(d).ToSlice())
	assert.Equal(t, []int{2}, deque.Duplicates(d).ToSlice())
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, deque.Frequencies(d))
	assert.True(t, deque.Equivalent(d, []int{3, 2, 2, 1}))

	assert.Equal(t, []int{1, 2, 3}, deque.Sorted(deque.New(3, 1, 2)).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, deque.Merge(deque.New(1, 3), deque.New(2, 4)).ToSlice())

	max, ok := deque.Max(d)
	assert.True(t, ok)
	assert.Equal(t, 3, max)

	min, ok := deque.Min(d)
	assert.True(t, ok)
	assert.Equal(t, 1, min)

	assert.Equal(t, 8, deque.Sum(d))
}
