package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/seq"
)

func TestInterleave(t *testing.T) {
	assert.Equal(t, []int{1, 10, 2, 20, 3, 30}, seq.Interleave([]int{1, 2, 3}, []int{10, 20, 30}))
	assert.Equal(t, []int{1, 10, 2, 3, 4}, seq.Interleave([]int{1, 2, 3, 4}, []int{10}),
		"remainder appended")
	assert.Equal(t, []int{10, 20}, seq.Interleave([]int{}, []int{10, 20}))
}

func TestInterleaveExact(t *testing.T) {
	assert.Equal(t, []int{1, 10, 2, 20}, seq.InterleaveExact([]int{1, 2, 3, 4}, []int{10, 20}))
	assert.Empty(t, seq.InterleaveExact([]int{1}, []int{}))
}

func TestIntersperse(t *testing.T) {
	assert.Equal(t, []int{1, 0, 2, 0, 3}, seq.Intersperse([]int{1, 2, 3}, 1, 0))
	assert.Equal(t, []int{1, 2, 0, 3, 4, 0, 5}, seq.Intersperse([]int{1, 2, 3, 4, 5}, 2, 0))
	assert.Equal(t, []int{1}, seq.Intersperse([]int{1}, 1, 0), "no trailing separator")
	assert.Panics(t, func() { seq.Intersperse([]int{1}, 0, 9) })
}

func TestIntersperseWith(t *testing.T) {
	n := 100
	got := seq.IntersperseWith([]int{1, 2, 3}, 1, func() int { n++; return n })
	assert.Equal(t, []int{1, 101, 2, 102, 3}, got)
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2}, seq.PadLeft([]int{1, 2}, 4, 0))
	assert.Equal(t, []int{1, 2}, seq.PadLeft([]int{1, 2}, 2, 0), "already long enough")
	assert.Equal(t, []int{1, 2, 3}, seq.PadLeft([]int{1, 2, 3}, 1, 0))
}

func TestPadLeftWith(t *testing.T) {
	got := seq.PadLeftWith([]int{7, 8}, 4, func(i int) int { return i * 10 })
	assert.Equal(t, []int{0, 10, 7, 8}, got, "fn sees result positions 0..pad-1")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, []int{1, 2, 0, 0}, seq.PadRight([]int{1, 2}, 4, 0))
	got := seq.PadRightWith([]int{7, 8}, 4, func(i int) int { return i * 10 })
	assert.Equal(t, []int{7, 8, 20, 30}, got, "fn sees result positions len..n-1")
}

func TestMerge(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seq.Merge([]int{1, 3, 5}, []int{2, 4, 6}))
	assert.Equal(t, []int{1, 2, 3}, seq.Merge([]int{1, 2, 3}, []int{}))
	assert.Equal(t, []int{1, 2, 3}, seq.Merge([]int{}, []int{1, 2, 3}))
}

func TestMergeEqualsSortedConcat(t *testing.T) {
	a := []int{5, 1, 3, 3}
	b := []int{4, 2, 2, 9}
	merged := seq.Merge(seq.Sorted(a), seq.Sorted(b))
	assert.Equal(t, seq.Sorted(append(append([]int{}, a...), b...)), merged)
}

func TestMergeByStableTies(t *testing.T) {
	type tagged struct {
		key  int
		side string
	}
	a := []tagged{{1, "a"}, {2, "a"}}
	b := []tagged{{1, "b"}, {2, "b"}}
	got := seq.MergeBy(a, b, func(x, y tagged) bool { return x.key < y.key })
	assert.Equal(t, []tagged{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}}, got,
		"ties prefer the receiver side")
}

func TestZipUnzip(t *testing.T) {
	pairs := seq.Zip([]string{"a", "b", "c"}, []int{1, 2})
	assert.Equal(t, []coll.Pair[string, int]{{First: "a", Second: 1}, {First: "b", Second: 2}}, pairs)

	as, bs := seq.Unzip(pairs)
	assert.Equal(t, []string{"a", "b"}, as)
	assert.Equal(t, []int{1, 2}, bs)
}

func TestZipPadded(t *testing.T) {
	pairs := seq.ZipPadded([]string{"a"}, []int{1, 2, 3},
		func(i int) string { return "?" },
		func(i int) int { return -i })
	assert.Equal(t, []coll.Pair[string, int]{
		{First: "a", Second: 1},
		{First: "?", Second: 2},
		{First: "?", Second: 3},
	}, pairs)
}

func TestScan(t *testing.T) {
	got := seq.Scan([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, []int{1, 3, 6}, got)
	assert.Empty(t, seq.Scan([]int{}, 0, func(acc, n int) int { return acc + n }))
}
