package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-container-utils/coll"
	"github.com/hasbyte1/go-container-utils/convert"
	"github.com/hasbyte1/go-container-utils/vector"
)

func TestSequenceTargetsPreserveMultiplicity(t *testing.T) {
	v := vector.New(3, 1, 2, 1)

	assert.Equal(t, []int{3, 1, 2, 1}, convert.ToSlice[int](v))
	assert.Equal(t, []int{3, 1, 2, 1}, convert.ToVector[int](v).ToSlice())
	assert.Equal(t, []int{3, 1, 2, 1}, convert.ToList[int](v).ToSlice())
	assert.Equal(t, []int{3, 1, 2, 1}, convert.ToDeque[int](v).ToSlice())

	h := convert.ToHeap[int](v, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{3, 2, 1, 1}, h.ToSorted())
}

func TestKeyUniqueTargetsCollapse(t *testing.T) {
	v := vector.New(3, 1, 2, 1)

	hs := convert.ToHashSet[int](v)
	assert.Equal(t, 3, hs.Len())
	assert.True(t, hs.ContainsAll(1, 2, 3))

	ss := convert.ToSortedSet[int](v)
	assert.Equal(t, []int{1, 2, 3}, ss.ToSlice())
}

func TestMapTargets(t *testing.T) {
	pairs := vector.New(
		coll.Pair[string, int]{First: "a", Second: 1},
		coll.Pair[string, int]{First: "b", Second: 2},
		coll.Pair[string, int]{First: "a", Second: 3},
	)

	hm := convert.ToHashMap[string, int](pairs)
	assert.Equal(t, 2, hm.Len())
	assert.Equal(t, 3, hm.GetOr("a", 0), "last pair wins")

	sm := convert.ToSortedMap[string, int](pairs)
	assert.Equal(t, []string{"a", "b"}, sm.ToKeys())
	assert.Equal(t, []int{3, 2}, sm.ToValues())
}

func TestCrossContainerRoundTrip(t *testing.T) {
	v := vector.New(1, 2, 2, 3)

	viaList := convert.ToVector[int](convert.ToList[int](v))
	assert.Equal(t, v.ToSlice(), viaList.ToSlice())

	viaDeque := convert.ToVector[int](convert.ToDeque[int](v))
	assert.Equal(t, v.ToSlice(), viaDeque.ToSlice())

	setThenBack := convert.ToSortedSet[int](convert.ToHashSet[int](v))
	assert.Equal(t, []int{1, 2, 3}, setThenBack.ToSlice())
}

func TestMapPairViewConverts(t *testing.T) {
	sm := convert.ToSortedMap[string, int](vector.New(
		coll.Pair[string, int]{First: "b", Second: 2},
		coll.Pair[string, int]{First: "a", Second: 1},
	))

	keys := convert.ToVector[coll.Pair[string, int]](sm)
	assert.Equal(t, "a", keys.ToSlice()[0].First, "pair view ascends by key")
}
