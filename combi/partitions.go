package combi

// Partitions returns every set partition of items, Bell(n) of them.
// Within a partition, blocks are ordered by their smallest element (the
// order they were opened in); across partitions, the recursion grows each
// existing block in creation order before opening a new one, so
// {{1,2,3}} comes first and the all-singletons partition last.
//
// Empty input yields an empty result, not a single empty partition.
func Partitions[T any](items []T) [][][]T {
	if len(items) == 0 {
		return [][][]T{}
	}
	out := make([][][]T, 0, bellCount(len(items)))
	blocks := make([][]T, 0, len(items))

	var recurse func(i int)
	recurse = func(i int) {
		if i == len(items) {
			snapshot := make([][]T, len(blocks))
			for b, block := range blocks {
				snapshot[b] = append([]T(nil), block...)
			}
			out = append(out, snapshot)
			return
		}
		for b := range blocks {
			blocks[b] = append(blocks[b], items[i])
			recurse(i + 1)
			blocks[b] = blocks[b][:len(blocks[b])-1]
		}
		blocks = append(blocks, []T{items[i]})
		recurse(i + 1)
		blocks = blocks[:len(blocks)-1]
	}
	recurse(0)
	return out
}

// bellCount returns the n-th Bell number via the Bell triangle, saturating
// to 0 on overflow (used only as a size hint).
func bellCount(n int) int {
	row := []int{1}
	for i := 1; i < n; i++ {
		next := make([]int, 0, len(row)+1)
		next = append(next, row[len(row)-1])
		for _, v := range row {
			s := next[len(next)-1] + v
			if s < 0 {
				return 0
			}
			next = append(next, s)
		}
		row = next
	}
	return row[len(row)-1]
}
