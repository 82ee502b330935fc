package basin

// neighborDeltas returns the 3^n-1 nonzero vectors in {-1,0,+1}^n, the
// axis-and-diagonal neighborhood used by both star-minimum detection and
// basin clustering. Computed once per scan and shared across every vertex,
// since it depends only on the dimension, not on the vertex itself.
func neighborDeltas(n int) [][]int {
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	deltas := make([][]int, 0, total-1)

	cur := make([]int, n)
	for i := range cur {
		cur[i] = -1
	}
	for {
		allZero := true
		for _, v := range cur {
			if v != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			d := make([]int, n)
			copy(d, cur)
			deltas = append(deltas, d)
		}

		i := n - 1
		for i >= 0 {
			cur[i]++
			if cur[i] <= 1 {
				break
			}
			cur[i] = -1
			i--
		}
		if i < 0 {
			break
		}
	}

	return deltas
}

// vertexIterator walks every grid index idx with 0 <= idx[i] <= k[i] in
// lexicographic (odometer) order, the last axis the fast digit, restricted
// to lo0 <= idx[0] <= hi0 on the first (outermost) axis — the unit a
// parallel scan shards on.
type vertexIterator struct {
	k        []int
	hi0      int
	cur      []int
	first    bool
	done     bool
}

func newVertexIterator(k []int) *vertexIterator {
	return newVertexIteratorRange(k, 0, k[0])
}

// newVertexIteratorRange restricts the outermost axis to [lo0, hi0]
// (inclusive); every other axis still ranges over its full [0, k[i]].
func newVertexIteratorRange(k []int, lo0, hi0 int) *vertexIterator {
	cur := make([]int, len(k))
	cur[0] = lo0

	return &vertexIterator{k: k, hi0: hi0, cur: cur, first: true, done: lo0 > hi0}
}

func (it *vertexIterator) next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if it.first {
		it.first = false

		return it.cur, true
	}

	for i := len(it.cur) - 1; i >= 0; i-- {
		it.cur[i]++
		limit := it.k[i]
		if i == 0 {
			limit = it.hi0
		}
		if it.cur[i] <= limit {
			return it.cur, true
		}
		if i == 0 {
			it.done = true

			return nil, false
		}
		it.cur[i] = 0
	}
	it.done = true

	return nil, false
}

func cloneIdx(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)

	return out
}
