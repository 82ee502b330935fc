package kuhn

// cellIterator walks every cell lower-corner idx0 with 0 <= idx0[i] <=
// k[i]-1 in lexicographic (odometer) order: the last axis is the fast
// digit. For dim == 0 it yields exactly one (empty) cell, matching
// PermState's N=0 convention.
type cellIterator struct {
	k     []int
	cur   []int
	first bool
	done  bool
}

func newCellIterator(k []int) *cellIterator {
	return &cellIterator{k: k, cur: make([]int, len(k)), first: true}
}

func (it *cellIterator) next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if it.first {
		it.first = false
		if len(it.k) == 0 {
			it.done = true
		}

		return it.cur, true
	}
	for i := len(it.cur) - 1; i >= 0; i-- {
		it.cur[i]++
		if it.cur[i] <= it.k[i]-1 {
			return it.cur, true
		}
		it.cur[i] = 0
	}
	it.done = true

	return nil, false
}

// Enumerator streams Kuhn simplices across every cell of a K-division grid,
// one (cell, permutation) pair at a time, without ever materializing the
// full cell x permutation product — required for grids where N! * cells
// is far too large to hold in memory at once.
type Enumerator struct {
	dim   int
	k     []int
	cells *cellIterator
	idx0  []int
	perms *PermState
}

// NewEnumerator builds a streaming enumerator over every cell of a grid
// whose division counts are k (one entry per axis).
func NewEnumerator(k []int) *Enumerator {
	return &Enumerator{
		dim:   len(k),
		k:     k,
		cells: newCellIterator(k),
		idx0:  make([]int, len(k)),
	}
}

// Next returns the next simplex in the enumeration, or (nil, false) once
// every cell's every permutation has been produced.
func (e *Enumerator) Next() (*Simplex, bool) {
	for {
		if e.perms != nil {
			if perm, ok := e.perms.Next(); ok {
				return BuildSimplex(e.idx0, perm), true
			}
			e.perms = nil
		}
		idx0, ok := e.cells.next()
		if !ok {
			return nil, false
		}
		copy(e.idx0, idx0)
		e.perms = NewPermState(e.dim)
	}
}

// Reset rewinds the enumerator to the first simplex of the first cell.
func (e *Enumerator) Reset() {
	e.cells = newCellIterator(e.k)
	e.perms = nil
}

// Count returns the total number of simplices the enumerator will produce:
// (number of cells) * N!, computed without iterating.
func Count(k []int) int64 {
	cells := int64(1)
	for _, ki := range k {
		cells *= int64(ki)
	}

	return cells * Factorial(len(k))
}
