package grid

// Grid is a uniform rectilinear lattice over a Box, parameterized by an
// integer division count K[i] >= 1 per axis. It has K[i]+1 vertices per
// axis, indexed by an N-tuple idx with 0 <= idx[i] <= K[i].
//
// Grid is immutable once built and holds no mutable state of its own;
// Cache is the mutable, shared-across-goroutines layer built on top.
type Grid struct {
	Box Box
	K   []int
}

// NewGrid validates K against Box and returns a Grid.
// Complexity: O(N).
func NewGrid(box Box, k []int) (*Grid, error) {
	if len(k) != box.Dim() {
		return nil, ErrDimensionMismatch
	}
	for _, ki := range k {
		if ki < 1 {
			return nil, ErrInvalidDivisions
		}
	}
	kCopy := make([]int, len(k))
	copy(kCopy, k)

	return &Grid{Box: box, K: kCopy}, nil
}

// Dim returns the dimensionality N.
func (g *Grid) Dim() int {
	return g.Box.Dim()
}

// Valid reports whether idx lies within the closed box [0, K[i]] on every
// axis. Complexity: O(N).
func (g *Grid) Valid(idx []int) bool {
	if len(idx) != len(g.K) {
		return false
	}
	for i, v := range idx {
		if v < 0 || v > g.K[i] {
			return false
		}
	}

	return true
}

// Position computes the physical coordinates of idx using the direct
// formula pos[i] = lb[i] + idx[i]*(ub[i]-lb[i])/k[i]. This is never computed
// by cumulative addition along the axis, which would accumulate O(k) rounding
// error; the direct formula bounds error to O(1) regardless of idx[i].
//
// Position does not validate idx against the box; callers that need
// infinity-padding semantics must check Valid first (see Cache).
// Complexity: O(N).
func (g *Grid) Position(idx []int) []float64 {
	n := g.Dim()
	pos := make([]float64, n)
	for i := 0; i < n; i++ {
		step := (g.Box.UB[i] - g.Box.LB[i]) / float64(g.K[i])
		pos[i] = g.Box.LB[i] + float64(idx[i])*step
	}

	return pos
}

// NumVertices returns the total vertex count of the full grid, product of
// (K[i]+1) across axes. Complexity: O(N).
func (g *Grid) NumVertices() int64 {
	total := int64(1)
	for _, ki := range g.K {
		total *= int64(ki + 1)
	}

	return total
}
