package basin_test

import (
	"testing"

	"github.com/katalvlaran/shgo/basin"
	"github.com/katalvlaran/shgo/grid"
	"github.com/stretchr/testify/require"
)

type sphereEval struct{}

func (sphereEval) F(x []float64) float64 {
	sum := 0.0
	for _, xi := range x {
		sum += xi * xi
	}

	return sum
}

func (sphereEval) Grad(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2 * xi
	}

	return g
}

func newTestCache(t *testing.T, k ...int) *grid.Cache {
	t.Helper()
	lb := make([]float64, len(k))
	ub := make([]float64, len(k))
	for i := range k {
		lb[i] = -1
		ub[i] = 1
	}
	box, err := grid.NewBox(lb, ub)
	require.NoError(t, err)
	g, err := grid.NewGrid(box, k)
	require.NoError(t, err)

	return grid.NewCache(g, sphereEval{})
}

func TestDetectStars_SphereHasExactlyOneCandidateAtCenter(t *testing.T) {
	t.Parallel()

	// Even k puts a vertex exactly at the origin.
	c := newTestCache(t, 4, 4)
	cands := basin.DetectStars(c, basin.DefaultRelTolStar)
	require.Len(t, cands, 1)
	require.Equal(t, []int{2, 2}, cands[0].Idx)
	require.InDelta(t, 0, cands[0].Value, 1e-12)
}

func TestDetectStars_DegenerateSingleCellK1(t *testing.T) {
	t.Parallel()

	// k[i] = 1: the box is a single cell, 2^2 = 4 corner vertices.
	c := newTestCache(t, 1, 1)
	cands := basin.DetectStars(c, basin.DefaultRelTolStar)
	require.NotEmpty(t, cands)
	for _, cand := range cands {
		require.LessOrEqual(t, cand.Value, 2.0+1e-9)
	}
}

func TestDetectStars_ParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, 8, 8)
	serial := basin.DetectStars(c, basin.DefaultRelTolStar)

	c2 := newTestCache(t, 8, 8)
	parallel, err := basin.DetectStarsParallel(c2, basin.DefaultRelTolStar, 4)
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		require.Equal(t, serial[i].Idx, parallel[i].Idx)
		require.InDelta(t, serial[i].Value, parallel[i].Value, 1e-12)
	}
}

type linearEval struct{}

func (linearEval) F(x []float64) float64      { return x[0] }
func (linearEval) Grad(x []float64) []float64 { return []float64{1} }

func TestDetectStars_BoundaryCornerIsCandidateWhenInteriorIsHigher(t *testing.T) {
	t.Parallel()

	// f(x) = x is monotonically increasing, so the left boundary vertex has
	// no interior neighbor with a smaller value; infinity padding on its
	// missing left neighbor makes it a star-minimum.
	lb, ub := []float64{-1}, []float64{1}
	box, err := grid.NewBox(lb, ub)
	require.NoError(t, err)
	g, err := grid.NewGrid(box, []int{4})
	require.NoError(t, err)
	c := grid.NewCache(g, linearEval{})

	cands := basin.DetectStars(c, basin.DefaultRelTolStar)
	require.Len(t, cands, 1)
	require.Equal(t, []int{0}, cands[0].Idx)
}
