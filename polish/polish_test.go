package polish_test

import (
	"testing"

	"github.com/katalvlaran/shgo/basin"
	"github.com/katalvlaran/shgo/grid"
	"github.com/katalvlaran/shgo/polish"
	"github.com/stretchr/testify/require"
)

type sphereObj struct {
	center []float64
}

func (s sphereObj) F(x []float64) float64 {
	sum := 0.0
	for i, xi := range x {
		d := xi - s.center[i]
		sum += d * d
	}

	return sum
}

func (s sphereObj) Grad(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2 * (xi - s.center[i])
	}

	return g
}

func newBoxCache(t *testing.T, obj interface {
	F([]float64) float64
	Grad([]float64) []float64
}, lo, hi float64, k ...int) (grid.Box, *grid.Cache) {
	t.Helper()
	lb := make([]float64, len(k))
	ub := make([]float64, len(k))
	for i := range k {
		lb[i] = lo
		ub[i] = hi
	}
	box, err := grid.NewBox(lb, ub)
	require.NoError(t, err)
	g, err := grid.NewGrid(box, k)
	require.NoError(t, err)

	return box, grid.NewCache(g, obj)
}

func TestPolish_SphereSingleBasinConvergesToCenter(t *testing.T) {
	t.Parallel()

	obj := sphereObj{center: []float64{0, 0}}
	box, cache := newBoxCache(t, obj, -5, 5, 10, 10)

	cands := basin.DetectStars(cache, basin.DefaultRelTolStar)
	require.NotEmpty(t, cands)
	basins := basin.Cluster(cands, basin.DefaultThresholdRatio)
	require.Len(t, basins, 1)

	points := polish.Polish(obj, box, cache, cands, basins, polish.Options{})
	require.Len(t, points, 1)
	require.InDelta(t, 0, points[0].Objective, 1e-6)
	for _, xi := range points[0].Minimizer {
		require.InDelta(t, 0, xi, 1e-3)
	}
}

// panickyObj panics for any input in a thin slab around x[0]==panicAt,
// simulating an external solver's objective misbehaving on one basin
// while leaving the others healthy.
type panickyObj struct {
	sphereObj
	panicAt float64
}

func (p panickyObj) F(x []float64) float64 {
	if x[0] > p.panicAt-0.01 && x[0] < p.panicAt+0.01 {
		panic("boom")
	}

	return p.sphereObj.F(x)
}

func TestPolish_OneBasinFailureDoesNotAbortOthers(t *testing.T) {
	t.Parallel()

	// Two well-separated spheres' worth of candidates, one of which panics
	// near its own center so it can never be polished.
	obj := panickyObj{sphereObj: sphereObj{center: []float64{0, 0}}, panicAt: 0}
	candidates := []basin.Candidate{
		{Idx: []int{5, 5}, Value: 0.0},
		{Idx: []int{0, 0}, Value: 1.0},
	}
	box, err := grid.NewBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)
	g, err := grid.NewGrid(box, []int{10, 10})
	require.NoError(t, err)
	cache := grid.NewCache(g, obj)

	basins := [][]int{{0}, {1}}
	points := polish.Polish(obj, box, cache, candidates, basins, polish.Options{MaxIters: 50})

	// Basin 0 sits exactly on the panic slab; basin 1 is healthy.
	require.Len(t, points, 1)
}

func TestPolish_RespectsBoxBounds(t *testing.T) {
	t.Parallel()

	obj := sphereObj{center: []float64{10, 10}}
	box, cache := newBoxCache(t, obj, -1, 1, 8, 8)
	cands := basin.DetectStars(cache, basin.DefaultRelTolStar)
	require.NotEmpty(t, cands)
	basins := basin.Cluster(cands, basin.DefaultThresholdRatio)

	points := polish.Polish(obj, box, cache, cands, basins, polish.Options{})
	for _, p := range points {
		for i, xi := range p.Minimizer {
			require.GreaterOrEqual(t, xi, box.LB[i])
			require.LessOrEqual(t, xi, box.UB[i])
		}
	}
}
