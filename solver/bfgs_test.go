package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/shgo/solver"
	"github.com/stretchr/testify/require"
)

func TestBFGS_SphereConvergesToCenter(t *testing.T) {
	t.Parallel()

	obj := sphere{center: []float64{1.5, -2.0}}
	lb, ub := boundsN(2, -10, 10)
	x0 := []float64{5, 5}

	res, err := solver.NewBFGS().Solve(obj, x0, lb, ub, 200)
	require.NoError(t, err)
	require.InDelta(t, 0, l2Dist(res.Minimizer, obj.center), 1e-4)
	require.InDelta(t, 0, res.Value, 1e-6)
}

func TestBFGS_RosenbrockConvergesNearOptimum(t *testing.T) {
	t.Parallel()

	obj := rosenbrock2D{}
	lb, ub := boundsN(2, -5, 5)
	x0 := []float64{-1.2, 1.0}

	res, err := solver.NewBFGS().Solve(obj, x0, lb, ub, 500)
	require.NoError(t, err)
	require.InDelta(t, 0, l2Dist(res.Minimizer, []float64{1, 1}), 1e-2)
}

func TestBFGS_RespectsBoxBounds(t *testing.T) {
	t.Parallel()

	// Unconstrained minimum is at (10, 10), well outside the box.
	obj := sphere{center: []float64{10, 10}}
	lb, ub := boundsN(2, -1, 1)
	x0 := []float64{0, 0}

	res, err := solver.NewBFGS().Solve(obj, x0, lb, ub, 200)
	require.NoError(t, err)
	for i, xi := range res.Minimizer {
		require.GreaterOrEqual(t, xi, lb[i])
		require.LessOrEqual(t, xi, ub[i])
	}
	// The constrained minimum sits at the corner (1,1).
	require.InDelta(t, 1.0, res.Minimizer[0], 1e-2)
	require.InDelta(t, 1.0, res.Minimizer[1], 1e-2)
}

func TestBFGS_NonFiniteStartErrors(t *testing.T) {
	t.Parallel()

	obj := sphere{center: []float64{0, 0}}
	lb, ub := boundsN(2, -10, 10)

	_, err := solver.NewBFGS().Solve(obj, []float64{math.NaN(), 0}, lb, ub, 10)
	require.ErrorIs(t, err, solver.ErrNonFiniteStart)
}

func TestBFGS_DimensionMismatchErrors(t *testing.T) {
	t.Parallel()

	obj := sphere{center: []float64{0, 0}}
	_, err := solver.NewBFGS().Solve(obj, []float64{0, 0}, []float64{-1}, []float64{1, 1}, 10)
	require.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

func TestBFGS_InvalidBoundsErrors(t *testing.T) {
	t.Parallel()

	obj := sphere{center: []float64{0, 0}}
	_, err := solver.NewBFGS().Solve(obj, []float64{0, 0}, []float64{1, -1}, []float64{-1, 1}, 10)
	require.ErrorIs(t, err, solver.ErrInvalidBounds)
}
