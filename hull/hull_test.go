package hull_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/shgo/hull"
	"github.com/stretchr/testify/require"
)

func TestCanPrune_OriginInsideTriangle(t *testing.T) {
	t.Parallel()

	// Gradients surrounding the origin in R^2: origin is a convex
	// combination of these three vectors, so the simplex cannot be pruned.
	grads := [][]float64{
		{1, 0},
		{-1, 1},
		{-1, -1},
	}
	prune, err := hull.CanPrune(grads)
	require.NoError(t, err)
	require.False(t, prune)
}

func TestCanPrune_OriginOutsideTriangle(t *testing.T) {
	t.Parallel()

	// All gradients point into the same half-plane (positive x): the
	// origin cannot be a convex combination, so this is safe to prune.
	grads := [][]float64{
		{1, 0},
		{2, 1},
		{3, -1},
	}
	prune, err := hull.CanPrune(grads)
	require.NoError(t, err)
	require.True(t, prune)
}

func TestCanPrune_NonFiniteRetains(t *testing.T) {
	t.Parallel()

	grads := [][]float64{
		{1, 0},
		{math.NaN(), 1},
		{-1, -1},
	}
	prune, err := hull.CanPrune(grads)
	require.NoError(t, err)
	require.False(t, prune, "non-finite gradient must never be pruned")
}

func TestCanPrune_SingularSystemRetains(t *testing.T) {
	t.Parallel()

	// Three collinear/duplicate gradients make the system singular.
	grads := [][]float64{
		{1, 1},
		{1, 1},
		{1, 1},
	}
	prune, err := hull.CanPrune(grads)
	require.NoError(t, err)
	require.False(t, prune)
}

func TestCanPrune_SingleVertexRetains(t *testing.T) {
	t.Parallel()

	prune, err := hull.CanPrune([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	require.False(t, prune)
}

func TestCanPrune_DimensionMismatchErrors(t *testing.T) {
	t.Parallel()

	_, err := hull.CanPrune([][]float64{{1, 2}, {1}})
	require.ErrorIs(t, err, hull.ErrDimensionMismatch)

	_, err = hull.CanPrune(nil)
	require.ErrorIs(t, err, hull.ErrDimensionMismatch)
}

func TestCanPruneTol_BoundaryIsRetained(t *testing.T) {
	t.Parallel()

	// Origin lies exactly on an edge of the simplex (one weight == 0):
	// within tolerance this must NOT be pruned.
	grads := [][]float64{
		{1, 0},
		{-1, 0},
		{0, 1},
	}
	prune, err := hull.CanPruneTol(grads, hull.DefaultTolerance)
	require.NoError(t, err)
	require.False(t, prune)
}
