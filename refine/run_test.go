package refine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/shgo/grid"
	"github.com/katalvlaran/shgo/refine"
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

func sphereBox(t *testing.T) grid.Box {
	t.Helper()
	box, err := grid.NewBox([]float64{-2, -2}, []float64{2, 2})
	require.NoError(t, err)

	return box
}

func TestRun_SphereConverges(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	report, err := refine.Run(sphereEval{}, box, refine.Options{})
	require.NoError(t, err)
	require.True(t, report.Converged)
	require.Len(t, report.Basins, 1)
	require.GreaterOrEqual(t, report.Iterations, 1)
}

func TestRun_GradientPruningAgreesWithFullScan(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	full, err := refine.Run(sphereEval{}, box, refine.Options{})
	require.NoError(t, err)

	pruned, err := refine.Run(sphereEval{}, box, refine.Options{UseGradientPruning: true})
	require.NoError(t, err)

	require.Equal(t, full.Converged, pruned.Converged)
	require.Len(t, pruned.Basins, len(full.Basins))
}

// TestRun_ExhaustsWithoutSecondIteration pins NDivMax to NDivInitial with
// the default StabilityCount of 2: no single iteration can ever reach a
// streak of 2, so Run must report EXHAUSTED after exactly one completed
// iteration regardless of the objective's actual basin structure.
func TestRun_ExhaustsWithoutSecondIteration(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	report, err := refine.Run(sphereEval{}, box, refine.Options{NDivInitial: 8, NDivMax: 8})
	require.NoError(t, err)
	require.False(t, report.Converged)
	require.Equal(t, 1, report.Iterations)
}

func TestRun_InvalidOptionsErrors(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	_, err := refine.Run(sphereEval{}, box, refine.Options{NDivInitial: 10, NDivMax: 8})
	require.ErrorIs(t, err, refine.ErrInvalidOptions)
}

// flatEval never has a star-minimum candidate below its neighbors strictly
// because it has none: it returns +Inf everywhere, so the cache reports
// every grid vertex as non-finite (NaN) and it is disqualified outright (spec.md §4.4: "Non-finite val(idx)
// disqualifies the vertex outright"), giving zero candidates and therefore
// zero basins at every resolution.
type flatEval struct{}

func (flatEval) F([]float64) float64    { return math.Inf(1) }
func (flatEval) Grad(x []float64) []float64 { return make([]float64, len(x)) }

// TestRun_ZeroBasinsNeverConverges pins spec.md §4.7's "count == prev and
// count > 0" guard: a landscape with zero candidates at every resolution
// must never be reported CONVERGED, however many consecutive iterations
// agree on the count of zero, and must instead run to NDivMax (EXHAUSTED).
func TestRun_ZeroBasinsNeverConverges(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	report, err := refine.Run(flatEval{}, box, refine.Options{NDivInitial: 8, NDivMax: 12, StabilityCount: 2})
	require.NoError(t, err)
	require.False(t, report.Converged)
	require.Empty(t, report.Basins)
	require.Equal(t, 1+(12-8)/2, report.Iterations)
}

type alwaysCancelled struct{}

func (alwaysCancelled) Cancelled() bool { return true }

func TestRun_CancellationStopsAfterFirstIteration(t *testing.T) {
	t.Parallel()

	box := sphereBox(t)
	report, err := refine.Run(sphereEval{}, box, refine.Options{Cancel: alwaysCancelled{}})
	require.NoError(t, err)
	require.False(t, report.Converged)
	require.Equal(t, 1, report.Iterations)
}
