// Package polish converts a clustered basin into a single polished
// MinimumPoint and deduplicates the resulting set across basins.
//
// For each basin, Polish picks its lowest-valued star-minimum candidate,
// pulls the candidate's physical position an epsilon inside the box (to
// avoid boundary artifacts in the external optimizer), and hands it to
// Options.Solver. If that fails or returns a non-finite result, it retries
// with Options.Fallback (a derivative-free method), and if that also fails
// it reports the epsilon-inset starting point itself as the minimum. A
// basin whose every fallback fails (including the raw starting point)
// contributes nothing to the final result — it is counted in NumBasins
// upstream but not in LocalMinima — matching the "a failure in polishing
// one basin does not prevent polishing of other basins" isolation
// contract. Basins are polished concurrently, bounded by
// Options.MaxParallelPolish, via the same golang.org/x/sync/errgroup
// fan-out idiom used by basin's parallel scan — the wrapper-around-an-
// external-collaborator shape this package follows is grounded on the
// flow package's Options-plus-external-solver-call style.
package polish

import (
	"errors"
	"math"
)

// ErrSolverPanicked is the synthetic error substituted for a recovered
// Solver panic, triggering the documented fallback sequence the same way
// a returned error does.
var ErrSolverPanicked = errors.New("polish: solver panicked")

// Default tunables. See Options for the field each one backs.
const (
	DefaultMaxIters              = 500
	DefaultMinDistanceTolerance  = 0.05
	DefaultValueCloseAbsTol      = 1e-6
	DefaultValueCloseRelTol      = 1e-4
)

func epsilonFor(span float64) float64 {
	return math.Max(1e-10, span*1e-6)
}
