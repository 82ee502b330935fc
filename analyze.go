package shgo

import (
	"sort"

	"github.com/katalvlaran/shgo/grid"
	"github.com/katalvlaran/shgo/polish"
	"github.com/katalvlaran/shgo/refine"
)

// Analyze enumerates every distinct local-minimum basin of obj within its
// box, using the Betti-stability refinement loop (refine.Run) followed by
// per-basin local polishing and deduplication (polish.Polish). Results are
// sorted by objective value ascending.
//
// A non-nil error usually means Analyze could not complete at all —
// invalid bounds/options (checked up front, fail-fast) or a failure
// deeper in the pipeline it could not recover from. The one exception is
// ErrCancelled: per spec.md §7, cancellation surfaces at the next
// iteration boundary with a partial Result still populated from the last
// completed iteration, so a caller checking errors.Is(err, ErrCancelled)
// may still use Result.
func Analyze(obj Objective, opts ...Option) (Result, error) {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	box, err := validateInputs(obj, o)
	if err != nil {
		return Result{}, err
	}

	runID := o.runID()

	var cancel refine.Canceller
	if o.Cancel != nil {
		cancel = o.Cancel
	}

	var progress func(stage string, k, numBasins int)
	if o.Verbose != nil {
		progress = func(stage string, k, numBasins int) {
			o.Verbose(ProgressEvent{Stage: stage, K: k, NumBasins: numBasins})
		}
	}

	report, err := refine.Run(obj, box, refine.Options{
		NDivInitial:        o.nDivInitial(),
		NDivMax:            o.nDivMax(),
		StabilityCount:     o.stabilityCount(),
		ThresholdRatio:     o.thresholdRatio(),
		RelTolStar:         o.relTolStar(),
		UseGradientPruning: o.UseGradientPruning,
		Cancel:             cancel,
		Progress:           progress,
	})
	if err != nil {
		return Result{}, err
	}

	polished := polish.Polish(obj, box, report.Cache, report.Candidates, report.Basins, polish.Options{
		Solver:               o.Solver,
		MaxIters:             o.localMaxIters(),
		MinDistanceTolerance: o.minDistanceTolerance(),
		MaxParallelPolish:    o.maxParallelPolish(),
	})

	minima := make([]MinimumPoint, len(polished))
	for i, p := range polished {
		minima[i] = MinimumPoint{Minimizer: p.Minimizer, Objective: p.Objective}
	}
	sort.Slice(minima, func(i, j int) bool { return minima[i].Objective < minima[j].Objective })

	result := Result{
		LocalMinima:     minima,
		NumBasins:       len(report.Basins),
		Iterations:      report.Iterations,
		Converged:       report.Converged,
		EvaluationCount: int(report.Cache.EvaluationCount()),
		RunID:           runID,
	}

	if report.Cancelled {
		return result, ErrCancelled
	}

	return result, nil
}

// validateInputs performs the InvalidInput checks spec.md §6 requires
// before any grid or cache is constructed: non-empty, well-ordered bounds
// and sane division/stability settings.
func validateInputs(obj Objective, o Options) (grid.Box, error) {
	lb, ub := obj.LB(), obj.UB()
	if len(lb) == 0 || len(ub) == 0 {
		return grid.Box{}, ErrEmptyBounds
	}
	if len(lb) != len(ub) {
		return grid.Box{}, ErrInvalidBounds
	}
	for i := range lb {
		if !(lb[i] < ub[i]) {
			return grid.Box{}, ErrInvalidBounds
		}
	}

	// A zero field means "use the documented default" (see Options); only
	// an explicit negative value is a caller error worth rejecting here.
	if o.NDivInitial < 0 || o.NDivMax < 0 || o.nDivMax() < o.nDivInitial() {
		return grid.Box{}, ErrInvalidDivisions
	}
	if o.StabilityCount < 0 {
		return grid.Box{}, ErrInvalidStability
	}

	box, err := grid.NewBox(lb, ub)
	if err != nil {
		return grid.Box{}, ErrInvalidBounds
	}

	return box, nil
}
