package refine

import (
	"github.com/katalvlaran/shgo/basin"
	"github.com/katalvlaran/shgo/grid"
)

// Report is one completed Run's final state, handed up to shgo.Analyze to
// be polished and assembled into a result.
type Report struct {
	// Candidates are the star-minimum candidates detected at the final
	// iteration's resolution.
	Candidates []basin.Candidate

	// Basins groups Candidates' indices into clusters, one entry per
	// basin, indices referring into Candidates.
	Basins [][]int

	// Cache is the grid cache backing the final iteration, still valid for
	// Position/GetVertex lookups by the caller (polish needs it).
	Cache *grid.Cache

	// Box is the domain Run was given, echoed back for convenience.
	Box grid.Box

	// Iterations is how many resolutions Run sampled before stopping.
	Iterations int

	// Converged is true when the basin count held steady for
	// Options.StabilityCount consecutive iterations (CONVERGED); false
	// when Run gave up after NDivMax without stabilizing (EXHAUSTED) or
	// was cancelled mid-loop.
	Converged bool

	// Cancelled is true when Run stopped because Options.Cancel fired
	// between iterations, as opposed to exhausting NDivMax naturally.
	Cancelled bool
}

// Run discretizes box at increasing resolution, re-clustering star-minima
// into basins each time, until the basin count stabilizes (CONVERGED) or
// the resolution exceeds Options.NDivMax (EXHAUSTED). See the package doc
// for the state machine's grounding.
//
// A non-nil error means Run could not complete even one iteration (a bad
// grid/box, a detection failure); Report is always safe to inspect
// otherwise, including when Run stopped on cancellation — Converged is
// false in that case and Iterations reflects the last iteration actually
// completed.
func Run(obj grid.Evaluator, box grid.Box, opts Options) (Report, error) {
	if opts.nDivMax() < opts.nDivInitial() || opts.StabilityCount < 0 {
		return Report{}, ErrInvalidOptions
	}

	dim := box.Dim()
	k := opts.nDivInitial()
	streak := 0
	prevCount := -1
	var last Report
	iteration := 0

	for {
		if k > opts.nDivMax() {
			last.Converged = false
			if opts.Progress != nil && iteration > 0 {
				opts.Progress("exhausted", k-DefaultNDivStep, len(last.Basins))
			}

			return last, nil
		}
		if iteration > 0 && opts.cancelled() {
			last.Converged = false
			last.Cancelled = true

			return last, nil
		}

		kVec := make([]int, dim)
		for i := range kVec {
			kVec[i] = k
		}

		g, err := grid.NewGrid(box, kVec)
		if err != nil {
			return Report{}, err
		}
		cache := grid.NewCache(g, obj)

		var candidates []basin.Candidate
		if opts.UseGradientPruning {
			shortlist := prunedShortlist(cache, kVec)
			candidates = basin.DetectStarsSubset(cache, shortlist, opts.relTolStar())
		} else {
			candidates, err = basin.DetectStarsParallel(cache, opts.relTolStar(), opts.maxParallelScan())
			if err != nil {
				return Report{}, err
			}
		}
		basins := basin.Cluster(candidates, opts.thresholdRatio())

		iteration++
		last = Report{
			Candidates: candidates,
			Basins:     basins,
			Cache:      cache,
			Box:        box,
			Iterations: iteration,
		}

		count := len(basins)
		if count == prevCount && count > 0 {
			streak++
		} else {
			streak = 0
			prevCount = count
		}

		if streak >= opts.stabilityCount() {
			last.Converged = true
			if opts.Progress != nil {
				opts.Progress("converged", k, count)
			}

			return last, nil
		}

		if opts.Progress != nil {
			opts.Progress("sample", k, count)
		}

		k += DefaultNDivStep
	}
}
