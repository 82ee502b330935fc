package polish

import (
	"math"

	"github.com/katalvlaran/shgo/basin"
	"github.com/katalvlaran/shgo/grid"
	"github.com/katalvlaran/shgo/solver"
	"golang.org/x/sync/errgroup"
)

// Polish turns each basin into at most one MinimumPoint and deduplicates
// the result. basins holds, per basin, the indices into candidates
// belonging to it (basin.Cluster's output); candidates is the full
// star-minimum candidate slice (basin.DetectStars's output); cache
// provides the physical position of a candidate's grid index. obj is the
// objective the external solver is called against — ordinarily the same
// Evaluator the cache itself was built with.
//
// Polish never re-enters the Kuhn triangulation or clustering stages; it
// only consumes their output.
func Polish(obj solver.Objective, box grid.Box, cache *grid.Cache, candidates []basin.Candidate, basins [][]int, opts Options) []MinimumPoint {
	points := make([]MinimumPoint, len(basins))
	ok := make([]bool, len(basins))

	var eg errgroup.Group
	eg.SetLimit(opts.maxParallelPolish())
	for i, members := range basins {
		i, members := i, members
		eg.Go(func() error {
			best := members[0]
			for _, m := range members[1:] {
				if candidates[m].Value < candidates[best].Value {
					best = m
				}
			}
			x0 := cache.Position(candidates[best].Idx)
			mp, success := polishOne(obj, x0, box, opts)
			points[i] = mp
			ok[i] = success

			return nil
		})
	}
	_ = eg.Wait() // polishOne never returns an error of its own; failure is encoded in ok

	successful := make([]MinimumPoint, 0, len(basins))
	for i, got := range ok {
		if got {
			successful = append(successful, points[i])
		}
	}

	return Dedup(successful, opts.minDistanceTolerance(), opts.SecondaryValueCheck)
}

// insetStart pulls x an epsilon inside the box component-wise, per axis
// epsilon = max(1e-10, span*1e-6), so the external optimizer never starts
// exactly on a boundary.
func insetStart(x []float64, box grid.Box) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	for i := range out {
		span := box.UB[i] - box.LB[i]
		eps := epsilonFor(span)
		lo, hi := box.LB[i]+eps, box.UB[i]-eps
		if lo > hi {
			lo, hi = box.LB[i], box.UB[i]
		}
		if out[i] < lo {
			out[i] = lo
		} else if out[i] > hi {
			out[i] = hi
		}
	}

	return out
}

// polishOne runs the documented fallback sequence: Options.Solver, then
// Options.Fallback, then the raw (epsilon-inset) starting point. ok is
// false only if every step, including re-evaluating the objective at the
// starting point, produced a non-finite value or panicked.
func polishOne(obj solver.Objective, x0 []float64, box grid.Box, opts Options) (MinimumPoint, bool) {
	start := insetStart(x0, box)
	lb, ub := box.LB, box.UB
	maxIters := opts.maxIters()

	if res, err := safeSolve(opts.solverOrDefault(), obj, start, lb, ub, maxIters); err == nil && !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0) {
		return MinimumPoint{Minimizer: res.Minimizer, Objective: res.Value}, true
	}
	if res, err := safeSolve(opts.fallbackOrDefault(), obj, start, lb, ub, maxIters); err == nil && !math.IsNaN(res.Value) && !math.IsInf(res.Value, 0) {
		return MinimumPoint{Minimizer: res.Minimizer, Objective: res.Value}, true
	}

	fval, safeOK := safeEval(obj, start)
	if !safeOK {
		return MinimumPoint{}, false
	}

	return MinimumPoint{Minimizer: start, Objective: fval}, true
}

// safeSolve recovers a panicking Solver the same way grid.Cache.safeEval
// recovers a panicking Evaluator: a local optimizer is an external
// collaborator per spec.md §1 and must not be allowed to bring down a
// sibling basin's polishing goroutine.
func safeSolve(s Solver, obj solver.Objective, x0, lb, ub []float64, maxIters int) (result solver.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrSolverPanicked
		}
	}()

	return s.Solve(obj, x0, lb, ub, maxIters)
}

func safeEval(obj solver.Objective, x []float64) (value float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	value = obj.F(x)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
