package polish

import (
	"runtime"

	"github.com/katalvlaran/shgo/solver"
)

// Solver is the capability Polish needs from a local optimizer: the same
// small Solve(obj, x0, lb, ub, maxIters) contract solver.BFGS and
// solver.NelderMead already satisfy structurally. shgo.Options.Solver is
// this same shape; shgo never needs its own declaration since Go
// interfaces are structural, but it type-aliases this one so callers only
// ever see one name.
type Solver interface {
	Solve(obj solver.Objective, x0, lb, ub []float64, maxIters int) (solver.Result, error)
}

// MinimumPoint is one polished, deduplicated local minimum.
type MinimumPoint struct {
	Minimizer []float64
	Objective float64
}

// Options tunes Polish. Every field's zero value selects a documented
// default, the same "zero value is the default" convention
// matrix.Option/core.GraphOption use for their functional options, adapted
// here to plain struct fields since Polish has no constructor to thread
// options through.
type Options struct {
	// Solver is the primary local optimizer. Nil selects solver.NewBFGS().
	Solver Solver
	// Fallback is tried when Solver fails or returns a non-finite result.
	// Nil selects solver.NewNelderMead().
	Fallback Solver
	// MaxIters bounds both Solver and Fallback calls. Zero selects
	// DefaultMaxIters.
	MaxIters int
	// MinDistanceTolerance is the minimum L2 distance between distinct
	// minima during deduplication. Zero selects DefaultMinDistanceTolerance.
	MinDistanceTolerance float64
	// MaxParallelPolish bounds the number of basins polished concurrently.
	// Zero selects runtime.GOMAXPROCS(0).
	MaxParallelPolish int
	// SecondaryValueCheck additionally requires |f-u.f| < max(DefaultValueCloseAbsTol,
	// |u.f|*DefaultValueCloseRelTol) before two geometrically close minima
	// merge, guarding against collapsing distinct minima that happen to sit
	// near one another. Disabled by default (distance alone decides).
	SecondaryValueCheck bool
}

func (o Options) solverOrDefault() Solver {
	if o.Solver != nil {
		return o.Solver
	}

	return solver.NewBFGS()
}

func (o Options) fallbackOrDefault() Solver {
	if o.Fallback != nil {
		return o.Fallback
	}

	return solver.NewNelderMead()
}

func (o Options) maxIters() int {
	if o.MaxIters > 0 {
		return o.MaxIters
	}

	return DefaultMaxIters
}

func (o Options) minDistanceTolerance() float64 {
	if o.MinDistanceTolerance > 0 {
		return o.MinDistanceTolerance
	}

	return DefaultMinDistanceTolerance
}

func (o Options) maxParallelPolish() int {
	if o.MaxParallelPolish > 0 {
		return o.MaxParallelPolish
	}

	return runtime.GOMAXPROCS(0)
}
