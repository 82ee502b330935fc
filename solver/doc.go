// Package solver provides the default pluggable local optimizers used to
// polish a basin's star-minimum candidate into a precise stationary point:
// BFGS, a box-projected quasi-Newton descent with Armijo backtracking line
// search, and NelderMead, a derivative-free simplex search used when BFGS
// fails to converge or the objective's gradient is unreliable near the
// boundary.
//
// Neither type is privileged: both satisfy the same small Solver interface,
// and a caller may substitute an entirely different implementation (see
// shgo.WithSolver) without this package depending on shgo — the interface
// is polish.Solver (aliased as shgo.Solver), BFGS and NelderMead satisfy it
// structurally, and polish only imports solver to obtain the defaults.
//
// The teacher repo carries no numerical optimization code of its own; this
// package follows its ambient idiom (sentinel errors, plain struct-field
// tunables whose zero value selects a default, no panics on caller-triggered conditions) while the algorithms
// themselves are the standard textbook BFGS and Nelder-Mead, grounded on no
// single teacher file beyond that idiom (see DESIGN.md).
package solver

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrDimensionMismatch indicates x0, lb, and ub do not share a length,
	// or a caller supplied zero dimensions.
	ErrDimensionMismatch = errors.New("solver: x0, lb, ub must be non-empty and same-length")

	// ErrInvalidBounds indicates lb[i] > ub[i] for some axis.
	ErrInvalidBounds = errors.New("solver: lb[i] must be <= ub[i] for all axes")

	// ErrNonFiniteStart indicates the objective or its gradient is
	// non-finite at the starting point x0, before any iteration runs.
	ErrNonFiniteStart = errors.New("solver: objective or gradient is non-finite at x0")

	// ErrNoProgress indicates BFGS's first line search failed to find a
	// strictly improving point, or NelderMead ended with no finite vertex
	// to report.
	ErrNoProgress = errors.New("solver: no improving step found")
)
