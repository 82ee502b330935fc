// Package grid defines the rectilinear lattice over a box-bounded domain and
// the memoized, concurrency-safe point cache laid over it.
//
// A Grid fixes the coordinate system: it maps an N-tuple of nonnegative
// integer indices to physical positions inside a Box via the direct formula
// (never cumulative addition, to bound floating-point error to O(1)).
// A Cache sits on top of a Grid and memoizes (value, gradient) pairs
// produced by an Evaluator, guaranteeing at-most-one evaluation per index
// under concurrent access. Lookups outside the valid index range return the
// sentinel value +Inf (infinity padding), so boundary points are always
// admissible as local minima without special-case code downstream.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyBox indicates a Box with zero dimensions.
	ErrEmptyBox = errors.New("grid: box must have at least one dimension")

	// ErrInvalidBox indicates lb[i] >= ub[i] for some axis.
	ErrInvalidBox = errors.New("grid: lb[i] must be < ub[i] for all axes")

	// ErrInvalidDivisions indicates a division count k[i] < 1.
	ErrInvalidDivisions = errors.New("grid: division counts must be >= 1")

	// ErrDimensionMismatch indicates an index, position, or divisions slice
	// whose length does not match the box dimensionality.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
