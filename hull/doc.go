// Package hull decides whether the origin lies in the convex hull of a
// simplex's vertex gradients — the first-order necessary condition used to
// prune simplices that cannot contain a stationary point before the more
// expensive star-minimum scan runs over them.
//
// For N+1 affinely independent points in R^N, the barycentric coordinates
// of any query point (here, the origin) are the unique solution of an
// (N+1)x(N+1) linear system built from the points themselves plus the
// sum-to-one constraint. The origin lies in the hull iff every barycentric
// weight is non-negative. This package solves that system via the Doolittle
// LU decomposition exposed by the matrix package, then a single forward and
// backward substitution pass: the same forward/backward substitution a full
// matrix inverse would run once per identity column, done here for the
// single right-hand side this package actually needs.
package hull

import "errors"

// ErrDimensionMismatch is returned when gradients do not share a common
// dimension, or a caller supplies zero gradients.
var ErrDimensionMismatch = errors.New("hull: gradients must be non-empty and same-length")
