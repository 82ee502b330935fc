package hull

import (
	"math"

	"github.com/katalvlaran/shgo/matrix"
)

// DefaultTolerance is the default slack added to the zero bound when
// classifying a barycentric weight as non-negative, guarding against
// floating point noise producing a false prune at a simplex's boundary.
const DefaultTolerance = 1e-9

// CanPrune reports whether the origin provably lies OUTSIDE the convex hull
// of the given simplex vertex gradients, meaning the simplex satisfies no
// first-order stationarity condition and is safe to skip during the more
// expensive star-minimum scan.
//
// gradients holds one N-dimensional gradient vector per simplex vertex; a
// simplex in R^N always supplies exactly N+1 of them, but CanPrune only
// requires len(gradients) >= 1 and every vector the same length.
//
// CanPrune is conservative: any non-finite gradient component, a singular
// barycentric system, or an inconclusive membership test all resolve to
// "cannot prune" (false) so the caller always falls back to evaluating the
// simplex directly. It never produces a false prune.
func CanPrune(gradients [][]float64) (bool, error) {
	return CanPruneTol(gradients, DefaultTolerance)
}

// CanPruneTol is CanPrune with an explicit non-negativity slack tol.
func CanPruneTol(gradients [][]float64, tol float64) (bool, error) {
	m := len(gradients)
	if m == 0 {
		return false, ErrDimensionMismatch
	}
	dim := len(gradients[0])
	for _, g := range gradients {
		if len(g) != dim {
			return false, ErrDimensionMismatch
		}
		for _, v := range g {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				// Cannot safely reason about a non-finite gradient: retain.
				return false, nil
			}
		}
	}

	// A single vertex (dim == 0, or a degenerate one-point "simplex") never
	// yields a strict first-order exclusion: retain unconditionally.
	if dim == 0 || m == 1 {
		return false, nil
	}

	lambda, singular := solveBarycentric(gradients)
	if singular {
		// Degenerate system: inconclusive, retain.
		return false, nil
	}

	for _, lv := range lambda {
		if math.IsNaN(lv) {
			// Degenerate solve (near-zero pivot produced a NaN): inconclusive, retain.
			return false, nil
		}
		if lv < -tol {
			return true, nil // a negative weight proves origin is outside the hull
		}
	}

	return false, nil
}

// solveBarycentric solves the (m)x(m) system built from m gradient vectors
// (m == dim+1 for a non-degenerate simplex) for the barycentric weights of
// the origin: rows 0..dim-1 enforce sum(lambda_j * grad_j[i]) == 0 for each
// coordinate i, and the final row enforces sum(lambda_j) == 1.
//
// It reports singular=true on a zero or non-finite pivot of the unpivoted
// LU, which covers every system with no unique solution and also some
// solvable systems whose leading pivot vanishes; lambda is then nil and the
// caller must treat the result as inconclusive.
func solveBarycentric(gradients [][]float64) (lambda []float64, singular bool) {
	m := len(gradients)
	dim := len(gradients[0])

	a, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, true
	}
	for col := 0; col < m; col++ {
		g := gradients[col]
		for row := 0; row < dim; row++ {
			if err = a.Set(row, col, g[row]); err != nil {
				return nil, true
			}
		}
		if err = a.Set(dim, col, 1.0); err != nil {
			return nil, true
		}
	}
	// Any extra rows beyond dim (m > dim+1, a non-simplex caller) stay zero
	// except the constraint row already written at index dim; such rows
	// make the system singular, which is handled uniformly below.

	L, U, err := matrix.LU(a)
	if err != nil {
		return nil, true
	}

	b := make([]float64, m)
	b[m-1] = 1.0 // the sum-to-one constraint row (last row) carries the single 1 RHS entry

	y := make([]float64, m)
	x := make([]float64, m)

	// Forward substitution: L*y = b (L is unit lower triangular).
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			lik, _ := L.At(i, k)
			sum += lik * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U*x = y.
	for i := m - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < m; k++ {
			uik, _ := U.At(i, k)
			sum += uik * x[k]
		}
		pivot, _ := U.At(i, i)
		if pivot == 0 || math.IsNaN(pivot) || math.Abs(pivot) < 1e-300 {
			return nil, true
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, false
}
