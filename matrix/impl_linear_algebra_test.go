// Package matrix_test contains unit tests for matrix.LU, the one linear-
// algebra kernel hull.CanPrune exercises.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/shgo/matrix"
)

// hide wraps a Matrix to hide its concrete type from LU's *Dense type switch,
// forcing the generic fallback path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("matrix.NewDense(%d,%d): want err == nil, got: %v", r, c, err)
	}
	return m
}

// newFilledDense builds an r×c *Dense from a row-major flat slice of values.
func newFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("newFilledDense: len(vals)=%d, want %d", len(vals), r*c)
	}
	m := mustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
	return m
}

// mulDense computes a*b via the public Matrix interface, for building LU
// fixtures (A = L*U) without depending on a production Mul kernel hull never
// exercises.
func mulDense(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	if a.Cols() != b.Rows() {
		t.Fatalf("mulDense: shape mismatch %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	out := mustDense(t, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum float64
			for k := 0; k < a.Cols(); k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				sum += av * bv
			}
			if err := out.Set(i, j, sum); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
	return out
}

// assertUnitLowerTriangular checks diag(L)=1 and L[i,j]=0 for j>i, exactly.
func assertUnitLowerTriangular(t *testing.T, L matrix.Matrix) {
	t.Helper()
	n := L.Rows()
	if L.Cols() != n {
		t.Fatalf("L must be square, got %dx%d", n, L.Cols())
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := L.At(i, j)
			switch {
			case i == j && v != 1.0:
				t.Fatalf("diag(L)[%d]: want 1, got %.6g", i, v)
			case j > i && v != 0.0:
				t.Fatalf("upper(L)[%d,%d]: want 0, got %.6g", i, j, v)
			}
		}
	}
}

// assertUpperTriangular checks U[i,j]=0 for i>j, exactly.
func assertUpperTriangular(t *testing.T, U matrix.Matrix) {
	t.Helper()
	n := U.Rows()
	if U.Cols() != n {
		t.Fatalf("U must be square, got %dx%d", n, U.Cols())
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			v, _ := U.At(i, j)
			if v != 0.0 {
				t.Fatalf("lower(U)[%d,%d]: want 0, got %.6g", i, j, v)
			}
		}
	}
}

// assertReconstructsLU verifies A == L*U exactly (integer-valued fixtures
// below never accumulate rounding error).
func assertReconstructsLU(t *testing.T, A, L, U matrix.Matrix) {
	t.Helper()
	got := mulDense(t, L, U)
	for i := 0; i < A.Rows(); i++ {
		for j := 0; j < A.Cols(); j++ {
			av, _ := A.At(i, j)
			gv, _ := got.At(i, j)
			if av != gv {
				t.Fatalf("A vs L*U at [%d,%d]: want %.6g, got %.6g", i, j, av, gv)
			}
		}
	}
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.LU(nil)
	if !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("LU(nil): want ErrNilMatrix, got %v", err)
	}

	ns := mustDense(t, 3, 4)
	_, _, err = matrix.LU(ns)
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("LU(3x4): want ErrDimensionMismatch, got %v", err)
	}
}

// Basic (3×3): pick L,U explicitly (Doolittle form, diag(L)=1), set A=L*U,
// then verify LU(A) reproduces the same factors and A == L*U exactly.
func TestLU_Known3x3_Doolittle_FastPath_Correctness(t *testing.T) {
	t.Parallel()

	// L = [[1,0,0],[2,1,0],[3,4,1]], U = [[5,6,7],[0,8,9],[0,0,10]]
	Lexp := newFilledDense(t, 3, 3, []float64{1, 0, 0, 2, 1, 0, 3, 4, 1})
	Uexp := newFilledDense(t, 3, 3, []float64{5, 6, 7, 0, 8, 9, 0, 0, 10})

	A := mulDense(t, Lexp, Uexp)
	Acopy := A.Clone()

	Lgot, Ugot, err := matrix.LU(A)
	if err != nil {
		t.Fatalf("matrix.LU(A): want err == nil, got: %v", err)
	}

	assertUnitLowerTriangular(t, Lgot)
	assertUpperTriangular(t, Ugot)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			gv, _ := Lgot.At(i, j)
			ev, _ := Lexp.At(i, j)
			if gv != ev {
				t.Fatalf("L mismatch at[%d,%d]: want %.6g, got: %.6g", i, j, ev, gv)
			}
			gv, _ = Ugot.At(i, j)
			ev, _ = Uexp.At(i, j)
			if gv != ev {
				t.Fatalf("U mismatch at[%d,%d]: want %.6g, got: %.6g", i, j, ev, gv)
			}
		}
	}

	assertReconstructsLU(t, A, Lgot, Ugot)

	// Input must not mutate.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a1, _ := A.At(i, j)
			a2, _ := Acopy.At(i, j)
			if a1 != a2 {
				t.Fatalf("A mismatch at[%d,%d]: want %.6g, got: %.6g", i, j, a2, a1)
			}
		}
	}
}

// Fast-path vs Fallback (3×3): wrapping the input to hide its concrete type
// must produce the same L and U as the fast path.
func TestLU_Known3x3_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	Lexp := newFilledDense(t, 3, 3, []float64{1, 0, 0, 2, 1, 0, 3, 4, 1})
	Uexp := newFilledDense(t, 3, 3, []float64{5, 6, 7, 0, 8, 9, 0, 0, 10})
	A := mulDense(t, Lexp, Uexp)

	L1, U1, err := matrix.LU(A)
	if err != nil {
		t.Fatalf("matrix.LU(A): want err == nil, got: %v", err)
	}
	L2, U2, err := matrix.LU(hide{A})
	if err != nil {
		t.Fatalf("matrix.LU(hide{A}): want err == nil, got: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v1, _ := L1.At(i, j)
			v2, _ := L2.At(i, j)
			if v1 != v2 {
				t.Fatalf("L mismatch at[%d,%d]: want %.6g, got: %.6g", i, j, v1, v2)
			}
			v1, _ = U1.At(i, j)
			v2, _ = U2.At(i, j)
			if v1 != v2 {
				t.Fatalf("U mismatch at[%d,%d]: want %.6g, got: %.6g", i, j, v1, v2)
			}
		}
	}
}

// Properties on 6×6: construct L (unit lower) and U (upper) with simple
// integer patterns, set A=L*U, then check structure and reconstruction.
func TestLU_Factor_Reconstruction_6x6(t *testing.T) {
	t.Parallel()

	n := 6
	L := mustDense(t, n, n)
	U := mustDense(t, n, n)
	for i := 0; i < n; i++ {
		_ = L.Set(i, i, 1.0)
		for j := 0; j < i; j++ {
			_ = L.Set(i, j, float64(i-j))
		}
		for j := i; j < n; j++ {
			_ = U.Set(i, j, float64(1+i+j))
		}
	}

	A := mulDense(t, L, U)
	Lgot, Ugot, err := matrix.LU(A)
	if err != nil {
		t.Fatalf("matrix.LU(A): want err == nil, got: %v", err)
	}

	assertUnitLowerTriangular(t, Lgot)
	assertUpperTriangular(t, Ugot)
	assertReconstructsLU(t, A, Lgot, Ugot)
}
