// Package matrix provides a Dense row-major matrix over a small Matrix
// interface, plus an LU (Doolittle) factorization kernel.
//
// hull builds on this package alone: CanPrune assembles the augmented
// barycentric system for gradient-hull membership as a Dense matrix and
// solves it via LU + forward/backward substitution. The package is
// deliberately narrow — it carries only what hull exercises, not the
// teacher's full graph/statistics surface (see DESIGN.md).
package matrix
