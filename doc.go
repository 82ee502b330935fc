// Package shgo enumerates every local-minimum basin of a box-bounded,
// N-dimensional objective by combining seven independently testable stages:
//
//	grid/   — box discretization and a memoized, panic-safe objective cache
//	kuhn/   — Kuhn (Freudenthal) triangulation of the grid into simplices
//	hull/   — gradient-hull membership test, an optional pruning shortlist
//	basin/  — star-minimum candidate detection and value-relative clustering
//	solver/ — pluggable local optimizers (BFGS, Nelder-Mead) for polishing
//	polish/ — per-basin polishing, fallback sequencing and deduplication
//	refine/ — the resolution-stability loop tying detection and clustering
//	          together across increasing grid resolutions
//
// Analyze is the single entry point: it wires refine.Run's output through
// polish.Polish and returns every distinct local minimum found, sorted by
// objective value. None of the subpackages import shgo — each depends on a
// small duck-typed interface (grid.Evaluator, solver.Objective,
// polish.Solver, refine.Canceller) that shgo's own types satisfy
// structurally, keeping the dependency graph a strict DAG rooted here.
package shgo
