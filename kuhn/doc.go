// Package kuhn enumerates the Kuhn triangulation of a grid: for every grid
// cell (hypercube with lower corner idx0), the N! simplices produced by all
// permutations of the coordinate axes.
//
// The permutation generator runs Heap's algorithm as an explicit, resumable
// state machine over a fixed-size buffer — no per-iteration heap allocation,
// no recursion — and the simplex enumerator streams (cell, permutation)
// pairs without ever materializing the full Cartesian product, mirroring
// the builder package's closure-based Constructor iterators and the tsp
// package's discipline of deterministic, allocation-conscious scanning.
package kuhn

import "errors"

// ErrInvalidDimension indicates a negative dimension was requested.
var ErrInvalidDimension = errors.New("kuhn: dimension must be >= 0")
