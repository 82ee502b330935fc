package shgo

import "github.com/google/uuid"

// Objective is the user-supplied landscape to analyze: an N-dimensional
// scalar function plus its gradient, box-bounded by LB/UB. It satisfies
// grid.Evaluator, solver.Objective, and polish's solver.Objective
// structurally — shgo is the only package that declares this full shape;
// everything downstream only ever asks for the F/Grad subset it needs.
type Objective interface {
	F(x []float64) float64
	Grad(x []float64) []float64
	LB() []float64
	UB() []float64
}

// MinimumPoint is one polished, deduplicated local minimum.
type MinimumPoint struct {
	Minimizer []float64
	Objective float64
}

// Result is Analyze's return value: every distinct local minimum found,
// sorted by Objective ascending, plus the run's summary statistics.
type Result struct {
	LocalMinima     []MinimumPoint
	NumBasins       int
	Iterations      int
	Converged       bool
	EvaluationCount int

	// RunID correlates this Analyze call's verbose progress events and any
	// external logging a caller correlates against it; see WithRunID.
	RunID uuid.UUID
}

// ProgressEvent is one notification delivered to a WithVerbose hook.
type ProgressEvent struct {
	// Stage names the refinement state the loop just completed:
	// "sample", "converged", or "exhausted".
	Stage string

	// K is the per-axis division count of the iteration just sampled.
	K int

	// NumBasins is the basin count detected at this iteration.
	NumBasins int
}
