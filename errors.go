package shgo

import "errors"

// Sentinel errors, following core's and builder's "only sentinel
// variables, wrapped with %w, checked via errors.Is" policy. The first
// four are InvalidInput errors validateInputs rejects before any grid or
// cache is constructed. ErrCancelled is returned together with the
// partial Result. Analyze does not return ErrObjectiveFailure or
// ErrLocalSolverFailure: objective failures are absorbed by the cache and
// failed polishing drops the basin.
var (
	ErrEmptyBounds        = errors.New("shgo: bounds must be non-empty")
	ErrInvalidBounds      = errors.New("shgo: lb[i] must be < ub[i] for all i")
	ErrInvalidDivisions   = errors.New("shgo: n_div_initial and n_div_max must be >= 1")
	ErrInvalidStability   = errors.New("shgo: stability_count must be >= 1")
	ErrObjectiveFailure   = errors.New("shgo: objective returned NaN/Inf or panicked")
	ErrLocalSolverFailure = errors.New("shgo: local solver failed on every fallback")
	ErrCancelled          = errors.New("shgo: analysis cancelled")
)
