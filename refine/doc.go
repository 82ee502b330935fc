// Package refine drives the Betti-stability refinement loop: repeatedly
// re-discretize the box at increasing resolution, re-cluster the resulting
// star-minima into basins, and stop once the basin count has held steady
// for Options.StabilityCount consecutive iterations (CONVERGED) or the
// resolution has exceeded Options.NDivMax without stabilizing (EXHAUSTED).
//
// Run owns exactly one concern: deciding how many times to re-sample and
// when to stop. It delegates grid construction to grid, star-candidate
// detection to basin (optionally shortlisted through pruning.go's
// gradient-hull filter), and clustering to basin.Cluster; it never touches
// local optimization, which is polish's concern.
//
// The explicit state machine here — build this iteration's inputs, decide
// whether to keep looping, report why it stopped — is grounded on
// tsp/solve.go's two-stage dispatcher (validate once, then route by an
// explicit named stage), generalized from a one-shot dispatch into a loop
// whose exit condition is itself part of the contract.
package refine

import "errors"

// ErrInvalidOptions is returned when NDivMax < NDivInitial or
// StabilityCount is negative (zero selects the default), conditions Run
// fails fast on rather than looping forever or never converging.
var ErrInvalidOptions = errors.New("refine: NDivMax must be >= NDivInitial and StabilityCount must be >= 1")
