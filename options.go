package shgo

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/katalvlaran/shgo/polish"
)

// Default tunables. See Options for the field each one backs.
const (
	DefaultNDivInitial           = 8
	DefaultNDivMax               = 25
	DefaultStabilityCount        = 2
	DefaultThresholdRatio        = 0.1
	DefaultMinDistanceTolerance  = 0.05
	DefaultLocalMaxIters         = 500
	DefaultRelTolStar            = 1e-10
)

// Solver is the capability a pluggable local optimizer needs; BFGS and
// NelderMead in package solver satisfy it, and so does any caller-supplied
// type with the same method — the alias just saves an extra import for
// the common case.
type Solver = polish.Solver

// Options configures one Analyze call. The zero value is usable: every
// field's zero value selects the Default constant documented alongside
// it — the same functional-option idiom as core.GraphOption and
// matrix.Option, built through the With* constructors below rather than
// set directly by callers.
type Options struct {
	NDivInitial          int
	NDivMax              int
	StabilityCount       int
	ThresholdRatio       float64
	MinDistanceTolerance float64
	LocalMaxIters        int
	UseGradientPruning   bool
	RelTolStar           float64
	Verbose              func(ProgressEvent)
	Solver               Solver
	MaxParallelPolish    int
	Cancel               *CancelToken
	RunID                uuid.UUID
}

// Option mutates an Options under construction. See the With* functions.
type Option func(*Options)

// WithNDivInitial overrides the starting per-axis division count.
func WithNDivInitial(n int) Option {
	return func(o *Options) { o.NDivInitial = n }
}

// WithNDivMax overrides the division count at which refinement gives up.
func WithNDivMax(n int) Option {
	return func(o *Options) { o.NDivMax = n }
}

// WithStabilityCount overrides how many consecutive stable iterations are
// required before refinement converges.
func WithStabilityCount(n int) Option {
	return func(o *Options) { o.StabilityCount = n }
}

// WithThresholdRatio overrides basin clustering's value-range-relative
// merge threshold.
func WithThresholdRatio(r float64) Option {
	return func(o *Options) { o.ThresholdRatio = r }
}

// WithMinDistanceTolerance overrides the L2 distance below which two
// polished minima are treated as duplicates.
func WithMinDistanceTolerance(d float64) Option {
	return func(o *Options) { o.MinDistanceTolerance = d }
}

// WithLocalMaxIters overrides the iteration budget given to each local
// solver attempt.
func WithLocalMaxIters(n int) Option {
	return func(o *Options) { o.LocalMaxIters = n }
}

// WithGradientPruning enables the gradient-hull shortlist filter ahead of
// star-minimum detection. The scan then visits only vertices of simplices
// the filter keeps, so a star-minimum whose surrounding simplices are all
// pruned (for example one on the box boundary, where the gradient does not
// vanish) is not reported.
func WithGradientPruning() Option {
	return func(o *Options) { o.UseGradientPruning = true }
}

// WithRelTolStar overrides the star-minimum candidate relative tolerance.
func WithRelTolStar(tol float64) Option {
	return func(o *Options) { o.RelTolStar = tol }
}

// WithVerbose registers a callback invoked once per refinement iteration.
// It is a plain callback rather than a logging library dependency — the
// caller's own observability concern, not shgo's (see spec.md §1).
func WithVerbose(hook func(ProgressEvent)) Option {
	return func(o *Options) { o.Verbose = hook }
}

// WithSolver overrides the primary local optimizer; the derivative-free
// fallback remains solver.NelderMead regardless.
func WithSolver(s Solver) Option {
	return func(o *Options) { o.Solver = s }
}

// WithMaxParallelPolish overrides how many basins are polished
// concurrently.
func WithMaxParallelPolish(n int) Option {
	return func(o *Options) { o.MaxParallelPolish = n }
}

// WithCancelToken registers a CancelToken Analyze polls between
// refinement iterations; absent one, no token is polled and an Analyze
// call cannot be cancelled.
func WithCancelToken(c *CancelToken) Option {
	return func(o *Options) { o.Cancel = c }
}

// WithRunID overrides the RunID correlating this call's progress events
// and Result; absent one, Analyze mints a fresh one via
// github.com/google/uuid.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) { o.RunID = id }
}

func (o Options) nDivInitial() int {
	if o.NDivInitial > 0 {
		return o.NDivInitial
	}

	return DefaultNDivInitial
}

func (o Options) nDivMax() int {
	if o.NDivMax > 0 {
		return o.NDivMax
	}

	return DefaultNDivMax
}

func (o Options) stabilityCount() int {
	if o.StabilityCount > 0 {
		return o.StabilityCount
	}

	return DefaultStabilityCount
}

func (o Options) thresholdRatio() float64 {
	if o.ThresholdRatio > 0 {
		return o.ThresholdRatio
	}

	return DefaultThresholdRatio
}

func (o Options) minDistanceTolerance() float64 {
	if o.MinDistanceTolerance > 0 {
		return o.MinDistanceTolerance
	}

	return DefaultMinDistanceTolerance
}

func (o Options) localMaxIters() int {
	if o.LocalMaxIters > 0 {
		return o.LocalMaxIters
	}

	return DefaultLocalMaxIters
}

func (o Options) relTolStar() float64 {
	if o.RelTolStar > 0 {
		return o.RelTolStar
	}

	return DefaultRelTolStar
}

func (o Options) maxParallelPolish() int {
	if o.MaxParallelPolish > 0 {
		return o.MaxParallelPolish
	}

	return runtime.GOMAXPROCS(0)
}

func (o Options) runID() uuid.UUID {
	if o.RunID != uuid.Nil {
		return o.RunID
	}

	return uuid.New()
}
