package solver

import (
	"math"
	"sort"
)

// NelderMead is a derivative-free simplex search: the polisher's fallback
// when BFGS fails to converge or the objective's gradient is unreliable
// near a boundary. It never calls Objective.Grad.
//
// Every generated vertex is clamped into [lb, ub] before evaluation, so the
// simplex never leaves the domain even as it reflects/expands/contracts.
type NelderMead struct {
	// Alpha, Gamma, Rho, Sigma are the reflection, expansion, contraction,
	// and shrink coefficients. Zero values select the classical defaults.
	Alpha, Gamma, Rho, Sigma float64
	// InitialStep sizes the starting simplex as a fraction of each axis's
	// box range. Zero selects DefaultInitialStep.
	InitialStep float64
	// FTol stops the search once the spread between the best and worst
	// simplex values falls below it. Zero selects DefaultFTol.
	FTol float64
}

// Defaults for NelderMead's zero-value tunables.
const (
	DefaultAlpha          = 1.0
	DefaultGamma          = 2.0
	DefaultRho            = 0.5
	DefaultSigma          = 0.5
	DefaultInitialStep    = 0.05
	DefaultFTol           = 1e-10
)

// NewNelderMead returns a NelderMead configured with the classical
// coefficients.
func NewNelderMead() *NelderMead {
	return &NelderMead{}
}

func (s *NelderMead) alpha() float64 {
	if s.Alpha > 0 {
		return s.Alpha
	}

	return DefaultAlpha
}

func (s *NelderMead) gamma() float64 {
	if s.Gamma > 1 {
		return s.Gamma
	}

	return DefaultGamma
}

func (s *NelderMead) rho() float64 {
	if s.Rho > 0 && s.Rho < 1 {
		return s.Rho
	}

	return DefaultRho
}

func (s *NelderMead) sigma() float64 {
	if s.Sigma > 0 && s.Sigma < 1 {
		return s.Sigma
	}

	return DefaultSigma
}

func (s *NelderMead) initialStep() float64 {
	if s.InitialStep > 0 {
		return s.InitialStep
	}

	return DefaultInitialStep
}

func (s *NelderMead) fTol() float64 {
	if s.FTol > 0 {
		return s.FTol
	}

	return DefaultFTol
}

type vertex struct {
	x []float64
	f float64
}

func evalVertex(obj Objective, x []float64) vertex {
	f := obj.F(x)
	if !isFinite(f) {
		f = math.Inf(1)
	}

	return vertex{x: x, f: f}
}

// Solve runs the Nelder-Mead simplex search from x0 for at most maxIters
// iterations, returning the best vertex found. Errors mirror BFGS.Solve's
// contract: ErrDimensionMismatch / ErrInvalidBounds on malformed input,
// ErrNonFiniteStart if the objective is non-finite at x0.
func (s *NelderMead) Solve(obj Objective, x0, lb, ub []float64, maxIters int) (Result, error) {
	if err := validateStart(x0, lb, ub); err != nil {
		return Result{}, err
	}
	n := len(x0)
	start := cloneVec(x0)
	clampInto(start, lb, ub)
	f0 := obj.F(start)
	if !isFinite(f0) {
		return Result{}, ErrNonFiniteStart
	}

	verts := make([]vertex, n+1)
	verts[0] = vertex{x: start, f: f0}
	step := s.initialStep()
	for i := 0; i < n; i++ {
		x := cloneVec(start)
		span := ub[i] - lb[i]
		x[i] += step * span
		clampInto(x, lb, ub)
		verts[i+1] = evalVertex(obj, x)
	}

	al, ga, rh, si := s.alpha(), s.gamma(), s.rho(), s.sigma()
	ftol := s.fTol()

	iter := 0
	for ; iter < maxIters; iter++ {
		sort.Slice(verts, func(i, j int) bool { return verts[i].f < verts[j].f })

		if verts[n].f-verts[0].f <= ftol {
			break
		}

		centroid := make([]float64, n)
		for i := 0; i < n; i++ {
			for d := 0; d < n; d++ {
				centroid[d] += verts[i].x[d]
			}
		}
		for d := 0; d < n; d++ {
			centroid[d] /= float64(n)
		}

		worst := verts[n]

		reflected := axpy(al, sub(centroid, worst.x), centroid)
		clampInto(reflected, lb, ub)
		vr := evalVertex(obj, reflected)

		switch {
		case vr.f < verts[0].f:
			expanded := axpy(ga, sub(centroid, worst.x), centroid)
			clampInto(expanded, lb, ub)
			ve := evalVertex(obj, expanded)
			if ve.f < vr.f {
				verts[n] = ve
			} else {
				verts[n] = vr
			}
		case vr.f < verts[n-1].f:
			verts[n] = vr
		default:
			contracted := axpy(rh, sub(worst.x, centroid), centroid)
			clampInto(contracted, lb, ub)
			vc := evalVertex(obj, contracted)
			if vc.f < worst.f {
				verts[n] = vc
			} else {
				for i := 1; i <= n; i++ {
					shrunk := axpy(si, sub(verts[i].x, verts[0].x), verts[0].x)
					clampInto(shrunk, lb, ub)
					verts[i] = evalVertex(obj, shrunk)
				}
			}
		}
	}

	sort.Slice(verts, func(i, j int) bool { return verts[i].f < verts[j].f })
	if math.IsInf(verts[0].f, 1) {
		return Result{}, ErrNoProgress
	}

	return Result{Minimizer: verts[0].x, Value: verts[0].f, Iters: iter}, nil
}
