package solver

// BFGS is a box-projected quasi-Newton descent: it maintains a dense
// approximate inverse Hessian, takes the Newton-like direction -H*grad,
// and accepts the first Armijo-sufficient-decrease step found by
// backtracking, clamping every trial point into [lb, ub] before it is
// evaluated so the search never leaves the domain. It is the default
// Options.Solver (see shgo.WithSolver).
//
// BFGS satisfies the polisher's Solver contract structurally; it never
// imports shgo.
type BFGS struct {
	// GradTol stops the search once ||grad||_2 <= GradTol. Zero selects
	// DefaultGradTol.
	GradTol float64
	// Armijo is the sufficient-decrease constant c1 in f(x+a*d) <= f(x) +
	// c1*a*grad.d. Zero selects DefaultArmijo.
	Armijo float64
	// Shrink is the backtracking factor applied to the step length after a
	// rejected trial. Zero selects DefaultShrink.
	Shrink float64
	// StepTol aborts the line search once the step length falls below it
	// without finding an acceptable point. Zero selects DefaultStepTol.
	StepTol float64
	// MaxLineSearch bounds backtracking iterations per outer step. Zero
	// selects DefaultMaxLineSearch.
	MaxLineSearch int
}

// Defaults for BFGS's zero-value tunables.
const (
	DefaultGradTol       = 1e-8
	DefaultArmijo        = 1e-4
	DefaultShrink        = 0.5
	DefaultStepTol       = 1e-14
	DefaultMaxLineSearch = 50
)

// NewBFGS returns a BFGS configured with the package defaults.
func NewBFGS() *BFGS {
	return &BFGS{}
}

func (s *BFGS) gradTol() float64 {
	if s.GradTol > 0 {
		return s.GradTol
	}

	return DefaultGradTol
}

func (s *BFGS) armijo() float64 {
	if s.Armijo > 0 {
		return s.Armijo
	}

	return DefaultArmijo
}

func (s *BFGS) shrink() float64 {
	if s.Shrink > 0 && s.Shrink < 1 {
		return s.Shrink
	}

	return DefaultShrink
}

func (s *BFGS) stepTol() float64 {
	if s.StepTol > 0 {
		return s.StepTol
	}

	return DefaultStepTol
}

func (s *BFGS) maxLineSearch() int {
	if s.MaxLineSearch > 0 {
		return s.MaxLineSearch
	}

	return DefaultMaxLineSearch
}

// Solve runs box-projected BFGS from x0 for at most maxIters outer
// iterations. It reports ErrDimensionMismatch / ErrInvalidBounds on
// malformed input, ErrNonFiniteStart if the objective or gradient is
// non-finite at x0, and ErrNoProgress if the very first line search fails
// to find any improving point. A line search failure after at least one
// successful step is not an error: Solve returns the best point found so
// far, matching the "never fatal, fall back" propagation policy the
// polisher relies on.
func (s *BFGS) Solve(obj Objective, x0, lb, ub []float64, maxIters int) (Result, error) {
	if err := validateStart(x0, lb, ub); err != nil {
		return Result{}, err
	}
	n := len(x0)
	x := cloneVec(x0)
	clampInto(x, lb, ub)
	fx := obj.F(x)
	g := obj.Grad(x)
	if !isFinite(fx) || !vecFinite(g) {
		return Result{}, ErrNonFiniteStart
	}

	h := identity(n)
	gradTol := s.gradTol()

	for iter := 0; iter < maxIters; iter++ {
		if norm2(g) <= gradTol {
			return Result{Minimizer: x, Value: fx, Iters: iter}, nil
		}

		d := matVecNeg(h, g)
		xNew, fNew, gNew, ok := s.lineSearch(obj, x, fx, g, d, lb, ub)
		if !ok {
			if iter == 0 {
				return Result{}, ErrNoProgress
			}

			return Result{Minimizer: x, Value: fx, Iters: iter}, nil
		}

		sVec := sub(xNew, x)
		yVec := sub(gNew, g)
		sy := dot(sVec, yVec)
		if sy > 1e-12*(1+norm2(sVec)*norm2(yVec)) {
			bfgsUpdate(h, sVec, yVec, sy)
		}
		x, fx, g = xNew, fNew, gNew
	}

	return Result{Minimizer: x, Value: fx, Iters: maxIters}, nil
}

// lineSearch performs Armijo backtracking along direction d, clamping every
// trial point into the box. If d is not a descent direction (can happen
// after a stale Hessian approximation near the boundary), it falls back to
// steepest descent for this step only.
func (s *BFGS) lineSearch(obj Objective, x []float64, fx float64, g, d, lb, ub []float64) (xNew []float64, fNew float64, gNew []float64, ok bool) {
	gd := dot(g, d)
	if gd >= 0 {
		d = negate(g)
		gd = dot(g, d)
	}

	alpha := 1.0
	c1 := s.armijo()
	for i := 0; i < s.maxLineSearch(); i++ {
		trial := axpy(alpha, d, x)
		clampInto(trial, lb, ub)
		fTrial := obj.F(trial)
		if isFinite(fTrial) && fTrial <= fx+c1*alpha*gd {
			gTrial := obj.Grad(trial)
			if vecFinite(gTrial) {
				return trial, fTrial, gTrial, true
			}
		}
		alpha *= s.shrink()
		if alpha < s.stepTol() {
			break
		}
	}

	return nil, 0, nil, false
}

func identity(n int) [][]float64 {
	h := make([][]float64, n)
	for i := range h {
		h[i] = make([]float64, n)
		h[i][i] = 1.0
	}

	return h
}

func matVecNeg(h [][]float64, v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		row := h[i]
		for j := 0; j < n; j++ {
			sum += row[j] * v[j]
		}
		out[i] = -sum
	}

	return out
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// bfgsUpdate applies the standard explicit inverse-Hessian BFGS update
// (Nocedal & Wright, eq. 6.17) in place:
//
//	H+ = H - (s*(Hy)^T + Hy*s^T)/sy + (1 + y.Hy/sy) * (s*s^T)/sy
func bfgsUpdate(h [][]float64, s, y []float64, sy float64) {
	n := len(s)
	hy := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		row := h[i]
		for j := 0; j < n; j++ {
			sum += row[j] * y[j]
		}
		hy[i] = sum
	}
	yHy := dot(y, hy)
	rho := 1.0 / sy
	coeff := rho * (1 + rho*yHy)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i][j] += -rho*(s[i]*hy[j]+hy[i]*s[j]) + coeff*s[i]*s[j]
		}
	}
}
