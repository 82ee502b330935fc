package solver_test

import "math"

// sphere is f(x) = sum (x_i - center_i)^2, minimized at center.
type sphere struct {
	center []float64
}

func (s sphere) F(x []float64) float64 {
	sum := 0.0
	for i, xi := range x {
		d := xi - s.center[i]
		sum += d * d
	}

	return sum
}

func (s sphere) Grad(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2 * (xi - s.center[i])
	}

	return g
}

// rosenbrock2D is the classic banana function, minimized at (1,1).
type rosenbrock2D struct{}

func (rosenbrock2D) F(x []float64) float64 {
	a, b := 1.0, 100.0
	t1 := a - x[0]
	t2 := x[1] - x[0]*x[0]

	return t1*t1 + b*t2*t2
}

func (rosenbrock2D) Grad(x []float64) []float64 {
	a, b := 1.0, 100.0
	dx0 := -2*(a-x[0]) - 4*b*x[0]*(x[1]-x[0]*x[0])
	dx1 := 2 * b * (x[1] - x[0]*x[0])

	return []float64{dx0, dx1}
}

func boundsN(n int, lo, hi float64) (lb, ub []float64) {
	lb = make([]float64, n)
	ub = make([]float64, n)
	for i := 0; i < n; i++ {
		lb[i] = lo
		ub[i] = hi
	}

	return lb, ub
}

func l2Dist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
