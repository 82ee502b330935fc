package grid

// Box is an immutable N-dimensional axis-aligned domain, lb[i] < ub[i] for
// every axis. It never mutates after construction; NewBox copies its inputs.
type Box struct {
	LB []float64 // lower bounds, one per axis
	UB []float64 // upper bounds, one per axis
}

// NewBox validates and copies lb/ub into a Box.
// Complexity: O(N).
func NewBox(lb, ub []float64) (Box, error) {
	if len(lb) == 0 || len(ub) == 0 {
		return Box{}, ErrEmptyBox
	}
	if len(lb) != len(ub) {
		return Box{}, ErrDimensionMismatch
	}
	for i := range lb {
		if !(lb[i] < ub[i]) {
			return Box{}, ErrInvalidBox
		}
	}
	// Defensive copy: Box must be immutable for the lifetime of an analysis.
	lbCopy := make([]float64, len(lb))
	ubCopy := make([]float64, len(ub))
	copy(lbCopy, lb)
	copy(ubCopy, ub)

	return Box{LB: lbCopy, UB: ubCopy}, nil
}

// Dim returns the number of axes N.
func (b Box) Dim() int {
	return len(b.LB)
}

// Clamp projects x into the box in place component-wise, onto the nearest
// bound on every axis where x lies outside it.
func (b Box) Clamp(x []float64) {
	for i := range x {
		if x[i] < b.LB[i] {
			x[i] = b.LB[i]
		} else if x[i] > b.UB[i] {
			x[i] = b.UB[i]
		}
	}
}
