package polish

import (
	"math"
	"sort"
)

// Dedup sorts points by Objective ascending and greedily accepts each one
// iff it is at least distTol away (L2) from every already-accepted point.
// When secondaryValueCheck is set, a candidate within distTol of an
// accepted point is still accepted (kept distinct) unless it is ALSO
// within the value-closeness tolerance — the conjunctive test the spec
// describes to avoid merging two minima that happen to sit close together
// geometrically but carry different objective values.
//
// Dedup is idempotent: Dedup(Dedup(xs)) == Dedup(xs), since the second
// pass sees points already pairwise separated by at least distTol (or
// value-distinct under the secondary test) and accepts all of them.
func Dedup(points []MinimumPoint, distTol float64, secondaryValueCheck bool) []MinimumPoint {
	sorted := make([]MinimumPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Objective < sorted[j].Objective })

	accepted := make([]MinimumPoint, 0, len(sorted))
	for _, p := range sorted {
		merged := false
		for _, u := range accepted {
			if l2Dist(p.Minimizer, u.Minimizer) >= distTol {
				continue
			}
			if !secondaryValueCheck {
				merged = true

				break
			}
			tol := math.Max(DefaultValueCloseAbsTol, math.Abs(u.Objective)*DefaultValueCloseRelTol)
			if math.Abs(p.Objective-u.Objective) < tol {
				merged = true

				break
			}
		}
		if !merged {
			accepted = append(accepted, p)
		}
	}

	return accepted
}

func l2Dist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}
