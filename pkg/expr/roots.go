package expr

import "math"

// maxNewtonSteps caps the refinement loop. Inputs whose iteration reaches a
// true fixed point do so long before this; the cap only matters for the
// rare 2-cycle case below.
const maxNewtonSteps = 1000

// NthRootValue computes the real non-negative nth root of value by
// fixed-point Newton iteration:
//
//	g <- ((n-1)*g + value/g^(n-1)) / n, starting from g0 = value,
//
// refining until two consecutive iterates are equal under floating
// equality. Requires degree >= 2 and value > 0.
func NthRootValue(value float64, degree int) (float64, error) {
	if degree < 2 || value <= 0 {
		return 0, &DomainError{Value: value, Degree: degree}
	}

	n := float64(degree)
	g := value
	prev := math.NaN()
	for i := 0; i < maxNewtonSteps; i++ {
		next := ((n-1)*g + value/math.Pow(g, n-1)) / n
		if next == g {
			return next, nil
		}
		// Some radicands oscillate between two adjacent floats instead of
		// settling; either cycle member is within one ulp of the root.
		if next == prev {
			return next, nil
		}
		prev, g = g, next
	}
	return g, nil
}
