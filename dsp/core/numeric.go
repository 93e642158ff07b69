package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NearlyEqualComplex reports whether a and b differ by at most eps in
// magnitude.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	d := a - b
	re := real(d)
	im := imag(d)

	return math.Sqrt(re*re+im*im) <= eps
}
