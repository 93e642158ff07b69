package sdft

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// SeedFromWindow recomputes the spectrum from the current window
// contents with a batch forward transform, letting an engine start
// from a pre-filled window instead of pushing samples through one by
// one. The window is unshifted into temporal order as a side effect.
//
// This is a setup-path operation: it validates the engine first and,
// unlike Push, may allocate scratch memory (for restricted traits and
// for window sizes the FFT planner rejects).
func (e *Engine[C]) SeedFromWindow() error {
	if err := e.Validate(); err != nil {
		return err
	}

	win := e.UnshiftWindow()

	dst := e.spectrum
	if len(dst) != e.size {
		dst = make([]C, e.size)
	}

	if err := forwardDFT(dst, win); err != nil {
		return err
	}

	if len(dst) != len(e.spectrum) {
		copy(e.spectrum, dst[:len(e.spectrum)])
	}

	return nil
}

// forwardDFT computes the negative-exponent DFT of src into dst using
// an algo-fft plan, falling back to the direct O(n^2) transform for
// sizes the planner does not support. Both slices must have equal
// length.
func forwardDFT[C Complex](dst, src []C) error {
	plan, err := newPlan[C](len(src))
	if err != nil {
		naiveDFT(dst, src)
		return nil
	}

	return plan.Forward(dst, src)
}

// newPlan builds an FFT plan for the element type C. The Complex
// constraint has exactly two members, so the type switch is total.
func newPlan[C Complex](n int) (*algofft.Plan[C], error) {
	var zero C
	if _, ok := any(zero).(complex64); ok {
		p, err := algofft.NewPlan32(n)
		if err != nil {
			return nil, err
		}

		return any(p).(*algofft.Plan[C]), nil
	}

	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}

	return any(p).(*algofft.Plan[C]), nil
}

func naiveDFT[C Complex](dst, src []C) {
	n := len(src)
	for k := range dst {
		var sum complex128

		for j, x := range src {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += complex128(x) * cmplx.Exp(complex(0, angle))
		}

		dst[k] = C(sum)
	}
}
