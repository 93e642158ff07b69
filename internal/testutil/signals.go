package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// DeterministicTone generates a complex exponential completing the
// given number of cycles over length samples.
func DeterministicTone(cycles, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, step*float64(i)))
	}
	return out
}

// DeterministicRealSine generates a real-valued sine wave as complex
// samples with zero imaginary parts.
func DeterministicRealSine(cycles, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = complex(amplitude*math.Sin(step*float64(i)), 0)
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed
// for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(
			(rng.Float64()*2-1)*amplitude,
			(rng.Float64()*2-1)*amplitude,
		)
	}
	return out
}

// DeterministicRealNoise generates real-valued white noise as complex
// samples with zero imaginary parts.
func DeterministicRealNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex((rng.Float64()*2-1)*amplitude, 0)
	}
	return out
}

// RotateImag multiplies every sample by i, turning a real-only signal
// into an imaginary-only one.
func RotateImag(in []complex128) []complex128 {
	out := make([]complex128, len(in))
	for i, v := range in {
		out[i] = v * 1i
	}
	return out
}

// ToComplex64 narrows a complex128 slice to complex64.
func ToComplex64(in []complex128) []complex64 {
	out := make([]complex64, len(in))
	for i, v := range in {
		out[i] = complex64(v)
	}
	return out
}

// NaiveDFT computes the direct O(n^2) negative-exponent DFT, the
// reference every incremental spectrum is compared against.
func NaiveDFT(signal []complex128) []complex128 {
	n := len(signal)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, x := range signal {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += x * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}
