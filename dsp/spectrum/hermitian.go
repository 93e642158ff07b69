package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-sdft/dsp/sdft"
)

// ReconstructHermitian expands the retained half-spectrum of a
// restricted-trait engine into a full windowSize-bin spectrum in dst.
//
// For a real-only signal X[N-k] = conj(X[k]); for an imaginary-only
// signal X[N-k] = -conj(X[k]). The retained bins are copied to
// dst[0:len(half)] and the mirrored bins fill the upper half. For even
// window sizes the Nyquist bin dst[N/2] is not retained by the engine
// and cannot be recovered from symmetry; it is left unchanged.
//
// Fails for TraitFull, which retains the full spectrum already.
func ReconstructHermitian[C sdft.Complex](dst, half []C, windowSize int, trait sdft.Trait) error {
	if trait != sdft.TraitRealOnly && trait != sdft.TraitImagOnly {
		return fmt.Errorf("spectrum: trait %s retains the full spectrum", trait)
	}

	bins := trait.Bins(windowSize)
	if len(half) < bins {
		return fmt.Errorf("spectrum: half-spectrum too small: %d < %d", len(half), bins)
	}
	if len(dst) < windowSize {
		return fmt.Errorf("spectrum: destination too small: %d < %d", len(dst), windowSize)
	}

	copy(dst, half[:bins])

	for k := 1; k < bins; k++ {
		m := cmplx.Conj(complex128(half[k]))
		if trait == sdft.TraitImagOnly {
			m = -m
		}

		dst[windowSize-k] = C(m)
	}

	return nil
}
