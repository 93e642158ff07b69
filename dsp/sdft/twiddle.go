package sdft

import (
	"math"
	"math/cmplx"
)

// twiddleTable fills dst with the phase offsets of an n-point window,
// dst[i] = exp(+2i*pi*i/n).
//
// The positive argument is what the push recurrence needs: multiplying
// a bin by its offset advances the implicit time origin by one sample,
// and after n pushes from an empty window the spectrum equals the
// standard negative-exponent DFT of the window. Flipping the sign here
// would reverse the spectrum's time axis.
func twiddleTable[C Complex](dst []C, n int) {
	if n < 1 {
		return
	}

	step := 2 * math.Pi / float64(n)
	for i := range dst {
		dst[i] = C(cmplx.Exp(complex(0, step*float64(i))))
	}
}
