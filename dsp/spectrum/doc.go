// Package spectrum provides helpers over complex spectrum bins: SIMD
// magnitude/power/phase extraction and reconstruction of the mirrored
// half of a Hermitian-symmetric spectrum.
//
// The package does not compute spectra itself; it operates on bins
// produced by a sliding DFT engine or any other transform backend.
package spectrum
