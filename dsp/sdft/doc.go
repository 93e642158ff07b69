// Package sdft implements a sliding discrete Fourier transform over a
// fixed-length window of a streaming complex signal.
//
// Instead of recomputing an N-point DFT for every incoming sample, the
// engine folds each sample into the existing spectrum with one complex
// add and one complex multiply per bin, an O(N) update instead of the
// O(N^2) batch transform. Signals known to be purely real or purely
// imaginary halve the update cost again because only the independent
// half of the Hermitian-symmetric spectrum needs to be tracked.
//
// All buffers are caller-owned; no operation allocates. Two engines of
// matching configuration can be combined so that the exposed spectrum
// never accumulates rounding error for more than one full window of
// pushes, which keeps long-running streams numerically fresh.
package sdft
