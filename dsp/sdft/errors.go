package sdft

import "errors"

var (
	// ErrWindowTooShort reports a window size below 1.
	ErrWindowTooShort = errors.New("window size must be >= 1")

	// ErrSignalTraitViolation reports a sample that contradicts the
	// declared signal trait, for example a sample with a nonzero
	// imaginary part pushed into a real-only engine.
	ErrSignalTraitViolation = errors.New("sample violates declared signal trait")

	// ErrNotCombinable reports two engines whose window sizes or signal
	// traits differ, or an attempt to combine an already combined
	// instance.
	ErrNotCombinable = errors.New("engines are not combinable")
)
