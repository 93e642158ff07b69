package sdft

// Trait declares a guarantee about every sample ever fed to an engine.
//
// The guarantee is a precondition supplied by the caller, never inferred
// from the data: pushing a sample that contradicts it fails with
// [ErrSignalTraitViolation]. Declaring [TraitRealOnly] or
// [TraitImagOnly] halves the per-push work because only the first half
// of the Hermitian-symmetric spectrum is updated; the caller
// reconstructs the mirrored half via conjugate symmetry when needed.
type Trait int

const (
	// TraitFull makes no guarantee; all window-size bins are tracked.
	TraitFull Trait = iota

	// TraitRealOnly guarantees the imaginary part of every sample is
	// exactly zero.
	TraitRealOnly

	// TraitImagOnly guarantees the real part of every sample is
	// exactly zero.
	TraitImagOnly
)

// String returns a short human-readable trait name.
func (t Trait) String() string {
	switch t {
	case TraitFull:
		return "full"
	case TraitRealOnly:
		return "real-only"
	case TraitImagOnly:
		return "imag-only"
	default:
		return "unknown"
	}
}

// Bins returns the number of independent spectrum bins retained for a
// window of the given size under this trait.
func (t Trait) Bins(windowSize int) int {
	if windowSize < 0 {
		return 0
	}
	if t == TraitFull {
		return windowSize
	}
	return windowSize / 2
}

// admits reports whether a sample satisfies the trait. Comparison is
// against exact zero; negative zero qualifies, denormals do not.
func (t Trait) admits(c complex128) bool {
	switch t {
	case TraitRealOnly:
		return imag(c) == 0
	case TraitImagOnly:
		return real(c) == 0
	default:
		return true
	}
}
