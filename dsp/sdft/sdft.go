package sdft

import (
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/core"
)

// Engine maintains the DFT of a fixed-length sliding window over a
// streaming signal.
//
// Behavior and Semantics:
//
// The engine is stateful. Each Push folds one new sample into the
// spectrum and evicts the oldest sample from the window, so after any
// number of pushes Spectrum() holds the DFT of the last window-size
// samples (zero-filled before the first window-size pushes). The
// window buffer is written circularly; UnshiftWindow restores temporal
// order on demand.
//
// All three buffers are supplied and owned by the caller. The engine
// itself is a plain value that performs no allocation in any operation,
// so it can live in caller-managed storage for embedded or real-time
// use. The zero Engine is not usable; call Init first.
//
// Each push multiplies every retained bin by a unit-magnitude phase
// factor, so rounding error grows with stream length. For unbounded
// streams pair two engines with [Engine.CombineWith], which bounds the
// error window to one window length.
type Engine[C Complex] struct {
	window   []C
	spectrum []C
	phase    []C
	writeIdx int
	trait    Trait
	size     int
}

// Init constructs the engine in place from caller-owned buffers.
//
// window must hold at least windowSize elements, phaseOffsets at least
// windowSize, and spectrum at least Trait.Bins(windowSize). The
// contents of window and spectrum are left untouched and must be
// mutually consistent (commonly both zero-filled); phaseOffsets is
// overwritten with the twiddle table. A windowSize below 1 is not
// rejected here but by Validate, which must be called (directly or via
// CombineWith) before first use.
//
// Runtime: O(windowSize).
func (e *Engine[C]) Init(window, spectrum, phaseOffsets []C, windowSize int, trait Trait) error {
	if windowSize > 0 {
		if len(window) < windowSize {
			return fmt.Errorf("sdft: window buffer too small: %d < %d", len(window), windowSize)
		}
		if len(phaseOffsets) < windowSize {
			return fmt.Errorf("sdft: phase-offset buffer too small: %d < %d", len(phaseOffsets), windowSize)
		}
		if bins := trait.Bins(windowSize); len(spectrum) < bins {
			return fmt.Errorf("sdft: spectrum buffer too small: %d < %d", len(spectrum), bins)
		}
		window = window[:windowSize]
		spectrum = spectrum[:trait.Bins(windowSize)]
		phaseOffsets = phaseOffsets[:windowSize]
	}

	e.window = window
	e.spectrum = spectrum
	e.phase = phaseOffsets
	e.writeIdx = 0
	e.trait = trait
	e.size = windowSize

	twiddleTable(phaseOffsets, windowSize)

	return nil
}

// Validate checks that the engine configuration and the current window
// contents are usable: the window size must be at least 1
// (ErrWindowTooShort) and every sample currently in the window must
// satisfy the declared trait (ErrSignalTraitViolation).
func (e *Engine[C]) Validate() error {
	if e.size < 1 {
		return fmt.Errorf("sdft: %w: %d", ErrWindowTooShort, e.size)
	}

	for i, v := range e.window {
		if !e.trait.admits(complex128(v)) {
			return fmt.Errorf("sdft: window[%d]: %w (%s)", i, ErrSignalTraitViolation, e.trait)
		}
	}

	return nil
}

// Push folds one sample into the spectrum and stores it in the window,
// evicting the oldest sample.
//
// The incoming sample must satisfy the declared trait; otherwise Push
// fails with ErrSignalTraitViolation before touching any buffer. The
// update adds the difference between the new and the evicted sample to
// every retained bin and rotates each bin by its phase offset, which
// advances the implicit time origin by one step.
//
// Runtime: O(windowSize), halved under a restricted trait.
func (e *Engine[C]) Push(sample C) error {
	if !e.trait.admits(complex128(sample)) {
		return fmt.Errorf("sdft: push: %w (%s)", ErrSignalTraitViolation, e.trait)
	}

	delta := sample - e.window[e.writeIdx]

	spec := e.spectrum
	for k, p := range e.phase[:len(spec)] {
		spec[k] = (spec[k] + delta) * p
	}

	e.window[e.writeIdx] = sample
	e.writeIdx++

	if e.writeIdx == e.size {
		e.writeIdx = 0
	}

	return nil
}

// PushBlock pushes every sample of a block in order.
//
// On a trait violation it stops at the offending sample, leaving the
// effect of all preceding samples applied, and reports its index.
func (e *Engine[C]) PushBlock(samples []C) error {
	for i, s := range samples {
		if err := e.Push(s); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return nil
}

// ResetToZero zeroes the window and spectrum and rewinds the write
// cursor, discarding all history. Combined operation uses this to
// reseed one engine while the other stays authoritative; it is rarely
// useful on a standalone engine.
func (e *Engine[C]) ResetToZero() {
	core.Zero(e.window)
	core.Zero(e.spectrum)
	e.writeIdx = 0
}

// Spectrum returns the retained spectrum bins, aliasing the
// caller-supplied buffer. Length is window-size bins for TraitFull and
// half that under a restricted trait.
func (e *Engine[C]) Spectrum() []C {
	return e.spectrum
}

// UnshiftWindow rotates the window buffer in place into temporal order
// (oldest sample first, newest last) and returns it.
//
// The rotation moves every element once and uses no scratch buffer.
// Afterwards the write cursor is zero, so physical and temporal order
// coincide until the next Push. Calling it again without an
// intervening Push is a no-op.
//
// Runtime: O(windowSize).
func (e *Engine[C]) UnshiftWindow() []C {
	ofs := e.writeIdx
	if ofs == 0 {
		return e.window
	}

	// Rotate left by ofs following the permutation cycles; each cycle
	// needs one saved element. gcd(n, ofs) is the cycle count.
	n := e.size
	cycles := gcd(n, ofs)

	for start := 0; start < cycles; start++ {
		saved := e.window[start]
		cur := start

		for {
			next := cur + ofs
			if next >= n {
				next -= n
			}

			if next == start {
				break
			}

			e.window[cur] = e.window[next]
			cur = next
		}

		e.window[cur] = saved
	}

	e.writeIdx = 0

	return e.window
}

// CombineWith pairs the engine with a second one for bounded error
// growth on unbounded streams.
//
// Both engines must share window size and trait (precision is fixed by
// the type parameter); otherwise CombineWith fails with
// ErrNotCombinable and mutates neither engine. On success the
// receiver's current content becomes the combined instance's initial
// authoritative state, the receiver is validated, and other is reset to
// zero. The two engines' buffers must not overlap.
func (e *Engine[C]) CombineWith(other *Engine[C]) (*Combiner[C], error) {
	if other == nil {
		return nil, fmt.Errorf("sdft: combine: %w: missing second engine", ErrNotCombinable)
	}
	if e.size != other.size {
		return nil, fmt.Errorf("sdft: combine: %w: window sizes %d and %d", ErrNotCombinable, e.size, other.size)
	}
	if e.trait != other.trait {
		return nil, fmt.Errorf("sdft: combine: %w: traits %s and %s", ErrNotCombinable, e.trait, other.trait)
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	other.ResetToZero()

	return &Combiner[C]{first: e, second: other}, nil
}

// Len returns the window size.
func (e *Engine[C]) Len() int {
	return e.size
}

// Trait returns the declared signal trait.
func (e *Engine[C]) Trait() Trait {
	return e.trait
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
