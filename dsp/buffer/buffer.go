package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/core"
	"github.com/cwbudde/algo-sdft/dsp/sdft"
)

// Lens returns the element counts of the three buffers one engine
// needs for the given configuration: the window, the spectrum, and the
// phase-offset table. Counts are precision-independent; multiply by
// [sdft.Precision.ComplexBytes] for byte sizes.
func Lens(windowSize int, trait sdft.Trait) (window, spectrum, phase int) {
	if windowSize < 0 {
		windowSize = 0
	}
	return windowSize, trait.Bins(windowSize), windowSize
}

// TotalLen returns the element count of a single backing slice large
// enough for all three buffers of one engine.
func TotalLen(windowSize int, trait sdft.Trait) int {
	w, s, p := Lens(windowSize, trait)
	return w + s + p
}

// Arena carves the window, spectrum, and phase-offset buffers of one
// engine out of a single backing slice.
//
// Two engines combined into a pair must use distinct arenas (or
// otherwise non-overlapping storage).
type Arena[C sdft.Complex] struct {
	window     []C
	spectrum   []C
	phase      []C
	windowSize int
	trait      sdft.Trait
}

// New returns an arena backed by one fresh zero-filled allocation.
func New[C sdft.Complex](windowSize int, trait sdft.Trait) *Arena[C] {
	a, _ := FromSlice(make([]C, TotalLen(windowSize, trait)), windowSize, trait)
	return a
}

// FromSlice carves an arena out of caller-owned backing storage
// without copying or allocating. The backing slice must hold at least
// TotalLen elements; its window and spectrum regions are used as-is,
// so callers seeding a fresh engine should zero them first (see Zero).
func FromSlice[C sdft.Complex](backing []C, windowSize int, trait sdft.Trait) (*Arena[C], error) {
	need := TotalLen(windowSize, trait)
	if len(backing) < need {
		return nil, fmt.Errorf("buffer: backing slice too small: %d < %d", len(backing), need)
	}

	w, s, _ := Lens(windowSize, trait)

	return &Arena[C]{
		window:     backing[:w:w],
		spectrum:   backing[w : w+s : w+s],
		phase:      backing[w+s : need : need],
		windowSize: windowSize,
		trait:      trait,
	}, nil
}

// Window returns the window region.
func (a *Arena[C]) Window() []C { return a.window }

// Spectrum returns the spectrum region.
func (a *Arena[C]) Spectrum() []C { return a.spectrum }

// PhaseOffsets returns the phase-offset region.
func (a *Arena[C]) PhaseOffsets() []C { return a.phase }

// Zero clears the window and spectrum regions so the arena describes
// an empty, mutually consistent engine state. The phase-offset region
// is left alone; engine construction overwrites it anyway.
func (a *Arena[C]) Zero() {
	core.Zero(a.window)
	core.Zero(a.spectrum)
}

// Engine constructs and validates an engine over the arena's buffers.
func (a *Arena[C]) Engine() (*sdft.Engine[C], error) {
	var e sdft.Engine[C]
	if err := e.Init(a.window, a.spectrum, a.phase, a.windowSize, a.trait); err != nil {
		return nil, err
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return &e, nil
}
