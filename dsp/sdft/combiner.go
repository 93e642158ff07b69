package sdft

import "fmt"

// Combiner drives two engines over the identical sample stream with
// staggered resets so that the exposed spectrum never spans more than
// one window length of accumulated rounding error.
//
// While one engine serves as the authoritative output, the other is
// reseeded from empty by the same incremental process; authority
// alternates every window-size pushes. Because the authoritative
// engine changes over time, Spectrum and UnshiftWindow may return
// different underlying buffers between calls: re-fetch after every
// Push and never cache a returned slice across one.
//
// Construct a Combiner with [Engine.CombineWith].
type Combiner[C Complex] struct {
	first  *Engine[C]
	second *Engine[C]
	cycle  int
}

// Push validates the sample and forwards it to both inner engines,
// resetting whichever engine is due for reseeding first.
//
// A sample violating the shared trait fails with
// ErrSignalTraitViolation before any buffer is touched.
func (c *Combiner[C]) Push(sample C) error {
	if !c.first.trait.admits(complex128(sample)) {
		return fmt.Errorf("sdft: push: %w (%s)", ErrSignalTraitViolation, c.first.trait)
	}

	w := c.first.size
	switch c.cycle {
	case w:
		// The second engine just became fully populated; the first
		// starts reseeding for the next half-cycle.
		c.first.ResetToZero()
	case 2 * w:
		c.second.ResetToZero()
		c.cycle = 0
	}

	if err := c.first.Push(sample); err != nil {
		return err
	}
	if err := c.second.Push(sample); err != nil {
		return err
	}

	c.cycle++

	return nil
}

// PushBlock pushes every sample of a block in order.
//
// On a trait violation it stops at the offending sample, leaving the
// effect of all preceding samples applied, and reports its index.
func (c *Combiner[C]) PushBlock(samples []C) error {
	for i, s := range samples {
		if err := c.Push(s); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return nil
}

// Spectrum returns the authoritative engine's spectrum bins. The
// returned slice may alias a different buffer after the next Push.
func (c *Combiner[C]) Spectrum() []C {
	return c.authoritative().Spectrum()
}

// UnshiftWindow restores temporal order in the authoritative engine's
// window and returns it. The returned slice may alias a different
// buffer after the next Push.
func (c *Combiner[C]) UnshiftWindow() []C {
	return c.authoritative().UnshiftWindow()
}

// Len returns the shared window size.
func (c *Combiner[C]) Len() int {
	return c.first.size
}

// Trait returns the shared signal trait.
func (c *Combiner[C]) Trait() Trait {
	return c.first.trait
}

// authoritative picks the engine whose spectrum has accumulated error
// for at most window-size pushes since its last reset.
func (c *Combiner[C]) authoritative() *Engine[C] {
	if c.cycle <= c.first.size {
		return c.first
	}

	return c.second
}
