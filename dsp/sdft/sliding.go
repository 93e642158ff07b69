package sdft

import "fmt"

// Sliding is a tagged variant over a standalone [Engine] and a
// [Combiner], giving both the same call surface so that callers can
// treat "one instance" and "a combined pair" uniformly without
// interface dispatch.
type Sliding[C Complex] struct {
	engine   *Engine[C]
	combiner *Combiner[C]
}

// Standalone wraps a single engine.
func Standalone[C Complex](e *Engine[C]) Sliding[C] {
	return Sliding[C]{engine: e}
}

// Combined wraps a combined pair.
func Combined[C Complex](c *Combiner[C]) Sliding[C] {
	return Sliding[C]{combiner: c}
}

// Valid reports whether the variant holds an instance.
func (s Sliding[C]) Valid() bool {
	return s.engine != nil || s.combiner != nil
}

// Push folds one sample into the underlying instance.
func (s Sliding[C]) Push(sample C) error {
	if s.combiner != nil {
		return s.combiner.Push(sample)
	}

	return s.engine.Push(sample)
}

// PushBlock pushes every sample of a block in order.
func (s Sliding[C]) PushBlock(samples []C) error {
	if s.combiner != nil {
		return s.combiner.PushBlock(samples)
	}

	return s.engine.PushBlock(samples)
}

// Spectrum returns the current spectrum bins. For a combined pair the
// returned slice may alias a different buffer after the next Push.
func (s Sliding[C]) Spectrum() []C {
	if s.combiner != nil {
		return s.combiner.Spectrum()
	}

	return s.engine.Spectrum()
}

// UnshiftWindow returns the current window in temporal order. For a
// combined pair the returned slice may alias a different buffer after
// the next Push.
func (s Sliding[C]) UnshiftWindow() []C {
	if s.combiner != nil {
		return s.combiner.UnshiftWindow()
	}

	return s.engine.UnshiftWindow()
}

// Validate checks the underlying instance. A combined pair was already
// validated during combination and always passes.
func (s Sliding[C]) Validate() error {
	if s.combiner != nil {
		return nil
	}

	return s.engine.Validate()
}

// CombineWith combines two standalone instances into a combined pair.
// Combining anything involving an already combined pair fails with
// ErrNotCombinable; no second-order combination is defined.
func (s Sliding[C]) CombineWith(other Sliding[C]) (Sliding[C], error) {
	if s.combiner != nil || other.combiner != nil {
		return Sliding[C]{}, fmt.Errorf("sdft: combine: %w: already combined", ErrNotCombinable)
	}

	c, err := s.engine.CombineWith(other.engine)
	if err != nil {
		return Sliding[C]{}, err
	}

	return Combined(c), nil
}

// Len returns the window size.
func (s Sliding[C]) Len() int {
	if s.combiner != nil {
		return s.combiner.Len()
	}

	return s.engine.Len()
}

// Trait returns the declared signal trait.
func (s Sliding[C]) Trait() Trait {
	if s.combiner != nil {
		return s.combiner.Trait()
	}

	return s.engine.Trait()
}
