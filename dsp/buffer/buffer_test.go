package buffer

import (
	"testing"

	"github.com/cwbudde/algo-sdft/dsp/sdft"
)

func TestLens(t *testing.T) {
	cases := []struct {
		windowSize              int
		trait                   sdft.Trait
		window, spectrum, phase int
	}{
		{16, sdft.TraitFull, 16, 16, 16},
		{16, sdft.TraitRealOnly, 16, 8, 16},
		{15, sdft.TraitImagOnly, 15, 7, 15},
		{1, sdft.TraitFull, 1, 1, 1},
		{0, sdft.TraitFull, 0, 0, 0},
		{-2, sdft.TraitFull, 0, 0, 0},
	}

	for _, c := range cases {
		w, s, p := Lens(c.windowSize, c.trait)
		if w != c.window || s != c.spectrum || p != c.phase {
			t.Errorf("Lens(%d, %s): got (%d, %d, %d), want (%d, %d, %d)",
				c.windowSize, c.trait, w, s, p, c.window, c.spectrum, c.phase)
		}

		if total := TotalLen(c.windowSize, c.trait); total != c.window+c.spectrum+c.phase {
			t.Errorf("TotalLen(%d, %s): got %d, want %d",
				c.windowSize, c.trait, total, c.window+c.spectrum+c.phase)
		}
	}
}

func TestFromSlice_TooSmall(t *testing.T) {
	backing := make([]complex128, TotalLen(8, sdft.TraitFull)-1)

	if _, err := FromSlice(backing, 8, sdft.TraitFull); err == nil {
		t.Error("FromSlice should fail for a short backing slice")
	}
}

func TestArena_Regions(t *testing.T) {
	const n = 8

	a := New[complex128](n, sdft.TraitRealOnly)

	if len(a.Window()) != n {
		t.Errorf("window length: got %d, want %d", len(a.Window()), n)
	}

	if len(a.Spectrum()) != n/2 {
		t.Errorf("spectrum length: got %d, want %d", len(a.Spectrum()), n/2)
	}

	if len(a.PhaseOffsets()) != n {
		t.Errorf("phase length: got %d, want %d", len(a.PhaseOffsets()), n)
	}

	// Writes through one region must not leak into another.
	for i := range a.Window() {
		a.Window()[i] = 1
	}

	for _, v := range a.Spectrum() {
		if v != 0 {
			t.Fatal("window writes leaked into the spectrum region")
		}
	}

	for _, v := range a.PhaseOffsets() {
		if v != 0 {
			t.Fatal("window writes leaked into the phase region")
		}
	}
}

func TestArena_RegionCapacityClipped(t *testing.T) {
	a := New[complex128](4, sdft.TraitFull)

	// Full-capacity slicing past a region must be impossible.
	if cap(a.Window()) != len(a.Window()) {
		t.Errorf("window capacity: got %d, want %d", cap(a.Window()), len(a.Window()))
	}

	if cap(a.Spectrum()) != len(a.Spectrum()) {
		t.Errorf("spectrum capacity: got %d, want %d", cap(a.Spectrum()), len(a.Spectrum()))
	}
}

func TestArena_Engine(t *testing.T) {
	const n = 8

	eng, err := New[complex128](n, sdft.TraitFull).Engine()
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}

	for i := range 2 * n {
		if err := eng.Push(complex(float64(i), 0)); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}

	win := eng.UnshiftWindow()
	for i, v := range win {
		want := complex(float64(n+i), 0)
		if v != want {
			t.Errorf("window[%d]: got %v, want %v", i, v, want)
		}
	}
}

func TestFromSlice_DirtyBacking(t *testing.T) {
	const n = 4

	backing := make([]complex128, TotalLen(n, sdft.TraitRealOnly))
	for i := range backing {
		backing[i] = complex(float64(i), 1) // violates real-only
	}

	a, err := FromSlice(backing, n, sdft.TraitRealOnly)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if _, err := a.Engine(); err == nil {
		t.Error("Engine should fail while the window violates the trait")
	}

	a.Zero()

	if _, err := a.Engine(); err != nil {
		t.Errorf("Engine after Zero: %v", err)
	}
}
