package spectrum

import (
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sdft/dsp/sdft"
	"github.com/cwbudde/algo-sdft/internal/testutil"
)

func pushAll(t *testing.T, windowSize int, trait sdft.Trait, sig []complex128) *sdft.Engine[complex128] {
	t.Helper()

	var e sdft.Engine[complex128]

	err := e.Init(
		make([]complex128, windowSize),
		make([]complex128, trait.Bins(windowSize)),
		make([]complex128, windowSize),
		windowSize,
		trait,
	)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := e.PushBlock(sig); err != nil {
		t.Fatalf("PushBlock: %v", err)
	}

	return &e
}

func TestReconstructHermitian_RealOnly(t *testing.T) {
	const n = 16

	sig := testutil.DeterministicRealNoise(1, 1, n)

	half := pushAll(t, n, sdft.TraitRealOnly, sig)
	full := pushAll(t, n, sdft.TraitFull, sig)

	got := make([]complex128, n)
	if err := ReconstructHermitian(got, half.Spectrum(), n, sdft.TraitRealOnly); err != nil {
		t.Fatalf("ReconstructHermitian: %v", err)
	}

	want := full.Spectrum()
	for k, w := range want {
		if k == n/2 {
			continue // Nyquist bin is not retained under restricted traits
		}

		if diff := cmplx.Abs(got[k] - w); diff > 1e-9 {
			t.Errorf("bin %d: got %v, want %v (diff %v)", k, got[k], w, diff)
		}
	}
}

func TestReconstructHermitian_ImagOnly(t *testing.T) {
	const n = 16

	sig := testutil.RotateImag(testutil.DeterministicRealNoise(2, 1, n))

	half := pushAll(t, n, sdft.TraitImagOnly, sig)
	full := pushAll(t, n, sdft.TraitFull, sig)

	got := make([]complex128, n)
	if err := ReconstructHermitian(got, half.Spectrum(), n, sdft.TraitImagOnly); err != nil {
		t.Fatalf("ReconstructHermitian: %v", err)
	}

	want := full.Spectrum()
	for k, w := range want {
		if k == n/2 {
			continue
		}

		if diff := cmplx.Abs(got[k] - w); diff > 1e-9 {
			t.Errorf("bin %d: got %v, want %v (diff %v)", k, got[k], w, diff)
		}
	}
}

func TestReconstructHermitian_Errors(t *testing.T) {
	if err := ReconstructHermitian(make([]complex128, 8), make([]complex128, 4), 8, sdft.TraitFull); err == nil {
		t.Error("full trait should be rejected")
	}

	if err := ReconstructHermitian(make([]complex128, 8), make([]complex128, 3), 8, sdft.TraitRealOnly); err == nil {
		t.Error("short half-spectrum should be rejected")
	}

	if err := ReconstructHermitian(make([]complex128, 7), make([]complex128, 4), 8, sdft.TraitRealOnly); err == nil {
		t.Error("short destination should be rejected")
	}
}

func TestReconstructHermitian_LeavesNyquistAlone(t *testing.T) {
	const n = 8

	dst := make([]complex128, n)
	dst[n/2] = 42

	half := make([]complex128, n/2)
	if err := ReconstructHermitian(dst, half, n, sdft.TraitRealOnly); err != nil {
		t.Fatalf("ReconstructHermitian: %v", err)
	}

	if dst[n/2] != 42 {
		t.Errorf("Nyquist bin overwritten: got %v, want 42", dst[n/2])
	}
}
