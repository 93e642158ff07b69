package sdft_test

import (
	"fmt"

	"github.com/cwbudde/algo-sdft/dsp/buffer"
	"github.com/cwbudde/algo-sdft/dsp/sdft"
)

func ExampleEngine_Push() {
	arena := buffer.New[complex128](4, sdft.TraitRealOnly)
	eng, _ := arena.Engine()

	for _, s := range []complex128{1, 2, 3, 4} {
		_ = eng.Push(s)
	}

	spec := eng.Spectrum()
	fmt.Printf("bins=%d dc=%.0f\n", len(spec), real(spec[0]))
	// Output:
	// bins=2 dc=10
}

func ExampleEngine_UnshiftWindow() {
	arena := buffer.New[complex128](3, sdft.TraitRealOnly)
	eng, _ := arena.Engine()

	for _, s := range []complex128{1, 2, 3, 4, 5} {
		_ = eng.Push(s)
	}

	win := eng.UnshiftWindow()
	fmt.Printf("%.0f %.0f %.0f\n", real(win[0]), real(win[1]), real(win[2]))
	// Output:
	// 3 4 5
}

func ExampleEngine_CombineWith() {
	first, _ := buffer.New[complex128](4, sdft.TraitFull).Engine()
	second, _ := buffer.New[complex128](4, sdft.TraitFull).Engine()

	combined, err := first.CombineWith(second)
	if err != nil {
		fmt.Println(err)
		return
	}

	for s := 1; s <= 10; s++ {
		_ = combined.Push(complex(float64(s), 0))
	}

	win := combined.UnshiftWindow()
	fmt.Printf("%.0f %.0f %.0f %.0f\n", real(win[0]), real(win[1]), real(win[2]), real(win[3]))
	// Output:
	// 7 8 9 10
}
