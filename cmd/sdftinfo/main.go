// Command sdftinfo streams a synthetic test signal through a sliding
// DFT and prints the resulting spectrum.
//
// Usage:
//
//	sdftinfo [flags]
//
// Examples:
//
//	sdftinfo -size 16 -cycles 3
//	sdftinfo -size 32 -trait real -samples 1000
//	sdftinfo -size 8 -noise -standalone
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-sdft/dsp/buffer"
	"github.com/cwbudde/algo-sdft/dsp/sdft"
	"github.com/cwbudde/algo-sdft/dsp/spectrum"
)

func main() {
	size := flag.Int("size", 16, "window size in samples")
	traitName := flag.String("trait", "full", "signal trait: full, real, imag")
	cycles := flag.Float64("cycles", 2, "tone cycles per window")
	amplitude := flag.Float64("amplitude", 1, "tone or noise amplitude")
	samples := flag.Int("samples", 0, "samples to stream (default 4x window size)")
	noise := flag.Bool("noise", false, "stream seeded white noise instead of a tone")
	seed := flag.Int64("seed", 1, "noise seed")
	standalone := flag.Bool("standalone", false, "use a single engine instead of a combined pair")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sdftinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams a synthetic signal through a sliding DFT and prints the spectrum.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	trait, err := parseTrait(*traitName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	count := *samples
	if count <= 0 {
		count = 4 * *size
	}

	inst, err := build(*size, trait, *standalone)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sig := generate(count, *cycles / float64(*size), *amplitude, trait, *noise, *seed)
	if err := inst.PushBlock(sig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printSpectrum(inst, *size, trait)
}

func parseTrait(name string) (sdft.Trait, error) {
	switch name {
	case "full":
		return sdft.TraitFull, nil
	case "real":
		return sdft.TraitRealOnly, nil
	case "imag":
		return sdft.TraitImagOnly, nil
	default:
		return 0, fmt.Errorf("unknown trait %q (want full, real, or imag)", name)
	}
}

func build(size int, trait sdft.Trait, standalone bool) (sdft.Sliding[complex128], error) {
	first, err := buffer.New[complex128](size, trait).Engine()
	if err != nil {
		return sdft.Sliding[complex128]{}, err
	}

	if standalone {
		return sdft.Standalone(first), nil
	}

	second, err := buffer.New[complex128](size, trait).Engine()
	if err != nil {
		return sdft.Sliding[complex128]{}, err
	}

	return sdft.Standalone(first).CombineWith(sdft.Standalone(second))
}

func generate(count int, freq, amplitude float64, trait sdft.Trait, noise bool, seed int64) []complex128 {
	out := make([]complex128, count)
	rng := rand.New(rand.NewSource(seed))
	step := 2 * math.Pi * freq

	for i := range out {
		var s complex128

		switch {
		case noise:
			s = complex((rng.Float64()*2-1)*amplitude, (rng.Float64()*2-1)*amplitude)
		case trait == sdft.TraitFull:
			s = complex(amplitude, 0) * cmplx.Exp(complex(0, step*float64(i)))
		default:
			s = complex(amplitude*math.Sin(step*float64(i)), 0)
		}

		switch trait {
		case sdft.TraitRealOnly:
			s = complex(real(s), 0)
		case sdft.TraitImagOnly:
			s = complex(0, real(s)+imag(s))
		}

		out[i] = s
	}

	return out
}

func printSpectrum(inst sdft.Sliding[complex128], size int, trait sdft.Trait) {
	bins := inst.Spectrum()
	mag := spectrum.Magnitude(bins)
	phase := spectrum.Phase(bins)

	fmt.Printf("window=%d trait=%s bins=%d precision=%s\n\n",
		size, trait, len(bins), sdft.PrecisionOf[complex128]())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "bin\tfreq\tmagnitude\tphase\t")

	for k := range bins {
		fmt.Fprintf(w, "%d\t%.3f\t%.4f\t%+.3f\t\n",
			k, float64(k)/float64(size), mag[k], phase[k])
	}

	w.Flush()
}
