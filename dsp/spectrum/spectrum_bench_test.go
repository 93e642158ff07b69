package spectrum

import "testing"

func benchBins(n int) []complex128 {
	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(float64(i)/10.0, float64(n-i)/10.0)
	}
	return in
}

func BenchmarkMagnitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"64", 64},
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			in := benchBins(testCase.size)

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_ = Magnitude(in)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			in := benchBins(testCase.size)

			b.SetBytes(int64(testCase.size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Power(in)
			}
		})
	}
}
