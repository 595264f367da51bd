package preprocess

import (
	"math"
	"strconv"
	"testing"
)

var benchSizes = []int{64, 1024, 16384, 65536}

func makeBenchData(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 3 + math.Sin(2*math.Pi*float64(i)/float64(n))
	}

	return out
}

func BenchmarkCenter(b *testing.B) {
	for _, n := range benchSizes {
		data := makeBenchData(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Center(data, WithTarget(1))
			}
		})
	}
}

func BenchmarkWhitenInPlace(b *testing.B) {
	for _, n := range benchSizes {
		src := makeBenchData(n)
		buf := make([]float64, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				copy(buf, src)
				_ = WhitenInPlace(buf)
			}
		})
	}
}

func BenchmarkRescale(b *testing.B) {
	for _, n := range benchSizes {
		data := makeBenchData(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = Rescale(data, WithBounds(-1, 1))
			}
		})
	}
}
