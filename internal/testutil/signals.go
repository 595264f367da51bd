package testutil

import "math/rand"

// DeterministicNoise generates uniform noise in [offset-amplitude,
// offset+amplitude) with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, offset, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = offset + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// Ramp returns length values start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Constant generates a constant-valued sequence.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Clone returns a copy of data, so tests can check that inputs are left
// untouched.
func Clone(data []float64) []float64 {
	return append([]float64(nil), data...)
}
