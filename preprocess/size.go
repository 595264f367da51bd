package preprocess

// CutToSameSize returns copies of a and b truncated to the length of the
// shorter one.
func CutToSameSize(a, b []float64) ([]float64, []float64) {
	n := min(len(a), len(b))

	return clone(a[:n]), clone(b[:n])
}

// PadToSameSize returns copies of a and b where the shorter one is
// extended at its end to the length of the longer one. The pad value is 0
// unless set with [WithPadValue].
func PadToSameSize(a, b []float64, opts ...Option) ([]float64, []float64) {
	cfg := applyOptions(opts)
	n := max(len(a), len(b))

	return padTo(a, n, cfg.padValue), padTo(b, n, cfg.padValue)
}

func padTo(data []float64, n int, value float64) []float64 {
	out := make([]float64, n)
	copy(out, data)

	for i := len(data); i < n; i++ {
		out[i] = value
	}

	return out
}
