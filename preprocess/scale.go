package preprocess

import "github.com/cwbudde/algo-preprocess/stats/summary"

// ValueRange returns the distance between the lowest and the highest value
// of data. It is 0 when all values are equal.
func ValueRange(data []float64) (float64, error) {
	if err := validateNonEmpty(data); err != nil {
		return 0, err
	}

	lo, hi := summary.MinMax(data)

	return hi - lo, nil
}

// Rescale returns a copy of data linearly mapped so that its minimum
// becomes the lower bound and its maximum the upper bound ([0, 1] unless
// set with [WithBounds]).
func Rescale(data []float64, opts ...Option) ([]float64, error) {
	out := clone(data)
	if err := RescaleInPlace(out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// RescaleInPlace linearly maps data in place into the configured bounds.
// The extremes land exactly on the bounds and every result lies within
// them.
func RescaleInPlace(data []float64, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := validateBounds(cfg.lower, cfg.upper); err != nil {
		return err
	}

	if err := validateNonEmpty(data); err != nil {
		return err
	}

	lo, hi := summary.MinMax(data)
	span := hi - lo
	if span == 0 {
		return errZeroRange
	}

	width := cfg.upper - cfg.lower
	for i, x := range data {
		switch x {
		case lo:
			data[i] = cfg.lower
		case hi:
			data[i] = cfg.upper
		default:
			data[i] = clamp(cfg.lower+(x-lo)*width/span, cfg.lower, cfg.upper)
		}
	}

	return nil
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}

	if v > upper {
		return upper
	}

	return v
}
