package preprocess

import (
	"github.com/cwbudde/algo-preprocess/stats/summary"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Tolerance is the absolute deviation from the ideal mean and standard
// deviation that the centering and whitening results are expected to stay
// within for well-conditioned input.
const Tolerance = 1e-14

// Center returns a copy of data shifted so its mean equals the target
// (0 unless set with [WithTarget]). The standard deviation is unchanged.
func Center(data []float64, opts ...Option) ([]float64, error) {
	out := clone(data)
	if err := CenterInPlace(out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// CenterInPlace shifts data in place so its mean equals the target.
func CenterInPlace(data []float64, opts ...Option) error {
	if err := validateNonEmpty(data); err != nil {
		return err
	}

	cfg := applyOptions(opts)
	floats.AddConst(cfg.target-summary.Mean(data), data)

	return nil
}

// Whiten returns a copy of data with zero mean and unit (population)
// standard deviation.
func Whiten(data []float64) ([]float64, error) {
	std, err := whiteningStdDev(data)
	if err != nil {
		return nil, err
	}

	out, err := Center(data)
	if err != nil {
		return nil, err
	}

	vecmath.ScaleBlockInPlace(out, 1/std)

	return out, nil
}

// WhitenInPlace whitens data in place.
func WhitenInPlace(data []float64) error {
	std, err := whiteningStdDev(data)
	if err != nil {
		return err
	}

	if err := CenterInPlace(data); err != nil {
		return err
	}

	vecmath.ScaleBlockInPlace(data, 1/std)

	return nil
}

func whiteningStdDev(data []float64) (float64, error) {
	if err := validateNonEmpty(data); err != nil {
		return 0, err
	}

	std := summary.StdDev(data)
	if std == 0 {
		return 0, errZeroVariance
	}

	return std, nil
}

func clone(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	return out
}
