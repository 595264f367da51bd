// Package preprocess provides elementary preprocessing transforms for
// float64 sequences: centering around a target mean, whitening to zero
// mean and unit variance, range computation, linear rescaling into a
// closed interval, and equalizing the length of two sequences by cutting
// or padding.
//
// All functions are pure. The allocating variants never modify their
// inputs and never return slices that alias them; the *InPlace variants
// overwrite their argument and leave it untouched when they return an
// error. Invalid input is reported with an error matching
// [ErrInvalidInput] via errors.Is.
//
// Optional parameters are passed as functional options:
//
//	centered, err := preprocess.Center(data, preprocess.WithTarget(5))
//	scaled, err := preprocess.Rescale(data, preprocess.WithBounds(-1, 1))
//	a, b := preprocess.PadToSameSize(x, y, preprocess.WithPadValue(math.NaN()))
package preprocess
