package preprocess

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned (wrapped) for every input a transform
// cannot be applied to.
var ErrInvalidInput = errors.New("preprocess: invalid input")

var (
	errEmpty        = fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	errZeroVariance = fmt.Errorf("%w: zero variance", ErrInvalidInput)
	errZeroRange    = fmt.Errorf("%w: zero range", ErrInvalidInput)
)

func validateNonEmpty(data []float64) error {
	if len(data) == 0 {
		return errEmpty
	}
	return nil
}

func validateBounds(lower, upper float64) error {
	if !(upper > lower) {
		return fmt.Errorf("%w: upper bound must be greater than lower bound: [%g, %g]",
			ErrInvalidInput, lower, upper)
	}
	return nil
}
