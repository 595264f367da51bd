package preprocess

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float64s converts a slice of any numeric type to a new []float64.
// It returns nil for a nil input.
func Float64s[T Number](xs []T) []float64 {
	if xs == nil {
		return nil
	}

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}
