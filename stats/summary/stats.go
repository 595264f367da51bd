package summary

import "math"

// Stats holds the descriptive statistics of a sequence.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64 // population variance (divisor n)
	StdDev   float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for the mean and second central moment.
// Returns the zero Stats for an empty sequence.
func Calculate(data []float64) Stats {
	if len(data) == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		maxVal = data[0]
		maxPos int
		minVal = data[0]
		minPos int
	)

	for i, x := range data {
		ni := float64(i + 1)
		delta := x - mean
		mean += delta / ni
		m2 += delta * (x - mean)

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	return finish(len(data), mean, m2, minVal, minPos, maxVal, maxPos)
}

func finish(n int, mean, m2, minVal float64, minPos int, maxVal float64, maxPos int) Stats {
	variance := m2 / float64(n)
	if variance < 0 {
		variance = 0
	}

	return Stats{
		Length:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		Range:    maxVal - minVal,
	}
}

// Mean returns the arithmetic mean of data, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, x := range data {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(data))
}

// Variance returns the population variance of data, or 0 for an empty slice.
func Variance(data []float64) float64 {
	return Calculate(data).Variance
}

// StdDev returns the population standard deviation of data.
func StdDev(data []float64) float64 {
	return Calculate(data).StdDev
}

// MinMax returns the smallest and largest value of data.
// Both are 0 for an empty slice.
func MinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}

	minVal, maxVal = data[0], data[0]
	for _, x := range data[1:] {
		if x < minVal {
			minVal = x
		}

		if x > maxVal {
			maxVal = x
		}
	}

	return minVal, maxVal
}

// StreamingStats accumulates statistics incrementally across multiple
// blocks. Each sample is processed individually so the result is
// bit-for-bit identical to [Calculate] on the concatenated blocks.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(block []float64) {
	for _, x := range block {
		s.n++

		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)

		if s.n == 1 {
			s.maxVal, s.maxPos = x, 0
			s.minVal, s.minPos = x, 0

			continue
		}

		if x > s.maxVal {
			s.maxVal = x
			s.maxPos = s.n - 1
		}

		if x < s.minVal {
			s.minVal = x
			s.minPos = s.n - 1
		}
	}
}

// Len returns the number of samples seen so far.
func (s *StreamingStats) Len() int {
	return s.n
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	return finish(s.n, s.mean, s.m2, s.minVal, s.minPos, s.maxVal, s.maxPos)
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
