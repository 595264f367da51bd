// Package summary computes descriptive statistics of float64 sequences:
// length, mean, population variance and standard deviation, and the
// extremes with their positions. Results are available in one pass over a
// slice ([Calculate]) or block-wise ([StreamingStats]).
package summary
