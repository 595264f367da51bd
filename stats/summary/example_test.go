package summary_test

import (
	"fmt"

	"github.com/cwbudde/algo-preprocess/stats/summary"
)

func ExampleCalculate() {
	s := summary.Calculate([]float64{1, 5, 0, 3})
	fmt.Printf("mean=%.2f range=%.1f max@%d\n", s.Mean, s.Range, s.MaxPos)

	// Output:
	// mean=2.25 range=5.0 max@1
}

func ExampleStreamingStats() {
	s := summary.NewStreamingStats()
	s.Update([]float64{1, 3})
	s.Update([]float64{5, 7})
	m := s.Result()
	fmt.Printf("len=%d mean=%.1f var=%.1f\n", m.Length, m.Mean, m.Variance)

	// Output:
	// len=4 mean=4.0 var=5.0
}
