package report

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a series. Percentiles use the empirical (lower)
// quantile: P50 is the smallest value with at least half the series at or
// below it.
type Summary struct {
	N             int
	Mean          float64
	StdDev        float64 // sample standard deviation; 0 when N == 1
	Min, Max      float64
	P5, P50, P95  float64
	ProbBelowZero float64
}

// Summarize computes the Summary of values. The input is not modified.
//
// Errors: ErrEmpty, ErrNaN.
//
// Complexity: O(n log n) for the sorted copy.
func Summarize(values []float64) (Summary, error) {
	sorted, err := sortedFinite(values)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	s := Summary{
		N:    len(sorted),
		Mean: stat.Mean(sorted, nil),
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		P5:   stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if s.N > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	below := sort.SearchFloat64s(sorted, 0) // first index with v >= 0
	s.ProbBelowZero = float64(below) / float64(s.N)

	return s, nil
}

// String renders the summary as aligned text with money-style figures.
func (s Summary) String() string {
	return fmt.Sprintf(
		"n=%d mean=%s sd=%s min=%s p5=%s p50=%s p95=%s max=%s P(<0)=%.2f%%",
		s.N,
		FormatMoney(s.Mean, 2), FormatMoney(s.StdDev, 2),
		FormatMoney(s.Min, 2), FormatMoney(s.P5, 2), FormatMoney(s.P50, 2),
		FormatMoney(s.P95, 2), FormatMoney(s.Max, 2),
		100*s.ProbBelowZero,
	)
}

// sortedFinite returns a sorted copy of values after rejecting empty input
// and non-finite entries.
func sortedFinite(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("index %d: %w", i, ErrNaN)
		}
		out[i] = v
	}
	sort.Float64s(out)

	return out, nil
}
