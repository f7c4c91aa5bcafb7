package report

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Histogram is an equal-width binning of a series.
//
// Bin k covers [Edges[k], Edges[k+1]); the last edge is nudged just above
// the maximum so the maximum falls in the last bin. Cumulative[k] is the
// fraction of values in bins 0..k.
type Histogram struct {
	Edges      []float64
	Counts     []float64
	Cumulative []float64
	N          int
}

// NewHistogram bins values into the given number of equal-width bins over
// [min, max]. A constant series gets bins of width 1/bins starting at the
// value.
//
// Errors: ErrInvalidBins, ErrEmpty, ErrNaN.
//
// Complexity: O(n log n + bins).
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("NewHistogram(%d): %w", bins, ErrInvalidBins)
	}
	sorted, err := sortedFinite(values)
	if err != nil {
		return nil, fmt.Errorf("NewHistogram: %w", err)
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1 / float64(bins)
	}
	edges := make([]float64, bins+1)
	for k := range edges {
		edges[k] = lo + float64(k)*width
	}
	if edges[bins] <= hi {
		edges[bins] = math.Nextafter(hi, math.Inf(1))
	}

	counts := stat.Histogram(nil, edges, sorted, nil)

	cum := make([]float64, bins)
	running := 0.0
	for k, c := range counts {
		running += c
		cum[k] = running / float64(len(sorted))
	}

	return &Histogram{Edges: edges, Counts: counts, Cumulative: cum, N: len(sorted)}, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.Counts) }

// CumulativeAt returns the fraction of values ≤ x, resolved to bin
// granularity: values in the bin containing x count as included.
func (h *Histogram) CumulativeAt(x float64) float64 {
	switch {
	case x < h.Edges[0]:
		return 0
	case x >= h.Edges[len(h.Edges)-1]:
		return 1
	}
	for k := 0; k < h.Bins(); k++ {
		if x < h.Edges[k+1] {
			return h.Cumulative[k]
		}
	}
	return 1
}
