// Package finance provides the discounted-cash-flow measures used by the
// simulation metrics: net present value and modified internal rate of
// return.
//
// Conventions match the spreadsheet and numpy-financial definitions: the
// first flow occurs at t = 0 and is not discounted.
package finance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DiscountFactors returns 1/(1+rate)^t for t = 0 … n-1.
func DiscountFactors(rate float64, n int) []float64 {
	out := make([]float64, n)
	d := 1.0
	for t := range out {
		out[t] = d
		d /= 1 + rate
	}

	return out
}

// NPV returns Σ flows[t] / (1+rate)^t. An empty series has NPV 0.
//
// Complexity: O(n).
func NPV(rate float64, flows []float64) float64 {
	if len(flows) == 0 {
		return 0
	}

	return floats.Dot(flows, DiscountFactors(rate, len(flows)))
}

// MIRR returns the modified internal rate of return of flows, financing
// outflows at financeRate and reinvesting inflows at reinvestRate:
//
//	(|NPV(reinvest, inflows)| / |NPV(finance, outflows)|)^(1/(n-1)) · (1+reinvest) - 1
//
// The result is NaN unless flows contain at least one positive and one
// negative value; no rate is defined for such a series. A NaN or ±Inf flow
// also yields NaN, so undefined periods never produce a rate.
func MIRR(flows []float64, financeRate, reinvestRate float64) float64 {
	n := len(flows)
	pos := make([]float64, n)
	neg := make([]float64, n)
	var hasPos, hasNeg bool
	for i, v := range flows {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return math.NaN()
		case v > 0:
			pos[i], hasPos = v, true
		case v < 0:
			neg[i], hasNeg = v, true
		}
	}
	if !hasPos || !hasNeg {
		return math.NaN()
	}

	numer := math.Abs(NPV(reinvestRate, pos))
	denom := math.Abs(NPV(financeRate, neg))
	if !isFinite(numer) || !isFinite(denom) {
		return math.NaN()
	}

	return math.Pow(numer/denom, 1/float64(n-1))*(1+reinvestRate) - 1
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
