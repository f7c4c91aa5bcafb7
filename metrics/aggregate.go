package metrics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simul8/finance"
	"github.com/katalvlaran/simul8/table"
	"gonum.org/v1/gonum/floats"
)

// Params configures Aggregate. The Has* flags distinguish "absent" from a
// legitimate zero value.
type Params struct {
	InitialInvestment float64
	HasInvestment     bool

	RequiredRate float64
	HasRate      bool

	ComputeNPVIRR bool

	// ReinvestRate replaces RequiredRate on the MIRR reinvestment leg when
	// HasReinvest is set.
	ReinvestRate float64
	HasReinvest  bool
}

// NPVIRREnabled reports whether NPV and IRR are computed: requested, and
// both a rate and an investment are present.
func (p Params) NPVIRREnabled() bool {
	return p.ComputeNPVIRR && p.HasRate && p.HasInvestment
}

// Outcome holds the scalars for one iteration. NPV and IRR are meaningful
// only when HasNPVIRR is set; IRR may be NaN when the cash-flow series
// admits no rate.
type Outcome struct {
	Sum       float64
	NPV       float64
	IRR       float64
	HasNPVIRR bool
}

// NormalizeInvestment returns v as an outflow: -v when v > 0, v otherwise.
func NormalizeInvestment(v float64) float64 {
	if v > 0 {
		return -v
	}
	return v
}

// CashFlows returns [investment] followed by the target column in period
// order. The investment is normalized first.
func CashFlows(investment float64, column []float64) []float64 {
	flows := make([]float64, 0, len(column)+1)
	flows = append(flows, NormalizeInvestment(investment))

	return append(flows, column...)
}

// Aggregate reduces the target column of an evaluated table.
//
// Stage 1: Sum = Σ column (+ normalized investment when present).
// Stage 2: when NPVIRREnabled, build CashFlows and compute NPV at the
// required rate and MIRR with the required rate on the finance leg.
//
// Non-finite values are not masked: they propagate into Sum and NPV, and
// leave IRR NaN for PatchIRR to resolve.
//
// Errors: ErrNilTable, ErrUnknownFeature.
func Aggregate(t *table.Table, target string, p Params) (Outcome, error) {
	if t == nil {
		return Outcome{}, ErrNilTable
	}
	col, ok := t.Column(target)
	if !ok {
		return Outcome{}, fmt.Errorf("Aggregate(%q): %w", target, ErrUnknownFeature)
	}

	var out Outcome
	out.Sum = floats.Sum(col)
	if p.HasInvestment {
		out.Sum += NormalizeInvestment(p.InitialInvestment)
	}

	if !p.NPVIRREnabled() {
		return out, nil
	}

	flows := CashFlows(p.InitialInvestment, col)
	reinvest := p.RequiredRate
	if p.HasReinvest {
		reinvest = p.ReinvestRate
	}
	out.NPV = finance.NPV(p.RequiredRate, flows)
	out.IRR = finance.MIRR(flows, p.RequiredRate, reinvest)
	out.HasNPVIRR = true

	return out, nil
}

// PatchIRR replaces every NaN in irr, in place, with the minimum defined
// value and returns how many entries it replaced. Infinite values count as
// defined.
//
// An empty slice is a no-op. A non-empty slice with no defined value fails
// with ErrNoDefinedIRR and is left untouched.
func PatchIRR(irr []float64) (int, error) {
	if len(irr) == 0 {
		return 0, nil
	}

	lowest := math.Inf(1)
	defined := false
	for _, v := range irr {
		if math.IsNaN(v) {
			continue
		}
		defined = true
		if v < lowest {
			lowest = v
		}
	}
	if !defined {
		return 0, fmt.Errorf("PatchIRR(%d iterations): %w", len(irr), ErrNoDefinedIRR)
	}

	patched := 0
	for i, v := range irr {
		if math.IsNaN(v) {
			irr[i] = lowest
			patched++
		}
	}

	return patched, nil
}
