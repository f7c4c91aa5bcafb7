package finance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/simul8/finance"
	"github.com/stretchr/testify/assert"
)

func TestNPV(t *testing.T) {
	cases := []struct {
		name  string
		rate  float64
		flows []float64
		want  float64
	}{
		{"empty", 0.1, nil, 0},
		{"zero rate is plain sum", 0, []float64{-500, 100}, -400},
		{"first flow undiscounted", 0.1, []float64{-100}, -100},
		{"ten percent", 0.1, []float64{-100, 110}, 0},
		{"two periods", 0.05, []float64{-1000, 525, 551.25}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, finance.NPV(tc.rate, tc.flows), 1e-9)
		})
	}
}

func TestDiscountFactors(t *testing.T) {
	got := finance.DiscountFactors(1, 4)
	assert.Equal(t, []float64{1, 0.5, 0.25, 0.125}, got)
	assert.Empty(t, finance.DiscountFactors(0.1, 0))
}

func TestMIRR(t *testing.T) {
	// single investment, single return at zero rate
	assert.InDelta(t, -0.8, finance.MIRR([]float64{-500, 100}, 0, 0), 1e-12)

	// doubling over one period
	assert.InDelta(t, 1.0, finance.MIRR([]float64{-100, 200}, 0.1, 0.1), 1e-12)

	// reference values from numpy_financial.mirr
	flows := []float64{-120000, 39000, 30000, 21000, 37000, 46000}
	assert.InDelta(t, 0.126094130366, finance.MIRR(flows, 0.10, 0.12), 1e-9)

	flows = []float64{100, 200, -50, 300, -200}
	assert.InDelta(t, 0.342823387842, finance.MIRR(flows, 0.05, 0.06), 1e-9)
}

func TestMIRR_Undefined(t *testing.T) {
	for _, flows := range [][]float64{
		nil,
		{0, 0},
		{100, 200},
		{-100, -200},
		{-100, 0, 0},
		{-500, math.NaN(), 100},
		{-500, math.Inf(1), 100},
		{-500, math.Inf(-1), 100},
		{math.Inf(-1), math.Inf(1)},
	} {
		assert.True(t, math.IsNaN(finance.MIRR(flows, 0.1, 0.1)), "%v", flows)
	}

	// A -100% finance rate discounts later outflows by 1/0.
	assert.True(t, math.IsNaN(finance.MIRR([]float64{-100, 50, 80}, -1, 0.1)))
}

func BenchmarkMIRR(b *testing.B) {
	flows := []float64{-1000, 120, 180, 240, 300, 360, 420, 480, 540, 600}
	for i := 0; i < b.N; i++ {
		_ = finance.MIRR(flows, 0.08, 0.08)
	}
}
