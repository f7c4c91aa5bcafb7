package report_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simul8/report"
	"github.com/katalvlaran/simul8/simulation"
)

func oneToHundred() []float64 {
	xs := make([]float64, 100)
	for i := range xs {
		xs[len(xs)-1-i] = float64(i + 1) // descending: Summarize must sort
	}
	return xs
}

func TestSummarize(t *testing.T) {
	xs := oneToHundred()
	s, err := report.Summarize(xs)
	require.NoError(t, err)

	assert.Equal(t, 100, s.N)
	assert.InDelta(t, 50.5, s.Mean, 1e-12)
	assert.InDelta(t, 29.011491975882016, s.StdDev, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, 5.0, s.P5)
	assert.Equal(t, 50.0, s.P50)
	assert.Equal(t, 95.0, s.P95)
	assert.Zero(t, s.ProbBelowZero)
	assert.Equal(t, 100.0, xs[0], "input is not reordered")
}

func TestSummarize_ProbBelowZeroAndSingleton(t *testing.T) {
	s, err := report.Summarize([]float64{1, -1, 0, -2})
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.ProbBelowZero)

	s, err = report.Summarize([]float64{-400})
	require.NoError(t, err)
	assert.Zero(t, s.StdDev)
	assert.Equal(t, 1.0, s.ProbBelowZero)
	assert.Equal(t, -400.0, s.P50)
}

func TestSummarize_Errors(t *testing.T) {
	_, err := report.Summarize(nil)
	assert.ErrorIs(t, err, report.ErrEmpty)
	_, err = report.Summarize([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, report.ErrNaN)
	_, err = report.Summarize([]float64{math.Inf(-1)})
	assert.ErrorIs(t, err, report.ErrNaN)
}

func TestSummary_String(t *testing.T) {
	s, err := report.Summarize([]float64{-1500, 2500})
	require.NoError(t, err)
	assert.Equal(t,
		"n=2 mean=500.00 sd=2,828.43 min=-1,500.00 p5=-1,500.00 p50=-1,500.00 p95=2,500.00 max=2,500.00 P(<0)=50.00%",
		s.String())
}

func TestNewHistogram(t *testing.T) {
	xs := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
	}
	h, err := report.NewHistogram(xs, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, h.Bins())
	assert.Equal(t, 10, h.N)
	assert.Equal(t, []float64{2, 2, 2, 2, 2}, h.Counts)
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.6, 0.8, 1}, h.Cumulative, 1e-12)
	assert.Greater(t, h.Edges[5], 9.0)

	assert.Equal(t, 0.0, h.CumulativeAt(-1))
	assert.InDelta(t, 0.6, h.CumulativeAt(4), 1e-12)
	assert.Equal(t, 1.0, h.CumulativeAt(100))
}

func TestNewHistogram_Constant(t *testing.T) {
	h, err := report.NewHistogram([]float64{5, 5, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5.5, 6}, h.Edges)
	assert.Equal(t, []float64{3, 0}, h.Counts)
	assert.Equal(t, []float64{1, 1}, h.Cumulative)
}

func TestNewHistogram_Errors(t *testing.T) {
	_, err := report.NewHistogram([]float64{1}, 0)
	assert.ErrorIs(t, err, report.ErrInvalidBins)
	_, err = report.NewHistogram(nil, 3)
	assert.ErrorIs(t, err, report.ErrEmpty)
	_, err = report.NewHistogram([]float64{math.NaN()}, 3)
	assert.ErrorIs(t, err, report.ErrNaN)
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		v      float64
		places int32
		want   string
	}{
		{1234567.891, 2, "1,234,567.89"},
		{-1234.5, 2, "-1,234.50"},
		{999.999, 2, "1,000.00"},
		{0, 2, "0.00"},
		{12, 0, "12"},
		{123456, 0, "123,456"},
		{0.125, 2, "0.13"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(1), 2, "+Inf"},
		{math.Inf(-1), 2, "-Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, report.FormatMoney(tc.v, tc.places), "%v", tc.v)
	}
}

func TestTextVisualizer(t *testing.T) {
	var buf bytes.Buffer
	var v simulation.Visualizer = report.NewTextVisualizer(&buf, 4)

	require.NoError(t, v.Render(simulation.SeriesIRR, "cash", []float64{0.1, 0.2, 0.3, 0.4}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+4)
	assert.Equal(t, "Distribution of IRR for cash values", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "n=4 "))
	assert.Contains(t, lines[5], "100.00%")

	err := v.Render(simulation.SeriesNPV, "cash", nil)
	assert.ErrorIs(t, err, report.ErrEmpty)

	assert.Panics(t, func() { report.NewTextVisualizer(nil, 1) })
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Distribution of NPV for cash values", report.Title("NPV", "cash"))
	assert.Equal(t, "Distribution of cash values", report.Title(simulation.SeriesFeatureOnlySum, "cash"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextVisualizer_WriteError(t *testing.T) {
	v := report.NewTextVisualizer(failingWriter{}, 0)
	assert.EqualError(t, v.Render("x", "cash", []float64{1, 2}), "disk full")
}
