package simulation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/simul8/formula"
	"github.com/katalvlaran/simul8/simulation"
	"github.com/katalvlaran/simul8/table"
	"github.com/katalvlaran/simul8/variate"
)

type recordingVisualizer struct {
	series, feature string
	values          []float64
	err             error
}

func (r *recordingVisualizer) Render(series, feature string, values []float64) error {
	r.series, r.feature, r.values = series, feature, values
	return r.err
}

func completedRun(t *testing.T, opts ...simulation.Option) *simulation.Results {
	t.Helper()
	opts = append([]simulation.Option{
		simulation.WithInitialInvestment(-500),
		simulation.WithRequiredRate(0.1),
		simulation.WithNPVIRR(true),
	}, opts...)
	e, err := simulation.New(projectTemplate(t), 20, "cash", formula.MustParse(cashQuery), opts...)
	require.NoError(t, err)
	require.NoError(t, e.Uniform(map[string]variate.Params{"demand": {90, 110}}))
	res, err := e.Run(context.Background())
	require.NoError(t, err)
	return res
}

func TestResults_Series(t *testing.T) {
	res := completedRun(t)

	cases := []struct {
		in, want string
		values   []float64
	}{
		{"IRR", simulation.SeriesIRR, res.IRR},
		{"irr", simulation.SeriesIRR, res.IRR},
		{"Npv", simulation.SeriesNPV, res.NPV},
		{"feature_only_sum", simulation.SeriesFeatureOnlySum, res.FeatureOnlySum},
		{"anything else", simulation.SeriesFeatureOnlySum, res.FeatureOnlySum},
	}
	for _, tc := range cases {
		name, values := res.Series(tc.in)
		assert.Equal(t, tc.want, name, tc.in)
		assert.Equal(t, tc.values, values, tc.in)
	}
}

func TestResults_Visualize(t *testing.T) {
	res := completedRun(t)

	v := &recordingVisualizer{}
	require.NoError(t, res.Visualize(v, "npv"))
	assert.Equal(t, simulation.SeriesNPV, v.series)
	assert.Equal(t, "cash", v.feature)
	assert.Len(t, v.values, 20)

	boom := errors.New("render failed")
	assert.ErrorIs(t, res.Visualize(&recordingVisualizer{err: boom}, "IRR"), boom)
}

func TestResults_PeriodMeans(t *testing.T) {
	res := completedRun(t)

	cost, err := res.PeriodMeans("cost")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6, 6}, cost)

	demand, err := res.PeriodMeans("demand")
	require.NoError(t, err)
	require.Len(t, demand, 3)
	for _, m := range demand {
		assert.True(t, m >= 90 && m < 110, "mean %v outside the uniform support", m)
	}

	_, err = res.PeriodMeans("tax")
	assert.ErrorIs(t, err, table.ErrUnknownVariable)
}

func TestResults_IterationMeans(t *testing.T) {
	res := completedRun(t)

	cost, err := res.IterationMeans("cost")
	require.NoError(t, err)
	require.Len(t, cost, 20)
	for _, m := range cost {
		assert.Equal(t, 6.0, m)
	}

	byIter, err := res.IterationMeans("demand")
	require.NoError(t, err)
	byPeriod, err := res.PeriodMeans("demand")
	require.NoError(t, err)
	assert.InDelta(t, stat.Mean(byPeriod, nil), stat.Mean(byIter, nil), 1e-9)

	_, err = res.IterationMeans("tax")
	assert.ErrorIs(t, err, table.ErrUnknownVariable)
}

func TestResults_NoFullData(t *testing.T) {
	res := completedRun(t, simulation.WithFullData(false))
	assert.Nil(t, res.FullData)
	assert.Len(t, res.FeatureOnlySum, 20)

	_, err := res.PeriodMeans("cash")
	assert.ErrorIs(t, err, simulation.ErrNoFullData)
	_, err = res.IterationMeans("cash")
	assert.ErrorIs(t, err, simulation.ErrNoFullData)
}
