package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/simul8/matrix"
	"github.com/katalvlaran/simul8/table"
)

// Names of the scalar series a run produces.
const (
	SeriesFeatureOnlySum = "feature_only_sum"
	SeriesNPV            = "NPV"
	SeriesIRR            = "IRR"
)

// Results is the frozen output of a completed run. Every sequence is in
// iteration order. NPV and IRR are nil unless NPV/IRR were enabled.
type Results struct {
	RunID       uuid.UUID
	Target      string
	Simulations int

	FeatureOnlySum []float64
	NPV            []float64
	IRR            []float64

	// FullData holds the evaluated table of every iteration; nil when the
	// engine was built WithFullData(false).
	FullData []*table.Table

	// PatchedIRR counts the undefined IRR values replaced by the run minimum.
	PatchedIRR int

	Elapsed time.Duration
}

// Series returns the sequence selected by name together with its canonical
// name. Matching is case-insensitive; an unrecognised name selects the
// feature sum.
func (r *Results) Series(name string) (string, []float64) {
	switch {
	case strings.EqualFold(name, SeriesIRR):
		return SeriesIRR, r.IRR
	case strings.EqualFold(name, SeriesNPV):
		return SeriesNPV, r.NPV
	}
	return SeriesFeatureOnlySum, r.FeatureOnlySum
}

// PeriodMeans returns, for each period, the mean of the evaluated column
// across all iterations.
//
// Errors: ErrNoFullData; table.ErrUnknownVariable when column is not an
// output of the query.
func (r *Results) PeriodMeans(column string) ([]float64, error) {
	m, err := r.stack(column)
	if err != nil {
		return nil, fmt.Errorf("PeriodMeans(%s): %w", column, err)
	}

	return matrix.ColumnMeans(m)
}

// IterationMeans returns, for each iteration, the mean of the evaluated
// column over its periods. Errors as PeriodMeans.
func (r *Results) IterationMeans(column string) ([]float64, error) {
	m, err := r.stack(column)
	if err != nil {
		return nil, fmt.Errorf("IterationMeans(%s): %w", column, err)
	}

	return matrix.RowMeans(m)
}

// stack copies column out of every iteration table into a sims × periods
// matrix. Non-finite cells are kept.
func (r *Results) stack(column string) (*matrix.Dense, error) {
	if len(r.FullData) == 0 {
		return nil, ErrNoFullData
	}

	periods := r.FullData[0].Len()
	m, err := matrix.NewDense(len(r.FullData), periods, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i, t := range r.FullData {
		c, ok := t.Column(column)
		if !ok {
			return nil, table.ErrUnknownVariable
		}
		if err = m.SetRow(i, c); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
	}

	return m, nil
}

// Visualizer renders one named series. feature is the run's target column.
type Visualizer interface {
	Render(series, feature string, values []float64) error
}

// Visualize hands the series selected by name (see Series) to v.
func (r *Results) Visualize(v Visualizer, name string) error {
	series, values := r.Series(name)
	return v.Render(series, r.Target, values)
}
