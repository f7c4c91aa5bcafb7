package table

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/simul8/matrix"
)

// Template is the base period table: one row per variable, one column per
// period, numeric cells. Immutable after construction.
type Template struct {
	variables []string
	periods   []string
	varIndex  map[string]int
	perIndex  map[string]int
	values    *matrix.Dense // variables × periods
}

// DefaultPeriods returns the labels "year1" … "yearN".
func DefaultPeriods(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "year" + strconv.Itoa(i+1)
	}

	return out
}

// NewTemplate builds a template from row-major values (values[v][p] is
// variable v in period p). A nil periods slice is replaced by
// DefaultPeriods. Input slices are copied.
//
// Errors: ErrEmptyTemplate, ErrDuplicateName, ErrShapeMismatch, and
// matrix.ErrNaNInf for non-finite cells.
func NewTemplate(variables, periods []string, values [][]float64) (*Template, error) {
	if len(variables) == 0 || len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyTemplate
	}
	if len(values) != len(variables) {
		return nil, fmt.Errorf("NewTemplate: %d variables, %d value rows: %w", len(variables), len(values), ErrShapeMismatch)
	}
	if periods == nil {
		periods = DefaultPeriods(len(values[0]))
	}
	if len(periods) != len(values[0]) {
		return nil, fmt.Errorf("NewTemplate: %d periods, %d values per row: %w", len(periods), len(values[0]), ErrShapeMismatch)
	}

	varIndex, err := indexNames(variables)
	if err != nil {
		return nil, fmt.Errorf("NewTemplate: variables: %w", err)
	}
	perIndex, err := indexNames(periods)
	if err != nil {
		return nil, fmt.Errorf("NewTemplate: periods: %w", err)
	}

	for i, row := range values {
		if len(row) != len(periods) {
			return nil, fmt.Errorf("NewTemplate: row %q has %d values, want %d: %w", variables[i], len(row), len(periods), ErrShapeMismatch)
		}
	}

	m, err := matrix.NewDenseFrom(values)
	if err != nil {
		return nil, fmt.Errorf("NewTemplate: %w", err)
	}

	return &Template{
		variables: append([]string(nil), variables...),
		periods:   append([]string(nil), periods...),
		varIndex:  varIndex,
		perIndex:  perIndex,
		values:    m,
	}, nil
}

// Variables returns the variable names in row order.
func (t *Template) Variables() []string { return append([]string(nil), t.variables...) }

// Periods returns the period labels in column order.
func (t *Template) Periods() []string { return append([]string(nil), t.periods...) }

// NumVariables returns the number of variables (rows).
func (t *Template) NumVariables() int { return len(t.variables) }

// NumPeriods returns the number of periods (columns).
func (t *Template) NumPeriods() int { return len(t.periods) }

// Has reports whether variable exists in the template.
func (t *Template) Has(variable string) bool {
	_, ok := t.varIndex[variable]
	return ok
}

// Row returns a copy of the variable's values across periods.
func (t *Template) Row(variable string) ([]float64, error) {
	i, ok := t.varIndex[variable]
	if !ok {
		return nil, fmt.Errorf("Template.Row(%s): %w", variable, ErrUnknownVariable)
	}

	return t.values.Row(i)
}

// Value returns the cell for (variable, period).
func (t *Template) Value(variable, period string) (float64, error) {
	i, ok := t.varIndex[variable]
	if !ok {
		return 0, fmt.Errorf("Template.Value(%s): %w", variable, ErrUnknownVariable)
	}
	j, ok := t.perIndex[period]
	if !ok {
		return 0, fmt.Errorf("Template.Value(%s, %s): %w", variable, period, ErrUnknownPeriod)
	}

	return t.values.At(i, j)
}

// Table returns the template as a fresh column-oriented table, one column
// per variable.
func (t *Template) Table() *Table {
	cols := make([][]float64, len(t.variables))
	for i := range cols {
		row, _ := t.values.Row(i) // i is always in range
		cols[i] = row
	}

	return &Table{
		periods: t.periods,
		names:   append([]string(nil), t.variables...),
		index:   copyIndex(t.varIndex),
		cols:    cols,
	}
}

func indexNames(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("position %d: %w", i, ErrEmptyName)
		}
		if _, dup := idx[n]; dup {
			return nil, fmt.Errorf("%q: %w", n, ErrDuplicateName)
		}
		idx[n] = i
	}

	return idx, nil
}

func copyIndex(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
