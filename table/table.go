package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is a column-oriented numeric table: one row per period, one named
// column per variable. Column order is insertion order.
//
// Tables handed out by the assembler are owned by a single goroutine; a
// Table is not safe for concurrent mutation.
type Table struct {
	periods []string // row labels, shared and never mutated
	names   []string
	index   map[string]int
	cols    [][]float64
}

// NewTable builds a table from parallel names/cols slices. Every column must
// have len(periods) values. Inputs are copied.
//
// Errors: ErrEmptyName, ErrDuplicateName, ErrShapeMismatch.
func NewTable(periods, names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("NewTable: %d names, %d columns: %w", len(names), len(cols), ErrShapeMismatch)
	}
	index, err := indexNames(names)
	if err != nil {
		return nil, fmt.Errorf("NewTable: %w", err)
	}
	t := &Table{
		periods: append([]string(nil), periods...),
		names:   append([]string(nil), names...),
		index:   index,
		cols:    make([][]float64, len(cols)),
	}
	for k, c := range cols {
		if len(c) != len(periods) {
			return nil, fmt.Errorf("NewTable: column %q has %d rows, want %d: %w", names[k], len(c), len(periods), ErrShapeMismatch)
		}
		t.cols[k] = append([]float64(nil), c...)
	}

	return t, nil
}

// Len returns the number of rows (periods).
func (t *Table) Len() int { return len(t.periods) }

// Periods returns a copy of the row labels.
func (t *Table) Periods() []string { return append([]string(nil), t.periods...) }

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the backing slice of the named column. Callers must treat
// it as read-only; use ColumnCopy when the values are retained or mutated.
func (t *Table) Column(name string) ([]float64, bool) {
	k, ok := t.index[name]
	if !ok {
		return nil, false
	}

	return t.cols[k], true
}

// ColumnCopy returns a copy of the named column.
func (t *Table) ColumnCopy(name string) ([]float64, bool) {
	c, ok := t.Column(name)
	if !ok {
		return nil, false
	}

	return append([]float64(nil), c...), true
}

// Value returns the cell at (column name, row).
func (t *Table) Value(name string, row int) (float64, error) {
	c, ok := t.Column(name)
	if !ok {
		return 0, fmt.Errorf("Table.Value(%s): %w", name, ErrUnknownVariable)
	}
	if row < 0 || row >= len(c) {
		return 0, fmt.Errorf("Table.Value(%s, %d): %w", name, row, ErrShapeMismatch)
	}

	return c[row], nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	cols := make([][]float64, len(t.cols))
	for k, c := range t.cols {
		cols[k] = append([]float64(nil), c...)
	}

	return &Table{
		periods: t.periods,
		names:   append([]string(nil), t.names...),
		index:   copyIndex(t.index),
		cols:    cols,
	}
}

// String renders the table as tab-separated text with a header line.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("period")
	for _, n := range t.names {
		sb.WriteByte('\t')
		sb.WriteString(n)
	}
	sb.WriteByte('\n')
	for r, p := range t.periods {
		sb.WriteString(p)
		for _, c := range t.cols {
			sb.WriteByte('\t')
			sb.WriteString(strconv.FormatFloat(c[r], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
