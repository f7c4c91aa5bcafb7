package table_test

import (
	"testing"

	"github.com/katalvlaran/simul8/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	periods := []string{"y1", "y2"}
	cols := [][]float64{{1, 2}, {3, 4}}
	tb, err := table.NewTable(periods, []string{"a", "b"}, cols)
	require.NoError(t, err)

	cols[0][0] = 100 // inputs are copied
	v, err := tb.Value("a", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	assert.True(t, tb.Has("b"))
	assert.Equal(t, []string{"y1", "y2"}, tb.Periods())

	_, err = tb.Value("zzz", 0)
	assert.ErrorIs(t, err, table.ErrUnknownVariable)
	_, err = tb.Value("a", 5)
	assert.ErrorIs(t, err, table.ErrShapeMismatch)

	_, err = table.NewTable(periods, []string{"a"}, [][]float64{{1}})
	assert.ErrorIs(t, err, table.ErrShapeMismatch)
	_, err = table.NewTable(periods, []string{"a", "a"}, [][]float64{{1, 2}, {1, 2}})
	assert.ErrorIs(t, err, table.ErrDuplicateName)
	_, err = table.NewTable(periods, []string{"a", "b"}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, table.ErrShapeMismatch)
}

func TestTable_CloneAndCopy(t *testing.T) {
	tb, err := table.NewTable([]string{"y1"}, []string{"a"}, [][]float64{{7}})
	require.NoError(t, err)

	cl := tb.Clone()
	c, _ := cl.Column("a")
	c[0] = 8
	v, _ := tb.Value("a", 0)
	assert.Equal(t, 7.0, v)

	cp, ok := tb.ColumnCopy("a")
	require.True(t, ok)
	cp[0] = 9
	v, _ = tb.Value("a", 0)
	assert.Equal(t, 7.0, v)

	_, ok = tb.ColumnCopy("missing")
	assert.False(t, ok)
}

func TestTable_String(t *testing.T) {
	tb, err := table.NewTable([]string{"y1", "y2"}, []string{"a", "b"}, [][]float64{{1, 2}, {0.5, -3}})
	require.NoError(t, err)
	assert.Equal(t, "period\ta\tb\ny1\t1\t0.5\ny2\t2\t-3\n", tb.String())
}
