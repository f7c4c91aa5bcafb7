package table_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/simul8/matrix"
	"github.com/katalvlaran/simul8/table"
	"github.com/katalvlaran/simul8/variate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowValued returns a sims × periods matrix where every cell equals
// base + simulation index.
func rowValued(t *testing.T, sims, periods int, base float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(sims, periods)
	require.NoError(t, err)
	require.NoError(t, m.Fill(func(i, _ int) float64 { return base + float64(i) }))
	return m
}

func TestAssembler_OverlaysRow(t *testing.T) {
	tpl := cashTemplate(t)
	reg := variate.NewRegistry()
	require.NoError(t, reg.Register("volume", rowValued(t, 4, 3, 1000)))

	a, err := table.NewAssembler(tpl, reg)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Simulations())
	assert.Same(t, tpl, a.Template())

	for i := 0; i < 4; i++ {
		tb, err := a.Assemble(i)
		require.NoError(t, err)
		vol, _ := tb.Column("volume")
		want := 1000 + float64(i)
		assert.Equal(t, []float64{want, want, want}, vol)

		price, _ := tb.Column("price")
		assert.Equal(t, []float64{10, 11, 12}, price, "static rows never change")
	}

	v, _ := tpl.Value("volume", "year2")
	assert.Equal(t, 100.0, v, "template is not mutated")
}

func TestAssembler_AssembleIntoRestoresStaticColumns(t *testing.T) {
	tpl := cashTemplate(t)
	reg := variate.NewRegistry()
	require.NoError(t, reg.Register("price", rowValued(t, 2, 3, 50)))
	a, err := table.NewAssembler(tpl, reg)
	require.NoError(t, err)

	buf := a.NewBuffer()
	require.NoError(t, a.AssembleInto(buf, 0))
	cost, _ := buf.Column("cost")
	cost[0] = 12345 // consumer scribbles on the buffer

	require.NoError(t, a.AssembleInto(buf, 1))
	cost, _ = buf.Column("cost")
	assert.Equal(t, []float64{-500, -50, -50}, cost)
	price, _ := buf.Column("price")
	assert.Equal(t, []float64{51, 51, 51}, price)
}

func TestAssembler_Errors(t *testing.T) {
	tpl := cashTemplate(t)

	_, err := table.NewAssembler(nil, variate.NewRegistry())
	assert.ErrorIs(t, err, table.ErrNilTable)

	reg := variate.NewRegistry()
	require.NoError(t, reg.Register("tax", rowValued(t, 2, 3, 0)))
	_, err = table.NewAssembler(tpl, reg)
	assert.ErrorIs(t, err, table.ErrUnknownVariable)

	reg = variate.NewRegistry()
	require.NoError(t, reg.Register("price", rowValued(t, 2, 5, 0)))
	_, err = table.NewAssembler(tpl, reg)
	assert.ErrorIs(t, err, table.ErrShapeMismatch)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	reg = variate.NewRegistry()
	require.NoError(t, reg.Register("price", rowValued(t, 2, 3, 0)))
	a, err := table.NewAssembler(tpl, reg)
	require.NoError(t, err)

	_, err = a.Assemble(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = a.Assemble(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, a.AssembleInto(nil, 0), table.ErrNilTable)

	foreign, err := table.NewTable([]string{"y1"}, []string{"x"}, [][]float64{{1}})
	require.NoError(t, err)
	assert.ErrorIs(t, a.AssembleInto(foreign, 0), table.ErrShapeMismatch)
}

func TestAssembler_ConcurrentBuffers(t *testing.T) {
	tpl := cashTemplate(t)
	reg := variate.NewRegistry()
	require.NoError(t, reg.Register("volume", rowValued(t, 64, 3, 0)))
	a, err := table.NewAssembler(tpl, reg)
	require.NoError(t, err)

	sums := make([]float64, 64)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			buf := a.NewBuffer()
			for i := w; i < 64; i += 4 {
				if err := a.AssembleInto(buf, i); err != nil {
					return
				}
				vol, _ := buf.Column("volume")
				sums[i] = vol[0] + vol[1] + vol[2]
			}
		}(w)
	}
	wg.Wait()

	for i, s := range sums {
		assert.Equal(t, 3*float64(i), s)
	}
}
