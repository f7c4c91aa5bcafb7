package formula_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/simul8/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cashQuery = "select demand,price,demand*price as sales, cost ,demand*cost as expenses, (demand*price)-(demand*cost) as cash from df"

func TestParse_CashFlowQuery(t *testing.T) {
	q, err := formula.Parse(cashQuery)
	require.NoError(t, err)

	assert.Equal(t, []string{"demand", "price", "sales", "cost", "expenses", "cash"}, q.Outputs())
	assert.Equal(t, []string{"demand", "price", "cost"}, q.Inputs())
	assert.Equal(t, "df", q.From())
	assert.Equal(t, cashQuery, q.Source())
	assert.False(t, q.HasStar())
	assert.Equal(t,
		"SELECT demand, price, demand * price AS sales, cost, demand * cost AS expenses, demand * price - demand * cost AS cash FROM df",
		q.String())
}

func TestParse_StringRoundTrip(t *testing.T) {
	srcs := []string{
		"SELECT a - (b - c) AS x FROM t",
		"SELECT (a + b) * c AS x FROM t",
		"SELECT a / (b * c) AS x FROM t",
		"SELECT -(a + b) AS x FROM t",
		"SELECT a - -2.5 AS x FROM t",
		`SELECT "net cash", "from" AS "select" FROM "my table"`,
		"SELECT *, a * 0.5 AS k FROM t",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			q, err := formula.Parse(src)
			require.NoError(t, err)
			assert.Equal(t, src, q.String())

			again, err := formula.Parse(q.String())
			require.NoError(t, err)
			assert.Equal(t, q.String(), again.String())
		})
	}
}

func TestParse_NamesAndKeywords(t *testing.T) {
	q, err := formula.Parse("SeLeCt a*2, \"b c\", 3 As three FROM df;")
	require.NoError(t, err)
	assert.Equal(t, []string{"a*2", "b c", "three"}, q.Outputs())
	assert.Equal(t, []string{"a", "b c"}, q.Inputs())

	items := q.Items()
	require.Len(t, items, 3)
	assert.False(t, items[0].Alias)
	assert.True(t, items[2].Alias)
	assert.IsType(t, &formula.Binary{}, items[0].Expr)

	q, err = formula.Parse("select a  *   2 from df")
	require.NoError(t, err)
	assert.Equal(t, []string{"a * 2"}, q.Outputs(), "whitespace in derived names is collapsed")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"", 0},
		{"from df", 0},
		{"select from df", 7},
		{"select a", 8},
		{"select a from", 13},
		{"select a from df extra", 17},
		{"select (a + b from df", 14},
		{"select a + from df", 11},
		{"select a # b from df", 9},
		{`select "unterminated from df`, 7},
		{`select "" from df`, 7},
		{"select 1e from df", 7},
		{"select 12abc from df", 7},
		{"select a as from from df", 12},
		{"select a,, b from df", 9},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, err := formula.Parse(tc.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, formula.ErrFormula)

			var fe *formula.Error
			require.True(t, errors.As(err, &fe), "want *formula.Error, got %T", err)
			assert.Equal(t, tc.pos, fe.Pos)
		})
	}
}

func TestParse_DuplicateOutput(t *testing.T) {
	_, err := formula.Parse("select a, b as a from df")
	assert.ErrorIs(t, err, formula.ErrDuplicateOutput)
	assert.ErrorIs(t, err, formula.ErrFormula)
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { formula.MustParse("select a from t") })
	assert.Panics(t, func() { formula.MustParse("select") })
}
