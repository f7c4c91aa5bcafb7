package formula

import (
	"strconv"
	"strings"
)

// Expr is a node of the expression tree. Eval returns one value per row of
// the column set; the returned slice may alias an input column and must not
// be mutated.
type Expr interface {
	Eval(cols Columns, n int) ([]float64, error)
	String() string

	precedence() int
	visit(fn func(Expr))
}

// Columns resolves a column name to its values. *table.Table satisfies it.
type Columns interface {
	Column(name string) ([]float64, bool)
	Columns() []string
}

const (
	precAdd = iota + 1
	precMul
	precUnary
	precAtom
)

// Number is a numeric literal broadcast to every row.
type Number struct {
	Value float64
}

func (e *Number) Eval(_ Columns, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.Value
	}

	return out, nil
}

func (e *Number) String() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }
func (e *Number) precedence() int { return precAtom }
func (e *Number) visit(fn func(Expr)) { fn(e) }

// ColumnRef reads a column of the iteration table.
type ColumnRef struct {
	Name string
}

func (e *ColumnRef) Eval(cols Columns, _ int) ([]float64, error) {
	if c, ok := cols.Column(e.Name); ok {
		return c, nil
	}
	if name, ok := resolveColumn(cols.Columns(), e.Name); ok {
		if c, ok := cols.Column(name); ok {
			return c, nil
		}
	}

	return nil, &columnError{name: e.Name}
}

// resolveColumn finds name among names: an exact match first, otherwise the
// first case-insensitive match in table order.
func resolveColumn(names []string, name string) (string, bool) {
	folded := ""
	for _, n := range names {
		if n == name {
			return n, true
		}
		if folded == "" && strings.EqualFold(n, name) {
			folded = n
		}
	}

	return folded, folded != ""
}

func (e *ColumnRef) String() string { return quoteIdent(e.Name) }
func (e *ColumnRef) precedence() int { return precAtom }
func (e *ColumnRef) visit(fn func(Expr)) { fn(e) }

// Unary is a sign prefix: -x or +x.
type Unary struct {
	Op byte // '-' or '+'
	X  Expr
}

func (e *Unary) Eval(cols Columns, n int) ([]float64, error) {
	x, err := e.X.Eval(cols, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	if e.Op == '-' {
		for i, v := range x {
			out[i] = -v
		}
	} else {
		copy(out, x)
	}

	return out, nil
}

func (e *Unary) String() string {
	return string(e.Op) + wrap(e.X, e.X.precedence() < precUnary)
}

func (e *Unary) precedence() int { return precUnary }

func (e *Unary) visit(fn func(Expr)) {
	fn(e)
	e.X.visit(fn)
}

// Binary is an arithmetic operation on two operands, applied row-wise.
type Binary struct {
	Op   byte // one of + - * /
	L, R Expr
}

func (e *Binary) Eval(cols Columns, n int) ([]float64, error) {
	l, err := e.L.Eval(cols, n)
	if err != nil {
		return nil, err
	}
	r, err := e.R.Eval(cols, n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	switch e.Op {
	case '+':
		for i := range out {
			out[i] = l[i] + r[i]
		}
	case '-':
		for i := range out {
			out[i] = l[i] - r[i]
		}
	case '*':
		for i := range out {
			out[i] = l[i] * r[i]
		}
	case '/':
		for i := range out {
			out[i] = l[i] / r[i]
		}
	}

	return out, nil
}

// String renders the expression with the minimal parentheses that keep its
// tree shape when parsed again.
func (e *Binary) String() string {
	p := e.precedence()
	return wrap(e.L, e.L.precedence() < p) + " " + string(e.Op) + " " + wrap(e.R, e.R.precedence() <= p)
}

func (e *Binary) precedence() int {
	if e.Op == '*' || e.Op == '/' {
		return precMul
	}
	return precAdd
}

func (e *Binary) visit(fn func(Expr)) {
	fn(e)
	e.L.visit(fn)
	e.R.visit(fn)
}

func wrap(e Expr, paren bool) string {
	if paren {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// quoteIdent returns name as written in source: bare when it is a plain
// identifier that is not a keyword, double-quoted otherwise.
func quoteIdent(name string) string {
	if plainIdent(name) && !isReserved(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func plainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}

	return true
}

func isReserved(s string) bool {
	for _, kw := range []string{"select", "from", "as"} {
		if strings.EqualFold(s, kw) {
			return true
		}
	}

	return false
}

// columnError carries the missing name up to Evaluate, which adds context.
type columnError struct {
	name string
}

func (e *columnError) Error() string { return "unknown column " + strconv.Quote(e.name) }

func (e *columnError) Unwrap() error { return ErrUnknownColumn }
