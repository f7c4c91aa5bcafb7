package formula

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/simul8/table"
)

// Item is one entry of the select list.
type Item struct {
	Star  bool   // "*": every input column, in table order
	Expr  Expr   // nil when Star
	Name  string // output column name
	Alias bool   // Name came from AS
}

// Query is a parsed derivation expression.
type Query struct {
	src   string
	from  string
	items []Item
}

// Parse parses src into a Query.
//
// Errors: *Error (matching ErrFormula) for lexical and syntax errors, and
// ErrDuplicateOutput when two explicit items produce the same name.
func Parse(src string) (*Query, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(q.items))
	for _, it := range q.items {
		if it.Star {
			continue
		}
		if seen[it.Name] {
			return nil, fmt.Errorf("Parse: %q: %w", it.Name, ErrDuplicateOutput)
		}
		seen[it.Name] = true
	}

	return q, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// query literals.
func MustParse(src string) *Query {
	q, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return q
}

// Source returns the text the query was parsed from.
func (q *Query) Source() string { return q.src }

// From returns the table name given in the FROM clause.
func (q *Query) From() string { return q.from }

// Items returns a copy of the select list.
func (q *Query) Items() []Item { return append([]Item(nil), q.items...) }

// HasStar reports whether the select list contains "*".
func (q *Query) HasStar() bool {
	for _, it := range q.items {
		if it.Star {
			return true
		}
	}
	return false
}

// Inputs returns the distinct column names the query reads, in order of
// first reference. "*" is not expanded.
func (q *Query) Inputs() []string {
	var out []string
	seen := make(map[string]bool)
	for _, it := range q.items {
		if it.Star {
			continue
		}
		it.Expr.visit(func(e Expr) {
			if ref, ok := e.(*ColumnRef); ok && !seen[ref.Name] {
				seen[ref.Name] = true
				out = append(out, ref.Name)
			}
		})
	}

	return out
}

// Outputs returns the output column names in select order; a "*" item is
// reported as "*".
func (q *Query) Outputs() []string {
	out := make([]string, len(q.items))
	for i, it := range q.items {
		if it.Star {
			out[i] = "*"
			continue
		}
		out[i] = it.Name
	}

	return out
}

// Produces reports whether the query yields a column called name when run
// against a table with the given input columns.
func (q *Query) Produces(name string, columns []string) bool {
	names, err := q.outputNames(columns)
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// String returns the canonical form of the query.
func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, it := range q.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if it.Star {
			sb.WriteByte('*')
			continue
		}
		sb.WriteString(it.Expr.String())
		if it.Alias {
			sb.WriteString(" AS ")
			sb.WriteString(quoteIdent(it.Name))
		}
	}
	sb.WriteString(" FROM ")
	sb.WriteString(quoteIdent(q.from))

	return sb.String()
}

// Validate checks the query against the column names of the tables it will
// be evaluated on, without evaluating anything.
//
// Errors: ErrUnknownColumn, ErrDuplicateOutput.
func (q *Query) Validate(columns []string) error {
	for _, in := range q.Inputs() {
		if _, ok := resolveColumn(columns, in); !ok {
			return fmt.Errorf("Query.Validate: %q: %w", in, ErrUnknownColumn)
		}
	}
	if _, err := q.outputNames(columns); err != nil {
		return fmt.Errorf("Query.Validate: %w", err)
	}

	return nil
}

// Evaluate runs the query against t and returns a new table holding exactly
// the selected columns, in select order. t is not modified.
//
// Errors: ErrUnknownColumn, ErrDuplicateOutput.
//
// Complexity: O(items · nodes · periods).
func (q *Query) Evaluate(t *table.Table) (*table.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("Query.Evaluate: %w", table.ErrNilTable)
	}
	n := t.Len()
	names := make([]string, 0, len(q.items))
	cols := make([][]float64, 0, len(q.items))

	for _, it := range q.items {
		if it.Star {
			for _, name := range t.Columns() {
				c, _ := t.Column(name)
				names = append(names, name)
				cols = append(cols, c)
			}
			continue
		}
		v, err := it.Expr.Eval(t, n)
		if err != nil {
			return nil, fmt.Errorf("Query.Evaluate: %w", err)
		}
		names = append(names, it.Name)
		cols = append(cols, v)
	}

	// NewTable copies, so aliased input columns never leak into the result.
	out, err := table.NewTable(t.Periods(), names, cols)
	if err != nil {
		return nil, fmt.Errorf("Query.Evaluate: %w: %w", ErrDuplicateOutput, err)
	}

	return out, nil
}

func (q *Query) outputNames(columns []string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	add := func(n string) error {
		if seen[n] {
			return fmt.Errorf("%q: %w", n, ErrDuplicateOutput)
		}
		seen[n] = true
		names = append(names, n)
		return nil
	}
	for _, it := range q.items {
		if !it.Star {
			if err := add(it.Name); err != nil {
				return nil, err
			}
			continue
		}
		for _, c := range columns {
			if err := add(c); err != nil {
				return nil, err
			}
		}
	}

	return names, nil
}
