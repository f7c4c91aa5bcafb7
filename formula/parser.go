package formula

import (
	"strconv"
	"strings"
)

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt tokenType) (token, error) {
	t := p.peek()
	if t.typ != tt {
		return t, syntaxErrorf(t.pos, "expected %s, found %s", tt, t)
	}
	return p.advance(), nil
}

func (p *parser) expectKeyword(kw string) error {
	t := p.peek()
	if !t.isKeyword(kw) {
		return syntaxErrorf(t.pos, "expected %s, found %s", strings.ToUpper(kw), t)
	}
	p.advance()
	return nil
}

// parseQuery: SELECT item {"," item} FROM ident [";"] EOF
func (p *parser) parseQuery() (*Query, error) {
	if err := p.expectKeyword("select"); err != nil {
		return nil, err
	}

	q := &Query{src: p.src}
	for {
		it, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		q.items = append(q.items, it)
		if p.peek().typ != tokComma {
			break
		}
		p.advance()
	}

	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	from, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	q.from = from.val

	if p.peek().typ == tokSemicolon {
		p.advance()
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, syntaxErrorf(t.pos, "unexpected %s after FROM clause", t)
	}

	return q, nil
}

func (p *parser) parseItem() (Item, error) {
	if p.peek().typ == tokStar {
		p.advance()
		return Item{Star: true}, nil
	}

	start := p.peek()
	if start.isKeyword("from") {
		return Item{}, syntaxErrorf(start.pos, "expected expression, found FROM")
	}
	x, err := p.parseExpr()
	if err != nil {
		return Item{}, err
	}
	end := p.toks[p.pos-1].end

	it := Item{Expr: x}
	switch ref := x.(type) {
	case *ColumnRef:
		it.Name = ref.Name
	default:
		it.Name = strings.Join(strings.Fields(p.src[start.pos:end]), " ")
	}

	if p.peek().isKeyword("as") {
		p.advance()
		alias, err := p.expect(tokIdent)
		if err != nil {
			return Item{}, err
		}
		if alias.isKeyword("select") || alias.isKeyword("from") || alias.isKeyword("as") {
			return Item{}, syntaxErrorf(alias.pos, "keyword %s cannot be an alias; quote it", strings.ToUpper(alias.val))
		}
		it.Name = alias.val
		it.Alias = true
	}

	return it, nil
}

// parseExpr: term {("+" | "-") term}
func (p *parser) parseExpr() (Expr, error) {
	x, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.typ == tokPlus || t.typ == tokMinus; t = p.peek() {
		p.advance()
		y, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: t.val[0], L: x, R: y}
	}

	return x, nil
}

// parseTerm: unary {("*" | "/") unary}
func (p *parser) parseTerm() (Expr, error) {
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for t := p.peek(); t.typ == tokStar || t.typ == tokSlash; t = p.peek() {
		p.advance()
		y, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		x = &Binary{Op: t.val[0], L: x, R: y}
	}

	return x, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if t := p.peek(); t.typ == tokMinus || t.typ == tokPlus {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: t.val[0], X: x}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.peek()
	switch t.typ {
	case tokNumber:
		p.advance()
		v, err := strconv.ParseFloat(t.val, 64)
		if err != nil {
			return nil, syntaxErrorf(t.pos, "invalid number %q", t.val)
		}
		return &Number{Value: v}, nil
	case tokIdent:
		if t.isKeyword("select") || t.isKeyword("from") || t.isKeyword("as") {
			return nil, syntaxErrorf(t.pos, "unexpected keyword %s", strings.ToUpper(t.val))
		}
		p.advance()
		return &ColumnRef{Name: t.val}, nil
	case tokLParen:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokRParen); err != nil {
			return nil, err
		}
		return x, nil
	}

	return nil, syntaxErrorf(t.pos, "expected expression, found %s", t)
}
