package formula

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIllegal
	tokIdent  // demand, "net cash"
	tokNumber // 12, 0.5, 1e-3
	tokStar
	tokPlus
	tokMinus
	tokSlash
	tokLParen
	tokRParen
	tokComma
	tokSemicolon
)

func (tt tokenType) String() string {
	switch tt {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	case tokStar:
		return "'*'"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokSemicolon:
		return "';'"
	default:
		return "illegal token"
	}
}

// token is a lexeme with its byte span [pos, end) in the source.
type token struct {
	typ    tokenType
	val    string
	pos    int
	end    int
	quoted bool // identifier written as "..."; never a keyword
}

func (t token) String() string {
	if t.typ == tokIdent || t.typ == tokNumber || t.typ == tokIllegal {
		return fmt.Sprintf("%s %q", t.typ, t.val)
	}
	return t.typ.String()
}

// isKeyword reports whether t is the unquoted keyword kw.
func (t token) isKeyword(kw string) bool {
	return t.typ == tokIdent && !t.quoted && strings.EqualFold(t.val, kw)
}

var punctuation = map[byte]tokenType{
	'*': tokStar, '+': tokPlus, '-': tokMinus, '/': tokSlash,
	'(': tokLParen, ')': tokRParen, ',': tokComma, ';': tokSemicolon,
}

type lexer struct {
	src string
	pos int
}

// tokenize splits src into tokens, terminated by tokEOF.
func tokenize(src string) ([]token, error) {
	l := &lexer{src: src}
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.typ == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{typ: tokEOF, pos: l.pos, end: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	if tt, ok := punctuation[c]; ok {
		l.pos++
		return token{typ: tt, val: string(c), pos: start, end: l.pos}, nil
	}

	switch {
	case c == '"':
		return l.quotedIdent()
	case isDigit(c) || (c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
		return l.number()
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if isIdentStart(r) {
		return l.ident(), nil
	}
	l.pos += size

	return token{}, syntaxErrorf(start, "unexpected character %q", r)
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

func (l *lexer) ident() token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}

	return token{typ: tokIdent, val: l.src[start:l.pos], pos: start, end: l.pos}
}

// quotedIdent reads "..." where "" inside the quotes is a literal quote.
func (l *lexer) quotedIdent() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '"' {
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '"' {
				sb.WriteByte('"')
				l.pos += 2
				continue
			}
			l.pos++
			if sb.Len() == 0 {
				return token{}, syntaxErrorf(start, "empty quoted identifier")
			}
			return token{typ: tokIdent, val: sb.String(), pos: start, end: l.pos, quoted: true}, nil
		}
		sb.WriteByte(c)
		l.pos++
	}

	return token{}, syntaxErrorf(start, "unterminated quoted identifier")
}

// number reads digits [. digits] [(e|E) [+|-] digits].
func (l *lexer) number() (token, error) {
	start := l.pos
	l.digits()
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		l.digits()
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			return token{}, syntaxErrorf(start, "malformed exponent in number %q", l.src[start:l.pos])
		}
		l.digits()
	}
	if l.pos < len(l.src) {
		if r, _ := utf8.DecodeRuneInString(l.src[l.pos:]); isIdentStart(r) {
			return token{}, syntaxErrorf(start, "malformed number %q", l.src[start:l.pos+1])
		}
	}

	return token{typ: tokNumber, val: l.src[start:l.pos], pos: start, end: l.pos}, nil
}

func (l *lexer) digits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || unicode.IsDigit(r) }
