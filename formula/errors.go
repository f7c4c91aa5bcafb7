package formula

import (
	"errors"
	"fmt"
)

// ErrFormula is the root of every formula failure: syntax errors, unknown
// columns and duplicate outputs all match it with errors.Is.
var ErrFormula = errors.New("formula: invalid expression")

// ErrUnknownColumn indicates a reference to a column absent from the table.
var ErrUnknownColumn = fmt.Errorf("%w: unknown column", ErrFormula)

// ErrDuplicateOutput indicates two select items producing the same column name.
var ErrDuplicateOutput = fmt.Errorf("%w: duplicate output column", ErrFormula)

// Error is a syntax error with the byte offset where it was detected.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("formula: %s at offset %d", e.Msg, e.Pos)
}

// Unwrap lets errors.Is(err, ErrFormula) match syntax errors.
func (e *Error) Unwrap() error { return ErrFormula }

func syntaxErrorf(pos int, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
