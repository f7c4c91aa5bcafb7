package table

import "errors"

var (
	// ErrEmptyTemplate indicates a template without variables or periods.
	ErrEmptyTemplate = errors.New("table: template must have at least one variable and one period")

	// ErrDuplicateName indicates a repeated variable, period or column name.
	ErrDuplicateName = errors.New("table: duplicate name")

	// ErrEmptyName indicates an empty variable, period or column name.
	ErrEmptyName = errors.New("table: empty name")

	// ErrShapeMismatch indicates ragged rows, label/value count mismatches or
	// a registry whose period count differs from the template.
	ErrShapeMismatch = errors.New("table: shape mismatch")

	// ErrUnknownVariable indicates a registered random variable that does not
	// exist in the template.
	ErrUnknownVariable = errors.New("table: unknown variable")

	// ErrUnknownPeriod indicates a period label not present in the template.
	ErrUnknownPeriod = errors.New("table: unknown period")

	// ErrNilTable indicates a nil template, table or buffer.
	ErrNilTable = errors.New("table: nil table")
)
