// SPDX-License-Identifier: MIT
// Package: variate
//
// errors.go: sentinel errors for the variate package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed, plus ParamError
//     which unwraps to ErrInvalidParameter.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Generators never panic at runtime; option constructors do on nil input.

package variate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates that a distribution's parameters are out
	// of the family's domain (negative std, p ∉ [0,1], wrong arity, …).
	// Raised at declaration time; never recovered.
	ErrInvalidParameter = errors.New("variate: invalid distribution parameter")

	// ErrUnknownFamily indicates an unsupported distribution family tag.
	ErrUnknownFamily = errors.New("variate: unknown distribution family")

	// ErrDuplicateVariable is returned by a strict Registry when a variable
	// name is registered twice.
	ErrDuplicateVariable = errors.New("variate: duplicate variable")

	// ErrShapeMismatch indicates a matrix whose shape differs from the
	// matrices already held by the registry.
	ErrShapeMismatch = errors.New("variate: matrix shape mismatch")

	// ErrEmptyName indicates an empty variable name.
	ErrEmptyName = errors.New("variate: empty variable name")

	// ErrNilMatrix indicates that a nil matrix was registered.
	ErrNilMatrix = errors.New("variate: nil matrix")
)

// ParamError describes which declaration failed validation and why.
// errors.Is(err, ErrInvalidParameter) holds for every *ParamError.
type ParamError struct {
	Family   Family
	Variable string
	Reason   string
}

func (e *ParamError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("variate: invalid %s parameters: %s", e.Family, e.Reason)
	}

	return fmt.Sprintf("variate: invalid %s parameters for %q: %s", e.Family, e.Variable, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
