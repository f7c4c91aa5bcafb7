package variate

import (
	"fmt"
	"math"
)

// Params holds a family's shape parameters in the order documented on the
// Family constants.
type Params []float64

// Declaration binds a variable name to its shape parameters. The family is
// supplied by the call that consumes a batch of declarations.
type Declaration struct {
	Name   string
	Params Params
}

// Validate checks params against the family's domain.
//
// Rules:
//   - arity must match Family.Arity and every value must be finite;
//   - Normal/LogNormal: spread ≥ 0;
//   - Triangular: low ≤ mode ≤ high and low < high;
//   - Poisson: lambda ≥ 0;
//   - Exponential: rate > 0;
//   - Binomial: trials is an integer ≥ 0 and p ∈ [0,1];
//   - Uniform: low ≤ high.
//
// Returns a *ParamError (matching ErrInvalidParameter) or a wrapped
// ErrUnknownFamily.
func Validate(f Family, p Params) error {
	if !f.Valid() {
		return fmt.Errorf("Validate(%s): %w", f, ErrUnknownFamily)
	}
	if len(p) != f.Arity() {
		return &ParamError{Family: f, Reason: fmt.Sprintf("want %d parameters, got %d", f.Arity(), len(p))}
	}
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ParamError{Family: f, Reason: fmt.Sprintf("parameter %d is not finite", i)}
		}
	}

	var reason string
	switch f {
	case Normal:
		if p[1] < 0 {
			reason = fmt.Sprintf("std must be ≥ 0, got %g", p[1])
		}
	case LogNormal:
		if p[1] < 0 {
			reason = fmt.Sprintf("sigma must be ≥ 0, got %g", p[1])
		}
	case Triangular:
		low, mode, high := p[0], p[1], p[2]
		if !(low < high) {
			reason = fmt.Sprintf("low must be < high, got low=%g high=%g", low, high)
		} else if mode < low || mode > high {
			reason = fmt.Sprintf("mode must lie in [low, high], got %g ∉ [%g, %g]", mode, low, high)
		}
	case Poisson:
		if p[0] < 0 {
			reason = fmt.Sprintf("lambda must be ≥ 0, got %g", p[0])
		}
	case Exponential:
		if p[0] <= 0 {
			reason = fmt.Sprintf("rate must be > 0, got %g", p[0])
		}
	case Binomial:
		if p[0] < 0 || p[0] != math.Trunc(p[0]) {
			reason = fmt.Sprintf("trials must be a non-negative integer, got %g", p[0])
		} else if p[1] < 0 || p[1] > 1 {
			reason = fmt.Sprintf("probability must lie in [0,1], got %g", p[1])
		}
	case Uniform:
		if p[0] > p[1] {
			reason = fmt.Sprintf("low must be ≤ high, got low=%g high=%g", p[0], p[1])
		}
	}
	if reason != "" {
		return &ParamError{Family: f, Reason: reason}
	}

	return nil
}

// validateDeclaration validates d under f and attaches the variable name.
func validateDeclaration(f Family, d Declaration) error {
	if d.Name == "" {
		return fmt.Errorf("%s declaration: %w", f, ErrEmptyName)
	}
	err := Validate(f, d.Params)
	if pe, ok := err.(*ParamError); ok {
		pe.Variable = d.Name
	}

	return err
}
