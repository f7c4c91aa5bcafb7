package variate

import (
	"fmt"
	"strings"
)

// Family tags a parametric distribution family.
type Family int

const (
	// Normal: mean, std.
	Normal Family = iota + 1
	// LogNormal: mu, sigma of the underlying normal distribution.
	LogNormal
	// Triangular: low, mode, high.
	Triangular
	// Poisson: lambda.
	Poisson
	// Exponential: rate.
	Exponential
	// Binomial: trials, probability of success.
	Binomial
	// Uniform: low, high.
	Uniform
)

var familyNames = map[Family]string{
	Normal:      "normal",
	LogNormal:   "lognormal",
	Triangular:  "triangular",
	Poisson:     "poisson",
	Exponential: "exponential",
	Binomial:    "binomial",
	Uniform:     "uniform",
}

var familyArity = map[Family]int{
	Normal:      2,
	LogNormal:   2,
	Triangular:  3,
	Poisson:     1,
	Exponential: 1,
	Binomial:    2,
	Uniform:     2,
}

// String returns the lower-case family name.
func (f Family) String() string {
	if s, ok := familyNames[f]; ok {
		return s
	}

	return fmt.Sprintf("family(%d)", int(f))
}

// Arity returns the number of shape parameters the family takes, or 0 for
// an unknown family.
func (f Family) Arity() int { return familyArity[f] }

// Valid reports whether f is a supported family.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// ParseFamily maps a name to a Family. Matching is case-insensitive and
// accepts a few common aliases ("log-normal", "triangle", "exp").
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "gaussian":
		return Normal, nil
	case "lognormal", "log-normal", "log_normal":
		return LogNormal, nil
	case "triangular", "triangle":
		return Triangular, nil
	case "poisson":
		return Poisson, nil
	case "exponential", "exp":
		return Exponential, nil
	case "binomial":
		return Binomial, nil
	case "uniform":
		return Uniform, nil
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}
