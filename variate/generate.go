package variate

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/simul8/matrix"
)

// Variate is one generated draw matrix together with the declaration that
// produced it.
type Variate struct {
	Name   string
	Family Family
	Params Params
	Matrix *matrix.Dense // sims × periods
}

// Generate draws a sims × periods matrix of independent samples of family f
// with parameters p for the variable name.
//
// Implementation:
//   - Stage 1: validate p against the family domain (ErrInvalidParameter).
//   - Stage 2: allocate the matrix (matrix.ErrInvalidDimensions for sims<1 or periods<1).
//   - Stage 3: fill row-major from a single sampler bound to src.
//
// If src is nil, the name's stream under the default seed is used, so
// Generate stays deterministic without an explicit source.
//
// Complexity:
//   - Time O(sims*periods), Space O(sims*periods).
func Generate(f Family, name string, p Params, sims, periods int, src rand.Source) (*matrix.Dense, error) {
	if err := validateDeclaration(f, Declaration{Name: name, Params: p}); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(sims, periods)
	if err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", name, err)
	}
	if src == nil {
		src = NewSource(StreamSeed(0, name))
	}

	draw := newSampler(f, p, src)
	if err = m.Fill(func(int, int) float64 { return draw() }); err != nil {
		return nil, fmt.Errorf("Generate(%s): %w", name, err)
	}

	return m, nil
}

// GenerateBatch draws one matrix per declaration, all under family f.
// Every variable samples from its own stream StreamSeed(seed, name), so the
// result for a given name depends only on (seed, name, params, shape).
//
// The batch is atomic: every declaration is validated before any matrix is
// allocated, and duplicate names inside one batch fail with
// ErrDuplicateVariable.
//
// Complexity:
//   - Time O(len(decls)*sims*periods).
func GenerateBatch(f Family, decls []Declaration, sims, periods int, seed uint64) ([]Variate, error) {
	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		if err := validateDeclaration(f, d); err != nil {
			return nil, err
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("GenerateBatch(%s): %q: %w", f, d.Name, ErrDuplicateVariable)
		}
		seen[d.Name] = struct{}{}
	}

	out := make([]Variate, 0, len(decls))
	for _, d := range decls {
		m, err := Generate(f, d.Name, d.Params, sims, periods, NewSource(StreamSeed(seed, d.Name)))
		if err != nil {
			return nil, err
		}
		params := make(Params, len(d.Params))
		copy(params, d.Params)
		out = append(out, Variate{Name: d.Name, Family: f, Params: params, Matrix: m})
	}

	return out, nil
}

// newSampler binds a distuv distribution to src. p must already be valid.
// Degenerate parameterizations (lambda=0, p∈{0,1}, trials=0) are answered
// with constants rather than handed to the samplers.
func newSampler(f Family, p Params, src rand.Source) func() float64 {
	switch f {
	case Normal:
		d := distuv.Normal{Mu: p[0], Sigma: p[1], Src: src}
		return d.Rand
	case LogNormal:
		d := distuv.LogNormal{Mu: p[0], Sigma: p[1], Src: src}
		return d.Rand
	case Triangular:
		// distuv orders the parameters (low, high, mode).
		d := distuv.NewTriangle(p[0], p[2], p[1], src)
		return d.Rand
	case Poisson:
		if p[0] == 0 {
			return constant(0)
		}
		d := distuv.Poisson{Lambda: p[0], Src: src}
		return d.Rand
	case Exponential:
		d := distuv.Exponential{Rate: p[0], Src: src}
		return d.Rand
	case Binomial:
		switch {
		case p[0] == 0 || p[1] == 0:
			return constant(0)
		case p[1] == 1:
			return constant(p[0])
		}
		d := distuv.Binomial{N: p[0], P: p[1], Src: src}
		return d.Rand
	case Uniform:
		if p[0] == p[1] {
			return constant(p[0])
		}
		d := distuv.Uniform{Min: p[0], Max: p[1], Src: src}
		return d.Rand
	}

	// unreachable for validated input
	return constant(0)
}

func constant(v float64) func() float64 {
	return func() float64 { return v }
}
