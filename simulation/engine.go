package simulation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/simul8/formula"
	"github.com/katalvlaran/simul8/metrics"
	"github.com/katalvlaran/simul8/table"
	"github.com/katalvlaran/simul8/variate"
)

// Engine is one configured simulation. It is safe for concurrent use, but
// declarations are rejected once Run has started.
type Engine struct {
	mu    sync.Mutex
	state State

	tpl    *table.Template
	sims   int
	target string
	query  *formula.Query
	cfg    config
	reg    *variate.Registry
}

// New validates the run configuration and returns a Configured engine.
//
// Checks:
//   - tpl and query are non-nil, sims > 0, target non-empty;
//   - every column the query reads exists in the template;
//   - the query yields a column named target.
//
// Errors: ErrInvalidConfig, wrapping formula.ErrUnknownColumn or
// metrics.ErrUnknownFeature where those are the cause.
func New(tpl *table.Template, sims int, target string, query *formula.Query, opts ...Option) (*Engine, error) {
	switch {
	case tpl == nil:
		return nil, fmt.Errorf("New: nil template: %w", ErrInvalidConfig)
	case query == nil:
		return nil, fmt.Errorf("New: nil query: %w", ErrInvalidConfig)
	case sims <= 0:
		return nil, fmt.Errorf("New: simulations=%d: %w", sims, ErrInvalidConfig)
	case target == "":
		return nil, fmt.Errorf("New: empty target feature: %w", ErrInvalidConfig)
	}

	vars := tpl.Variables()
	if err := query.Validate(vars); err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrInvalidConfig, err)
	}
	if !query.Produces(target, vars) {
		return nil, fmt.Errorf("New: %q: %w: %w", target, ErrInvalidConfig, metrics.ErrUnknownFeature)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		state:  Configured,
		tpl:    tpl,
		sims:   sims,
		target: target,
		query:  query,
		cfg:    cfg,
	}
	var ropts []variate.RegistryOption
	if cfg.strict {
		ropts = append(ropts, variate.WithStrict())
	}
	ropts = append(ropts, variate.WithOverwriteHook(func(prev, next variate.Variate) {
		e.cfg.logger.Warn("variable redeclared, earlier draws replaced",
			"variable", next.Name, "from", prev.Family.String(), "to", next.Family.String())
	}))
	e.reg = variate.NewRegistry(ropts...)

	return e, nil
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Simulations returns the configured number of iterations.
func (e *Engine) Simulations() int { return e.sims }

// Template returns the engine's template.
func (e *Engine) Template() *table.Template { return e.tpl }

// Registry returns the registry holding the declared variates. Matrices
// obtained from it must not be modified.
func (e *Engine) Registry() *variate.Registry { return e.reg }

// Declare draws one matrix per declaration from family f and registers it.
// A batch is atomic: if any declaration is invalid, nothing is registered.
//
// Errors: ErrInvalidState after Run started; table.ErrUnknownVariable for a
// name missing from the template; variate errors (ErrInvalidParameter,
// ErrDuplicateVariable, ...).
func (e *Engine) Declare(f variate.Family, decls ...variate.Declaration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Configured {
		return fmt.Errorf("Declare(%s): engine is %s: %w", f, e.state, ErrInvalidState)
	}
	for _, d := range decls {
		if !e.tpl.Has(d.Name) {
			return fmt.Errorf("Declare(%s): %q: %w", f, d.Name, table.ErrUnknownVariable)
		}
		if e.cfg.strict {
			if _, exists := e.reg.Get(d.Name); exists {
				return fmt.Errorf("Declare(%s): %q: %w", f, d.Name, variate.ErrDuplicateVariable)
			}
		}
	}

	vs, err := variate.GenerateBatch(f, decls, e.sims, e.tpl.NumPeriods(), e.cfg.seed)
	if err != nil {
		return fmt.Errorf("Declare: %w", err)
	}
	if err = e.reg.RegisterAll(vs); err != nil {
		return fmt.Errorf("Declare: %w", err)
	}
	e.cfg.logger.Debug("variables declared", "family", f.String(), "count", len(vs))

	return nil
}

// declareMap declares vars in sorted name order.
func (e *Engine) declareMap(f variate.Family, vars map[string]variate.Params) error {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	decls := make([]variate.Declaration, len(names))
	for i, n := range names {
		decls[i] = variate.Declaration{Name: n, Params: vars[n]}
	}

	return e.Declare(f, decls...)
}

// Normal declares normally distributed variables: {name: [mean, std]}.
func (e *Engine) Normal(vars map[string]variate.Params) error {
	return e.declareMap(variate.Normal, vars)
}

// LogNormal declares log-normal variables: {name: [mu, sigma]} of the
// underlying normal.
func (e *Engine) LogNormal(vars map[string]variate.Params) error {
	return e.declareMap(variate.LogNormal, vars)
}

// Triangular declares triangular variables: {name: [low, mode, high]}.
func (e *Engine) Triangular(vars map[string]variate.Params) error {
	return e.declareMap(variate.Triangular, vars)
}

// Poisson declares Poisson variables: {name: [lambda]}.
func (e *Engine) Poisson(vars map[string]variate.Params) error {
	return e.declareMap(variate.Poisson, vars)
}

// Exponential declares exponential variables: {name: [rate]}.
func (e *Engine) Exponential(vars map[string]variate.Params) error {
	return e.declareMap(variate.Exponential, vars)
}

// Binomial declares binomial variables: {name: [trials, p]}.
func (e *Engine) Binomial(vars map[string]variate.Params) error {
	return e.declareMap(variate.Binomial, vars)
}

// Uniform declares uniform variables: {name: [low, high]}.
func (e *Engine) Uniform(vars map[string]variate.Params) error {
	return e.declareMap(variate.Uniform, vars)
}

func (e *Engine) metricsParams() metrics.Params {
	return metrics.Params{
		InitialInvestment: e.cfg.investment,
		HasInvestment:     e.cfg.hasInvestment,
		RequiredRate:      e.cfg.rate,
		HasRate:           e.cfg.hasRate,
		ComputeNPVIRR:     e.cfg.npvIRR,
		ReinvestRate:      e.cfg.reinvest,
		HasReinvest:       e.cfg.hasReinvest,
	}
}
