package simulation

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	// DefaultSeed drives every variate stream unless WithSeed is given.
	// Runs are reproducible by default.
	DefaultSeed uint64 = 0

	// DefaultFullData keeps every evaluated table in Results.FullData.
	DefaultFullData = true
)

// DefaultWorkers is the worker count used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Option configures an Engine at construction time.
type Option func(*config)

type config struct {
	seed     uint64
	workers  int
	strict   bool
	fullData bool
	logger   *slog.Logger

	investment    float64
	hasInvestment bool
	rate          float64
	hasRate       bool
	npvIRR        bool
	reinvest      float64
	hasReinvest   bool
}

func defaultConfig() config {
	return config{
		seed:     DefaultSeed,
		workers:  DefaultWorkers(),
		fullData: DefaultFullData,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed sets the base seed from which every variable's stream derives.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWorkers sets the worker pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("simulation: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithStrictRegistry makes a repeated variable declaration fail with
// variate.ErrDuplicateVariable instead of replacing the earlier draws.
func WithStrictRegistry() Option {
	return func(c *config) { c.strict = true }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithFullData controls whether every evaluated table is retained.
func WithFullData(keep bool) Option {
	return func(c *config) { c.fullData = keep }
}

// WithInitialInvestment adds the investment to every outcome sum and
// prepends it to the cash-flow series. Either sign is accepted; the value
// is treated as an outflow.
func WithInitialInvestment(v float64) Option {
	return func(c *config) { c.investment, c.hasInvestment = v, true }
}

// WithRequiredRate sets the discount rate for NPV and the finance rate of
// the modified IRR.
func WithRequiredRate(r float64) Option {
	return func(c *config) { c.rate, c.hasRate = r, true }
}

// WithNPVIRR requests NPV and IRR series. They are produced only when a
// required rate and an initial investment are also configured.
func WithNPVIRR(on bool) Option {
	return func(c *config) { c.npvIRR = on }
}

// WithReinvestRate gives the modified IRR a reinvestment rate distinct
// from the required rate. Without it, one rate serves both legs.
func WithReinvestRate(r float64) Option {
	return func(c *config) { c.reinvest, c.hasReinvest = r, true }
}
