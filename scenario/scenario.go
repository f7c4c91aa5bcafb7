package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simul8/formula"
	"github.com/katalvlaran/simul8/simulation"
	"github.com/katalvlaran/simul8/table"
	"github.com/katalvlaran/simul8/variate"
)

var (
	// ErrUnknownFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("scenario: unknown document format")

	// ErrInvalidScenario indicates a document that cannot be decoded or is
	// missing required settings.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
)

// Format is a document encoding.
type Format int

const (
	TOML Format = iota + 1
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return "unknown"
}

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("FormatFromPath(%s): %w", path, ErrUnknownFormat)
}

// Finance holds the optional NPV/IRR settings. Nil pointers mean absent.
type Finance struct {
	InitialInvestment *float64 `toml:"initial_investment" yaml:"initial_investment"`
	RequiredRate      *float64 `toml:"required_rate" yaml:"required_rate"`
	ReinvestRate      *float64 `toml:"reinvest_rate" yaml:"reinvest_rate"`
	NPVIRR            bool     `toml:"npv_irr" yaml:"npv_irr"`
}

// Variable is one template row.
type Variable struct {
	Name   string    `toml:"name" yaml:"name"`
	Values []float64 `toml:"values" yaml:"values"`
}

// Distribution declares one random variable.
type Distribution struct {
	Family string    `toml:"family" yaml:"family"`
	Name   string    `toml:"name" yaml:"name"`
	Params []float64 `toml:"params" yaml:"params"`
}

// Scenario is a decoded document.
type Scenario struct {
	Simulations int      `toml:"simulations" yaml:"simulations"`
	Target      string   `toml:"target" yaml:"target"`
	Query       string   `toml:"query" yaml:"query"`
	Seed        uint64   `toml:"seed" yaml:"seed"`
	Workers     int      `toml:"workers" yaml:"workers"`
	Strict      bool     `toml:"strict" yaml:"strict"`
	Periods     []string `toml:"periods" yaml:"periods"`

	Finance       Finance        `toml:"finance" yaml:"finance"`
	Variables     []Variable     `toml:"variables" yaml:"variables"`
	Distributions []Distribution `toml:"distributions" yaml:"distributions"`
}

// Load reads and parses the document at path.
func Load(path string) (*Scenario, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return s, nil
}

// Parse decodes data in format f and checks the required settings.
//
// Errors: ErrUnknownFormat, ErrInvalidScenario.
func Parse(data []byte, f Format) (*Scenario, error) {
	var s Scenario
	switch f {
	case TOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("Parse(toml): %w: %w", ErrInvalidScenario, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("Parse(yaml): %w: %w", ErrInvalidScenario, err)
		}
	default:
		return nil, fmt.Errorf("Parse(%d): %w", f, ErrUnknownFormat)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the settings that do not need a template to verify.
func (s *Scenario) Validate() error {
	switch {
	case s.Simulations <= 0:
		return fmt.Errorf("simulations must be positive, got %d: %w", s.Simulations, ErrInvalidScenario)
	case s.Target == "":
		return fmt.Errorf("target is required: %w", ErrInvalidScenario)
	case strings.TrimSpace(s.Query) == "":
		return fmt.Errorf("query is required: %w", ErrInvalidScenario)
	case len(s.Variables) == 0:
		return fmt.Errorf("at least one variable is required: %w", ErrInvalidScenario)
	case s.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d: %w", s.Workers, ErrInvalidScenario)
	}
	for i, d := range s.Distributions {
		if _, err := variate.ParseFamily(d.Family); err != nil {
			return fmt.Errorf("distributions[%d]: %w: %w", i, ErrInvalidScenario, err)
		}
	}

	return nil
}

// Template builds the period template from the variables table.
func (s *Scenario) Template() (*table.Template, error) {
	names := make([]string, len(s.Variables))
	values := make([][]float64, len(s.Variables))
	for i, v := range s.Variables {
		names[i] = v.Name
		values[i] = v.Values
	}

	var periods []string
	if len(s.Periods) > 0 {
		periods = s.Periods
	}

	return table.NewTemplate(names, periods, values)
}

// Options translates the document settings into engine options.
func (s *Scenario) Options() []simulation.Option {
	opts := []simulation.Option{simulation.WithSeed(s.Seed)}
	if s.Workers > 0 {
		opts = append(opts, simulation.WithWorkers(s.Workers))
	}
	if s.Strict {
		opts = append(opts, simulation.WithStrictRegistry())
	}
	if s.Finance.InitialInvestment != nil {
		opts = append(opts, simulation.WithInitialInvestment(*s.Finance.InitialInvestment))
	}
	if s.Finance.RequiredRate != nil {
		opts = append(opts, simulation.WithRequiredRate(*s.Finance.RequiredRate))
	}
	if s.Finance.ReinvestRate != nil {
		opts = append(opts, simulation.WithReinvestRate(*s.Finance.ReinvestRate))
	}
	opts = append(opts, simulation.WithNPVIRR(s.Finance.NPVIRR))

	return opts
}

// Engine builds a Configured engine with every distribution declared.
// opts are applied after the document's own settings and win on conflict.
func (s *Scenario) Engine(opts ...simulation.Option) (*simulation.Engine, error) {
	tpl, err := s.Template()
	if err != nil {
		return nil, fmt.Errorf("Engine: %w", err)
	}
	q, err := formula.Parse(s.Query)
	if err != nil {
		return nil, fmt.Errorf("Engine: %w", err)
	}

	e, err := simulation.New(tpl, s.Simulations, s.Target, q, append(s.Options(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("Engine: %w", err)
	}
	for i, d := range s.Distributions {
		f, err := variate.ParseFamily(d.Family)
		if err != nil {
			return nil, fmt.Errorf("Engine: distributions[%d]: %w", i, err)
		}
		if err = e.Declare(f, variate.Declaration{Name: d.Name, Params: d.Params}); err != nil {
			return nil, fmt.Errorf("Engine: distributions[%d]: %w", i, err)
		}
	}

	return e, nil
}
