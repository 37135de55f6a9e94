package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/scenario"
	"github.com/san-kum/heatsim/internal/thermo"
)

const (
	DefaultNodes       = 39
	DefaultSteps       = 600
	DefaultDuration    = 12000.0
	DefaultDiffusivity = 1e-5
	DefaultAmplitude   = 100.0
)

type Config struct {
	DomainStart float64        `yaml:"domain_start"`
	DomainEnd   float64        `yaml:"domain_end"`
	Nodes       int            `yaml:"nodes"`
	Duration    float64        `yaml:"duration"`
	Steps       int            `yaml:"steps"`
	Diffusivity float64        `yaml:"diffusivity"`
	Profile     ProfileConfig  `yaml:"profile"`
	Left        BoundaryConfig `yaml:"left"`
	Right       BoundaryConfig `yaml:"right"`
}

type ProfileConfig struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params"`
}

type BoundaryConfig struct {
	Kind   string             `yaml:"kind"`
	Drive  string             `yaml:"drive"`
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		DomainStart: 0,
		DomainEnd:   1,
		Nodes:       DefaultNodes,
		Duration:    DefaultDuration,
		Steps:       DefaultSteps,
		Diffusivity: DefaultDiffusivity,
		Profile: ProfileConfig{
			Name:   "half_sine",
			Params: map[string]float64{"amplitude": DefaultAmplitude},
		},
		Left:  BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
		Right: BoundaryConfig{Kind: "dirichlet", Drive: "constant"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (b BoundaryConfig) kind() (thermo.BoundaryKind, error) {
	switch b.Kind {
	case "", "dirichlet":
		return thermo.DirichletKind, nil
	case "neumann":
		return thermo.NeumannKind, nil
	default:
		return 0, fmt.Errorf("%w: unknown boundary kind %q", thermo.ErrBadConfig, b.Kind)
	}
}

func (b BoundaryConfig) drive() string {
	if b.Drive == "" {
		return "constant"
	}
	return b.Drive
}

// Build resolves the document into a runnable core configuration, looking
// up the named profile and drives in the registry. The resulting config is
// validated so a bad document is rejected before assembly.
func (c *Config) Build(reg *scenario.Registry) (thermo.Config, error) {
	grid := thermo.Grid{Start: c.DomainStart, End: c.DomainEnd, Nodes: c.Nodes}

	initial, err := reg.GetProfile(c.Profile.Name, grid, c.Profile.Params)
	if err != nil {
		return thermo.Config{}, err
	}

	leftKind, err := c.Left.kind()
	if err != nil {
		return thermo.Config{}, err
	}
	leftDrive, err := reg.GetDrive(c.Left.drive(), c.Left.Params)
	if err != nil {
		return thermo.Config{}, err
	}

	rightKind, err := c.Right.kind()
	if err != nil {
		return thermo.Config{}, err
	}
	rightDrive, err := reg.GetDrive(c.Right.drive(), c.Right.Params)
	if err != nil {
		return thermo.Config{}, err
	}

	cfg := thermo.Config{
		Grid:        grid,
		Time:        thermo.TimeGrid{Duration: c.Duration, Steps: c.Steps},
		Diffusivity: c.Diffusivity,
		Initial:     initial,
		Left:        thermo.Boundary{Kind: leftKind, Value: leftDrive},
		Right:       thermo.Boundary{Kind: rightKind, Value: rightDrive},
	}
	if err := cfg.Validate(); err != nil {
		return thermo.Config{}, err
	}
	return cfg, nil
}
