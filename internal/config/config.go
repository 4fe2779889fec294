package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/sim"
)

const (
	DefaultStop      = 10.0
	DefaultStep      = 0.01
	DefaultTolerance = 1e-8
)

// Config is the yaml description of a reaction network plus solver
// settings.
type Config struct {
	Name      string       `yaml:"name"`
	Species   []string     `yaml:"species"`
	Init      []float64    `yaml:"init"`
	Reactions []string     `yaml:"reactions"`
	Rates     []float64    `yaml:"rates"`
	Times     TimeGrid     `yaml:"times"`
	Solver    SolverConfig `yaml:"solver"`
}

// TimeGrid is either an explicit list of points or a start/stop/step
// range. Explicit points win when both are given.
type TimeGrid struct {
	Points []float64 `yaml:"points,omitempty"`
	Start  float64   `yaml:"start"`
	Stop   float64   `yaml:"stop"`
	Step   float64   `yaml:"step"`
}

// Expand materializes the grid as a point list.
func (g TimeGrid) Expand() []float64 {
	if len(g.Points) > 0 {
		out := make([]float64, len(g.Points))
		copy(out, g.Points)
		return out
	}
	step := g.Step
	if step <= 0 {
		step = DefaultStep
	}
	stop := g.Stop
	if stop <= g.Start {
		stop = g.Start + DefaultStop
	}
	var out []float64
	for i := 0; ; i++ {
		t := g.Start + float64(i)*step
		if t > stop+step/2 {
			break
		}
		out = append(out, t)
	}
	return out
}

type SolverConfig struct {
	Method      string  `yaml:"method"`
	Tolerance   float64 `yaml:"tolerance"`
	InitialStep float64 `yaml:"initial_step"`
	MaxStep     float64 `yaml:"max_step"`
}

func Default() *Config {
	return &Config{
		Times:  TimeGrid{Stop: DefaultStop, Step: DefaultStep},
		Solver: SolverConfig{Method: "rk45", Tolerance: DefaultTolerance},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
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

// Network builds the crn.Network this config describes.
func (c *Config) Network() crn.Network {
	return crn.Network{
		Species:   c.Species,
		Init:      c.Init,
		Reactions: c.Reactions,
		Rates:     c.Rates,
		Times:     c.Times.Expand(),
	}
}

// SimOptions translates the solver section to simulation options.
func (c *Config) SimOptions() sim.Options {
	opts := sim.DefaultOptions()
	if c.Solver.Method != "" {
		opts.Stepper = c.Solver.Method
	}
	if c.Solver.Tolerance > 0 {
		opts.Solver.Tolerance = c.Solver.Tolerance
	}
	if c.Solver.InitialStep > 0 {
		opts.Solver.InitialStep = c.Solver.InitialStep
	}
	if c.Solver.MaxStep > 0 {
		opts.Solver.MaxStep = c.Solver.MaxStep
	}
	return opts
}
