package config

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"gatetrainer/internal/dataset"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Gate       string  `yaml:"gate"`
	Debug      bool    `yaml:"debug"`
	Rate       float64 `yaml:"rate"`
	Iterations uint64  `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
	LogEvery   int     `yaml:"log_every"`
}

// Overrides captures CLI supplied values. Nil fields leave the config as is.
type Overrides struct {
	Gate       *string
	Debug      *bool
	Rate       *float64
	Iterations *uint64
	Seed       *int64
	LogEvery   *int
}

// Default returns the config used when no file is given.
func Default() *Config {
	return &Config{
		Gate:       string(rune(dataset.And)),
		Rate:       1.0,
		Iterations: 100000,
	}
}

// Load reads and validates a Config from YAML. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg with every non-nil override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Gate != nil {
		c.Gate = *o.Gate
	}
	if o.Debug != nil {
		c.Debug = *o.Debug
	}
	if o.Rate != nil {
		c.Rate = *o.Rate
	}
	if o.Iterations != nil {
		c.Iterations = *o.Iterations
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.LogEvery != nil {
		c.LogEvery = *o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := dataset.ParseGate(c.Gate); err != nil {
		return errors.Wrap(err, "gate")
	}
	if math.IsNaN(c.Rate) || math.IsInf(c.Rate, 0) || c.Rate < 0 {
		return errors.Errorf("rate must be a finite value >= 0 (got %v)", c.Rate)
	}
	if c.LogEvery < 0 {
		return errors.Errorf("log_every must be >= 0 (got %d)", c.LogEvery)
	}
	return nil
}

// GateValue returns the parsed gate. It is only meaningful after Validate.
func (c *Config) GateValue() dataset.Gate {
	g, _ := dataset.ParseGate(c.Gate)
	return g
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return cfg, nil
}
