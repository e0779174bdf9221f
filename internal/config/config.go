// Package config loads simulator settings from an HCL file.
//
//	environment {
//	  counting_score_thresh = 2
//	  natural               = true
//	}
//
//	shoe {
//	  decks     = 4
//	  low_water = 15
//	}
//
//	simulation {
//	  episodes = 100000
//	  sessions = 4
//	  agent    = "counting"
//	  seed     = 42
//	  timeout  = "2m"
//	}
//
// Every block and attribute is optional; missing values take defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/shoe"
)

// Defaults for the simulation block
const (
	DefaultEpisodes = 10000
	DefaultSessions = 1
	DefaultAgent    = "threshold"
)

// minLowWater covers the four cards dealt at round start.
const minLowWater = 4

// Config is the resolved configuration
type Config struct {
	Env        blackjack.Config
	Shoe       shoe.Options
	Simulation Simulation
}

// Simulation holds run settings
type Simulation struct {
	Episodes int
	Sessions int
	Agent    string
	Seed     *int64
	Timeout  time.Duration
}

type fileConfig struct {
	Environment *environmentBlock `hcl:"environment,block"`
	Shoe        *shoeBlock        `hcl:"shoe,block"`
	Simulation  *simulationBlock  `hcl:"simulation,block"`
}

type environmentBlock struct {
	CountingScoreThresh *int  `hcl:"counting_score_thresh,optional"`
	Natural             *bool `hcl:"natural,optional"`
}

type shoeBlock struct {
	Decks    *int `hcl:"decks,optional"`
	LowWater *int `hcl:"low_water,optional"`
}

type simulationBlock struct {
	Episodes *int    `hcl:"episodes,optional"`
	Sessions *int    `hcl:"sessions,optional"`
	Agent    *string `hcl:"agent,optional"`
	Seed     *int64  `hcl:"seed,optional"`
	Timeout  *string `hcl:"timeout,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Env:  blackjack.Config{},
		Shoe: shoe.DefaultOptions(),
		Simulation: Simulation{
			Episodes: DefaultEpisodes,
			Sessions: DefaultSessions,
			Agent:    DefaultAgent,
		},
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies it over the defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if err := fc.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if e := fc.Environment; e != nil {
		setIf(&cfg.Env.CountingScoreThresh, e.CountingScoreThresh)
		setIf(&cfg.Env.Natural, e.Natural)
	}
	if s := fc.Shoe; s != nil {
		setIf(&cfg.Shoe.Decks, s.Decks)
		setIf(&cfg.Shoe.LowWater, s.LowWater)
	}
	if s := fc.Simulation; s != nil {
		setIf(&cfg.Simulation.Episodes, s.Episodes)
		setIf(&cfg.Simulation.Sessions, s.Sessions)
		setIf(&cfg.Simulation.Agent, s.Agent)
		cfg.Simulation.Seed = s.Seed
		if s.Timeout != nil {
			d, err := time.ParseDuration(*s.Timeout)
			if err != nil {
				return fmt.Errorf("invalid simulation timeout %q: %w", *s.Timeout, err)
			}
			cfg.Simulation.Timeout = d
		}
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate rejects settings the environment cannot run with
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Shoe.Decks < 1 {
		add("shoe.decks must be at least 1, got %d", c.Shoe.Decks)
	}
	if c.Shoe.LowWater < minLowWater {
		add("shoe.low_water must be at least %d, got %d", minLowWater, c.Shoe.LowWater)
	}
	if c.Shoe.Decks >= 1 && c.Shoe.LowWater > c.Shoe.Decks*52 {
		add("shoe.low_water %d exceeds shoe size %d", c.Shoe.LowWater, c.Shoe.Decks*52)
	}
	if c.Simulation.Episodes < 1 {
		add("simulation.episodes must be positive, got %d", c.Simulation.Episodes)
	}
	if c.Simulation.Sessions < 1 {
		add("simulation.sessions must be positive, got %d", c.Simulation.Sessions)
	}
	if c.Simulation.Timeout < 0 {
		add("simulation.timeout must not be negative, got %v", c.Simulation.Timeout)
	}
	if _, err := agent.New(c.Simulation.Agent, nil); err != nil {
		add("simulation.agent: %v", err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
