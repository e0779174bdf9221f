package main

import (
	"os"
	"time"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd runs a batch of episodes. Flags override the config file.
type SimulateCmd struct {
	Config   string         `kong:"default='blackjack.hcl',help='HCL config file (defaults used when missing)'"`
	Debug    bool           `kong:"help='Enable debug logging'"`
	Episodes *int           `kong:"help='Episodes per session'"`
	Sessions *int           `kong:"help='Independent sessions to run concurrently'"`
	Agent    *string        `kong:"help='Agent: counting, random, stand, threshold'"`
	Seed     *int64         `kong:"help='Deterministic RNG seed (optional)'"`
	Thresh   *int           `kong:"name='thresh',help='Counting score threshold for the advantage signal'"`
	Natural  *bool          `kong:"help='Pay 1.5 on a winning natural'"`
	Decks    *int           `kong:"help='Decks in the shoe'"`
	LowWater *int           `kong:"name='low-water',help='Reshuffle when fewer cards remain'"`
	Timeout  *time.Duration `kong:"help='Abort the run after this long'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := randutil.Resolve(cfg.Simulation.Seed)
	if cfg.Simulation.Seed != nil {
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		logger.Info("Using random seed", "seed", seed)
	}

	logger.Info("Starting simulation",
		"agent", cfg.Simulation.Agent,
		"episodes", cfg.Simulation.Episodes,
		"sessions", cfg.Simulation.Sessions,
		"decks", cfg.Shoe.Decks,
		"low_water", cfg.Shoe.LowWater,
		"thresh", cfg.Env.CountingScoreThresh,
		"natural", cfg.Env.Natural,
		"timeout", cfg.Simulation.Timeout)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Episodes: cfg.Simulation.Episodes,
		Sessions: cfg.Simulation.Sessions,
		Agent:    cfg.Simulation.Agent,
		Seed:     seed,
		Env:      cfg.Env,
		Shoe:     cfg.Shoe,
		Timeout:  cfg.Simulation.Timeout,
		Logger:   logger,
	})

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, result, cfg.Simulation.Agent)
	return nil
}

func (c *SimulateCmd) apply(cfg *config.Config) {
	if c.Episodes != nil {
		cfg.Simulation.Episodes = *c.Episodes
	}
	if c.Sessions != nil {
		cfg.Simulation.Sessions = *c.Sessions
	}
	if c.Agent != nil {
		cfg.Simulation.Agent = *c.Agent
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Timeout != nil {
		cfg.Simulation.Timeout = *c.Timeout
	}
	if c.Thresh != nil {
		cfg.Env.CountingScoreThresh = *c.Thresh
	}
	if c.Natural != nil {
		cfg.Env.Natural = *c.Natural
	}
	if c.Decks != nil {
		cfg.Shoe.Decks = *c.Decks
	}
	if c.LowWater != nil {
		cfg.Shoe.LowWater = *c.LowWater
	}
}
