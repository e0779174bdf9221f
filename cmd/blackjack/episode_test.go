package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/shoe"
)

func TestPlayVerbose(t *testing.T) {
	s := shoe.FromCards(randutil.New(1), shoe.DefaultOptions(),
		shoe.Ten, shoe.Seven,
		shoe.Ten, shoe.Nine,
		shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight,
		shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight,
		shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight, shoe.Eight)
	env := blackjack.NewEnv(blackjack.NewSessionWithShoe(s), blackjack.Config{})

	var buf bytes.Buffer
	require.NoError(t, playVerbose(&buf, env, agent.Threshold{}, 1))

	out := buf.String()
	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "dealer shows T, player T 9 (19)")
	assert.Contains(t, out, "stand")
	assert.Contains(t, out, "reward +1.0")
}

func TestSimulateFlagsOverrideConfig(t *testing.T) {
	episodes, agentName, natural, lowWater := 50, "stand", true, 30
	seed := int64(7)
	cmd := SimulateCmd{
		Episodes: &episodes,
		Agent:    &agentName,
		Natural:  &natural,
		LowWater: &lowWater,
		Seed:     &seed,
	}

	cfg := config.Default()
	cmd.apply(cfg)

	assert.Equal(t, 50, cfg.Simulation.Episodes)
	assert.Equal(t, "stand", cfg.Simulation.Agent)
	assert.True(t, cfg.Env.Natural)
	assert.Equal(t, 30, cfg.Shoe.LowWater)
	assert.Equal(t, shoe.DefaultDecks, cfg.Shoe.Decks, "unset flags keep config values")
	require.NotNil(t, cfg.Simulation.Seed)
	assert.Equal(t, int64(7), *cfg.Simulation.Seed)
	assert.NoError(t, cfg.Validate())
}
