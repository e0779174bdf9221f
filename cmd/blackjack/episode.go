package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/shoe"
)

// EpisodeCmd plays rounds one at a time and prints each transition.
type EpisodeCmd struct {
	Agent   string `kong:"default='counting',help='Agent: counting, random, stand, threshold'"`
	Rounds  int    `kong:"default='1',help='Rounds to play on the same shoe'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Thresh  int    `kong:"name='thresh',default='2',help='Counting score threshold for the advantage signal'"`
	Natural bool   `kong:"help='Pay 1.5 on a winning natural'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *EpisodeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := randutil.Resolve(c.Seed)
	logger.Debug("Dealing", "seed", seed, "agent", c.Agent, "rounds", c.Rounds)

	ag, err := agent.New(c.Agent, randutil.New(randutil.Derive(seed, 1)))
	if err != nil {
		return err
	}
	session := blackjack.NewSession(randutil.New(seed), shoe.DefaultOptions())
	env := blackjack.NewEnv(session, blackjack.Config{CountingScoreThresh: c.Thresh, Natural: c.Natural})

	for round := range c.Rounds {
		if err := playVerbose(os.Stdout, env, ag, round+1); err != nil {
			return err
		}
	}
	return nil
}

func playVerbose(w io.Writer, env *blackjack.Env, ag agent.Agent, round int) error {
	obs, err := env.Reset()
	if err != nil {
		return err
	}
	session := env.Session()
	fmt.Fprintf(w, "Round %d (shoe %d cards, count %+.1f)\n", round, session.Shoe.Len(), session.Count.Score())
	fmt.Fprintf(w, "  dealer shows %s, player %s\n", obs.DealerUpcard, env.Player())

	for {
		action := ag.Decide(obs)
		res, err := env.Step(action)
		if err != nil {
			return err
		}
		obs = res.Observation
		fmt.Fprintf(w, "  %-6s -> player %s, advantage=%t\n", action, env.Player(), obs.Advantage)
		if res.Done {
			fmt.Fprintf(w, "  dealer %s, reward %+.1f\n", env.Dealer(), res.Reward)
			return nil
		}
	}
}
