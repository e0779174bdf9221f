package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/agent"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/shoe"
	"github.com/lox/blackjack/internal/statistics"
)

// ErrTimeout is returned when a run exceeds Config.Timeout.
var ErrTimeout = errors.New("simulation timed out")

// Config holds configuration for running simulations
type Config struct {
	Episodes int // Episodes per session
	Sessions int // Independent sessions, each with its own shoe and count
	Agent    string
	Seed     int64
	Env      blackjack.Config
	Shoe     shoe.Options
	Timeout  time.Duration // Zero disables the timeout
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Result is the outcome of a run.
type Result struct {
	Stats      *statistics.Statistics
	Elapsed    time.Duration
	Reshuffles int
}

// Simulator plays episodes of blackjack with a reference agent
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

type sessionResult struct {
	stats      *statistics.Statistics
	reshuffles int
}

// Run plays every session to completion, or until ctx is done or the
// timeout fires.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Episodes <= 0 {
		return nil, fmt.Errorf("episodes must be positive, got %d", s.config.Episodes)
	}
	if _, err := agent.New(s.config.Agent, nil); err != nil {
		return nil, err
	}

	start := s.clock.Now()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if s.config.Timeout > 0 {
		timer := s.clock.AfterFunc(s.config.Timeout, func() {
			cancel(ErrTimeout)
		}, "simulator", "timeout")
		defer timer.Stop()
	}

	s.logger.Debug("Starting run",
		"sessions", s.config.Sessions,
		"episodes", s.config.Episodes,
		"agent", s.config.Agent,
		"seed", s.config.Seed)

	results := make([]sessionResult, s.config.Sessions)
	g, gctx := errgroup.WithContext(ctx)
	for i := range s.config.Sessions {
		g.Go(func() error {
			r, err := s.playSession(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, ErrTimeout) {
			return nil, fmt.Errorf("after %v: %w", s.config.Timeout, ErrTimeout)
		}
		return nil, err
	}

	// Merge in session order so the value series is reproducible.
	stats := &statistics.Statistics{}
	reshuffles := 0
	for _, r := range results {
		stats.Merge(r.stats)
		reshuffles += r.reshuffles
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Now().Sub(start)
	s.logger.Debug("Run complete", "episodes", stats.Episodes, "elapsed", elapsed, "reshuffles", reshuffles)

	return &Result{Stats: stats, Elapsed: elapsed, Reshuffles: reshuffles}, nil
}

// playSession runs the configured number of episodes on one fresh session.
func (s *Simulator) playSession(ctx context.Context, index int) (sessionResult, error) {
	seed := randutil.Derive(s.config.Seed, index)
	session := blackjack.NewSession(randutil.New(seed), s.config.Shoe)
	ag, err := agent.New(s.config.Agent, randutil.New(randutil.Derive(seed, 1)))
	if err != nil {
		return sessionResult{}, err
	}
	env := blackjack.NewEnv(session, s.config.Env)
	logger := s.logger.With("session", index, "id", session.ID)

	stats := &statistics.Statistics{}
	for episode := range s.config.Episodes {
		if err := ctx.Err(); err != nil {
			return sessionResult{}, err
		}

		result, err := PlayEpisode(env, ag)
		if err != nil {
			return sessionResult{}, fmt.Errorf("session %d episode %d: %w", index, episode, err)
		}
		result.Session = index
		stats.Add(result)

		if logger.GetLevel() <= log.DebugLevel {
			logger.Debug("Episode",
				"episode", episode,
				"player", env.Player().String(),
				"dealer", env.Dealer().String(),
				"reward", result.Reward,
				"count", session.Count.Score(),
				"remaining", session.Shoe.Len())
		}
	}

	return sessionResult{stats: stats, reshuffles: session.Reshuffles()}, nil
}

// PlayEpisode deals one round on env and lets ag act until it resolves.
func PlayEpisode(env *blackjack.Env, ag agent.Agent) (statistics.EpisodeResult, error) {
	obs, err := env.Reset()
	if err != nil {
		return statistics.EpisodeResult{}, err
	}

	result := statistics.EpisodeResult{
		Natural:   env.Player().IsNatural(),
		Advantage: obs.Advantage,
	}
	for {
		action := ag.Decide(obs)
		res, err := env.Step(action)
		if err != nil {
			return statistics.EpisodeResult{}, err
		}
		result.Steps++
		if action == blackjack.Double {
			result.Doubled = true
		}
		obs = res.Observation
		if res.Done {
			result.Reward = res.Reward
			result.Bust = env.Player().IsBust()
			return result, nil
		}
	}
}
