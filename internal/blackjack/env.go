package blackjack

import (
	"fmt"

	"github.com/lox/blackjack/internal/shoe"
)

// DealerStandsOn is the total at which the dealer stops drawing.
const DealerStandsOn = 17

// NaturalPayout is the reward for a winning natural when Config.Natural is set.
const NaturalPayout = 1.5

// Config is fixed at construction.
type Config struct {
	// CountingScoreThresh is the count at or above which the advantage
	// signal is raised.
	CountingScoreThresh int
	// Natural pays NaturalPayout instead of 1 on a winning natural.
	Natural bool
}

// State is the round's position in its lifecycle.
type State int

const (
	// Resolved means the round is over. A new Env starts here.
	Resolved State = iota
	// AwaitingAction means the player may Stand, Hit or Double.
	AwaitingAction
)

func (s State) String() string {
	if s == AwaitingAction {
		return "awaiting-action"
	}
	return "resolved"
}

// Observation is what the agent sees after each transition.
type Observation struct {
	PlayerTotal  int
	DealerUpcard shoe.Rank
	UsableAce    bool
	Advantage    bool
}

// StepResult is returned by Step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
	Info        map[string]any
}

// Env is the single-player round state machine. It borrows the shoe and
// count from its Session and owns the two hands, which are replaced at the
// start of every round.
type Env struct {
	session *Session
	config  Config

	state  State
	dealer Hand
	player Hand
}

// NewEnv creates an environment over session. Call Reset to deal the first
// round.
func NewEnv(session *Session, config Config) *Env {
	return &Env{
		session: session,
		config:  config,
		state:   Resolved,
	}
}

// Reset starts a new round and returns the initial observation.
//
// The shoe is rebuilt first when low. The previous round's hole card is then
// added back to the count, since it has been seen by the time the next round
// is dealt, before the new hole card is dealt face down.
func (e *Env) Reset() (Observation, error) {
	e.session.replenish()

	if len(e.dealer) > 1 {
		e.session.Count.Expose(e.dealer[1])
	}

	e.state = Resolved
	e.dealer = make(Hand, 0, 4)
	e.player = make(Hand, 0, 4)

	for i := range 2 {
		card, err := e.session.draw()
		if err != nil {
			return Observation{}, fmt.Errorf("deal dealer card %d: %w", i+1, err)
		}
		e.dealer = append(e.dealer, card)
	}
	e.session.Count.Conceal(e.dealer[1])

	for i := range 2 {
		card, err := e.session.draw()
		if err != nil {
			return Observation{}, fmt.Errorf("deal player card %d: %w", i+1, err)
		}
		e.player = append(e.player, card)
	}

	e.state = AwaitingAction
	return e.observe(), nil
}

// Step applies action to the current round.
func (e *Env) Step(action Action) (StepResult, error) {
	if e.state != AwaitingAction {
		return StepResult{}, fmt.Errorf("%w: %s submitted while round is %s", ErrInvalidAction, action, e.state)
	}

	var (
		reward float64
		done   bool
		err    error
	)
	switch action {
	case Hit:
		reward, done, err = e.hit()
	case Double:
		reward, err = e.double()
		done = true
	case Stand:
		reward, err = e.stand()
		done = true
	default:
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
	}

	if err != nil {
		// A failed draw ends the round.
		e.state = Resolved
		return StepResult{}, fmt.Errorf("%s: %w", action, err)
	}
	if done {
		e.state = Resolved
	}

	return StepResult{
		Observation: e.observe(),
		Reward:      reward,
		Done:        done,
		Info:        map[string]any{},
	}, nil
}

func (e *Env) hit() (float64, bool, error) {
	if err := e.drawPlayer(); err != nil {
		return 0, false, err
	}
	if e.player.IsBust() {
		return -1, true, nil
	}
	return 0, false, nil
}

func (e *Env) double() (float64, error) {
	if err := e.drawPlayer(); err != nil {
		return 0, err
	}
	if e.player.IsBust() {
		// The doubled stake is lost too.
		return -2, nil
	}
	reward, err := e.settle()
	if err != nil {
		return 0, err
	}
	return reward * 2, nil
}

func (e *Env) stand() (float64, error) {
	return e.settle()
}

// settle plays out the dealer and compares bust-adjusted scores.
func (e *Env) settle() (float64, error) {
	for e.dealer.Total() < DealerStandsOn {
		card, err := e.session.draw()
		if err != nil {
			return 0, fmt.Errorf("dealer draw: %w", err)
		}
		e.dealer = append(e.dealer, card)
	}

	reward := compare(e.player.Score(), e.dealer.Score())
	if e.config.Natural && reward == 1 && e.player.IsNatural() {
		reward = NaturalPayout
	}
	return reward, nil
}

func (e *Env) drawPlayer() error {
	card, err := e.session.draw()
	if err != nil {
		return fmt.Errorf("player draw: %w", err)
	}
	e.player = append(e.player, card)
	return nil
}

func (e *Env) observe() Observation {
	obs := Observation{
		PlayerTotal: e.player.Total(),
		UsableAce:   e.player.UsableAce(),
		Advantage:   e.session.Count.Advantage(e.config.CountingScoreThresh),
	}
	if len(e.dealer) > 0 {
		obs.DealerUpcard = e.dealer[0]
	}
	return obs
}

// compare returns the sign of a-b.
func compare(a, b int) float64 {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// State returns the round state.
func (e *Env) State() State {
	return e.state
}

// Player returns a copy of the player's hand.
func (e *Env) Player() Hand {
	return e.player.clone()
}

// Dealer returns a copy of the dealer's hand, including the hole card.
func (e *Env) Dealer() Hand {
	return e.dealer.clone()
}

// Session returns the session the environment deals from.
func (e *Env) Session() *Session {
	return e.session
}

// Config returns the construction configuration.
func (e *Env) Config() Config {
	return e.config
}
