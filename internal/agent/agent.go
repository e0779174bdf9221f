// Package agent provides reference decision makers that drive the blackjack
// environment from the simulator. They only see the Observation, never the
// shoe or the dealer's hole card.
package agent

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/blackjack/internal/blackjack"
)

// Agent chooses an action from an observation.
type Agent interface {
	Decide(obs blackjack.Observation) blackjack.Action
}

// DefaultHitBelow is the total under which Threshold keeps hitting.
const DefaultHitBelow = 17

// Stand always stands.
type Stand struct{}

func (Stand) Decide(blackjack.Observation) blackjack.Action {
	return blackjack.Stand
}

// Random picks uniformly among the three actions.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random agent drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(blackjack.Observation) blackjack.Action {
	return blackjack.Actions[r.rng.IntN(len(blackjack.Actions))]
}

// Threshold mimics the dealer: hit below HitBelow, then stand.
type Threshold struct {
	HitBelow int
}

func (t Threshold) Decide(obs blackjack.Observation) blackjack.Action {
	limit := t.HitBelow
	if limit == 0 {
		limit = DefaultHitBelow
	}
	if obs.PlayerTotal < limit {
		return blackjack.Hit
	}
	return blackjack.Stand
}

// Counting plays like Threshold but doubles a hard 9-11 when the count
// signals an advantage.
type Counting struct {
	Threshold
}

func (c Counting) Decide(obs blackjack.Observation) blackjack.Action {
	if obs.Advantage && !obs.UsableAce && obs.PlayerTotal >= 9 && obs.PlayerTotal <= 11 {
		return blackjack.Double
	}
	return c.Threshold.Decide(obs)
}

var constructors = map[string]func(rng *rand.Rand) Agent{
	"stand":     func(*rand.Rand) Agent { return Stand{} },
	"random":    func(rng *rand.Rand) Agent { return NewRandom(rng) },
	"threshold": func(*rand.Rand) Agent { return Threshold{} },
	"counting":  func(*rand.Rand) Agent { return Counting{} },
}

// New returns the agent registered under name.
func New(name string, rng *rand.Rand) (Agent, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q (available: %v)", name, Names())
	}
	return ctor(rng), nil
}

// Names lists the registered agent names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
