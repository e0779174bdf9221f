package blackjack

import (
	rand "math/rand/v2"

	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/counting"
	"github.com/lox/blackjack/internal/shoe"
)

// Session bundles the state that outlives a single round: the shoe and its
// running count. Each concurrently running game needs its own Session; a
// Session must have exactly one consumer at a time.
type Session struct {
	ID    string
	Shoe  *shoe.Shoe
	Count *counting.Tracker

	reshuffles int
}

// NewSession creates a session with a freshly shuffled shoe and a zero count.
func NewSession(rng *rand.Rand, opts shoe.Options) *Session {
	return NewSessionWithShoe(shoe.New(rng, opts))
}

// NewSessionWithShoe wraps an existing shoe, typically one stacked with
// FromCards in tests.
func NewSessionWithShoe(s *shoe.Shoe) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Shoe:  s,
		Count: &counting.Tracker{},
	}
}

// Reshuffles returns how many times the shoe has been rebuilt.
func (s *Session) Reshuffles() int {
	return s.reshuffles
}

// replenish rebuilds a low shoe and resets the count to match.
func (s *Session) replenish() bool {
	if !s.Shoe.ReplenishIfLow() {
		return false
	}
	s.Count.Reset()
	s.reshuffles++
	return true
}

// draw takes the top card and exposes it to the count.
func (s *Session) draw() (shoe.Rank, error) {
	r, err := s.Shoe.Draw()
	if err != nil {
		return 0, err
	}
	s.Count.Expose(r)
	return r, nil
}
