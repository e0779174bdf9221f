// Package shoe implements the multi-deck card source dealt from during
// blackjack rounds.
//
// A Shoe holds ranks only; suits do not matter to blackjack scoring or to
// counting, so every ten-valued card collapses to Ten. The shoe is a stack:
// Draw pops the top card and the pool is only refilled by ReplenishIfLow.
package shoe

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a draw is attempted on an empty shoe.
var ErrExhausted = errors.New("shoe exhausted")

const (
	// DefaultDecks is the number of 52-card decks in a fresh shoe.
	DefaultDecks = 4
	// DefaultLowWater is the size below which the shoe is rebuilt at the
	// next round boundary.
	DefaultLowWater = 15

	suitsPerDeck = 4
)

// deckRanks is one suit's worth of ranks: A-9 plus T, J, Q, K as Ten.
var deckRanks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Ten, Ten, Ten}

// Options configures shoe composition and the reshuffle point.
type Options struct {
	Decks    int
	LowWater int
}

// DefaultOptions returns a four-deck shoe reshuffled below 15 cards.
func DefaultOptions() Options {
	return Options{Decks: DefaultDecks, LowWater: DefaultLowWater}
}

func (o Options) withDefaults() Options {
	if o.Decks <= 0 {
		o.Decks = DefaultDecks
	}
	if o.LowWater <= 0 {
		o.LowWater = DefaultLowWater
	}
	return o
}

// Shoe is a shuffled stack of ranks. It is not safe for concurrent use.
type Shoe struct {
	cards []Rank
	opts  Options
	rng   *rand.Rand
}

// New builds a full shoe and shuffles it with rng.
func New(rng *rand.Rand, opts Options) *Shoe {
	s := &Shoe{opts: opts.withDefaults(), rng: rng}
	s.rebuild()
	return s
}

// FromCards builds a shoe holding exactly the given cards, with cards[0] on
// top. Later replenishment uses opts and rng as usual.
func FromCards(rng *rand.Rand, opts Options, cards ...Rank) *Shoe {
	s := &Shoe{opts: opts.withDefaults(), rng: rng}
	s.cards = make([]Rank, len(cards))
	// The stack top is the end of the slice.
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// Draw removes and returns the top card.
func (s *Shoe) Draw() (Rank, error) {
	n := len(s.cards)
	if n == 0 {
		return 0, fmt.Errorf("draw from %d-deck shoe: %w", s.opts.Decks, ErrExhausted)
	}
	card := s.cards[n-1]
	s.cards = s.cards[:n-1]
	return card, nil
}

// ReplenishIfLow rebuilds and reshuffles the shoe when fewer than LowWater
// cards remain. It reports whether a reshuffle happened so the caller can
// reset any running count. Call it only between rounds.
func (s *Shoe) ReplenishIfLow() bool {
	if len(s.cards) >= s.opts.LowWater {
		return false
	}
	s.rebuild()
	return true
}

// Len returns the number of cards left.
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Capacity returns the size of a freshly built shoe.
func (s *Shoe) Capacity() int {
	return s.opts.Decks * suitsPerDeck * len(deckRanks)
}

// Options returns the options the shoe was built with.
func (s *Shoe) Options() Options {
	return s.opts
}

func (s *Shoe) rebuild() {
	if cap(s.cards) < s.Capacity() {
		s.cards = make([]Rank, 0, s.Capacity())
	}
	s.cards = s.cards[:0]
	for range s.opts.Decks * suitsPerDeck {
		s.cards = append(s.cards, deckRanks[:]...)
	}
	s.shuffle()
}

// shuffle is Fisher-Yates over the whole pool.
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		var j int
		if s.rng != nil {
			j = s.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}
