// Package counting keeps the running card count for a shoe.
//
// Weights follow the Halves system. The score is the sum of weights of every
// card exposed since the last reset, minus any card deliberately concealed
// again (the dealer's face-down hole card).
package counting

import "github.com/lox/blackjack/internal/shoe"

// weights is indexed by rank; index 0 is unused.
var weights = [...]float64{
	shoe.Ace:   -1,
	shoe.Two:   0.5,
	shoe.Three: 1,
	shoe.Four:  1,
	shoe.Five:  1.5,
	shoe.Six:   1,
	shoe.Seven: 0.5,
	shoe.Eight: 0,
	shoe.Nine:  -0.5,
	shoe.Ten:   -1,
}

// Weight returns the counting weight of r. Invalid ranks weigh 0.
func Weight(r shoe.Rank) float64 {
	if !r.Valid() {
		return 0
	}
	return weights[r]
}

// Tracker accumulates the exposed score. The zero value is ready to use.
type Tracker struct {
	score   float64
	exposed int
}

// Expose records a card becoming visible.
func (t *Tracker) Expose(r shoe.Rank) {
	t.score += Weight(r)
	t.exposed++
}

// Conceal retracts a previously exposed card that has been turned face down.
func (t *Tracker) Conceal(r shoe.Rank) {
	t.score -= Weight(r)
	t.exposed--
}

// Reset zeroes the count; called when the shoe is reshuffled.
func (t *Tracker) Reset() {
	t.score = 0
	t.exposed = 0
}

// Score returns the current running count.
func (t *Tracker) Score() float64 {
	return t.score
}

// Exposed returns the number of cards currently counted as visible.
func (t *Tracker) Exposed() int {
	return t.exposed
}

// Advantage reports whether the count has reached threshold.
func (t *Tracker) Advantage(threshold int) bool {
	return t.score >= float64(threshold)
}
