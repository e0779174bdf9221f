package counting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/shoe"
)

func TestWeightTable(t *testing.T) {
	tests := []struct {
		rank shoe.Rank
		want float64
	}{
		{shoe.Ace, -1},
		{shoe.Two, 0.5},
		{shoe.Three, 1},
		{shoe.Four, 1},
		{shoe.Five, 1.5},
		{shoe.Six, 1},
		{shoe.Seven, 0.5},
		{shoe.Eight, 0},
		{shoe.Nine, -0.5},
		{shoe.Ten, -1},
		{shoe.Rank(0), 0},
		{shoe.Rank(11), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Weight(tt.rank), "rank %d", tt.rank)
	}
}

func TestWeightsBalanceOverFullDeck(t *testing.T) {
	// A balanced system sums to zero over a complete suit.
	var sum float64
	for r := shoe.Ace; r <= shoe.Nine; r++ {
		sum += Weight(r)
	}
	sum += 4 * Weight(shoe.Ten)
	assert.Equal(t, 0.0, sum)
}

func TestTrackerExposeConceal(t *testing.T) {
	var tr Tracker
	tr.Expose(shoe.Five)
	tr.Expose(shoe.Two)
	assert.Equal(t, 2.0, tr.Score())
	assert.Equal(t, 2, tr.Exposed())

	tr.Conceal(shoe.Two)
	assert.Equal(t, 1.5, tr.Score())
	assert.Equal(t, 1, tr.Exposed())

	tr.Reset()
	assert.Equal(t, 0.0, tr.Score())
	assert.Equal(t, 0, tr.Exposed())
}

func TestTrackerAdvantage(t *testing.T) {
	var tr Tracker
	assert.True(t, tr.Advantage(0))
	assert.False(t, tr.Advantage(1))

	tr.Expose(shoe.Five)
	assert.True(t, tr.Advantage(1))
	assert.False(t, tr.Advantage(2))

	tr.Expose(shoe.Ten)
	tr.Expose(shoe.Ace)
	assert.Equal(t, -0.5, tr.Score())
	assert.False(t, tr.Advantage(0))
	assert.True(t, tr.Advantage(-1))
}
