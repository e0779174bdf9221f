package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
)

func TestStandAgent(t *testing.T) {
	assert.Equal(t, blackjack.Stand, Stand{}.Decide(blackjack.Observation{PlayerTotal: 4}))
}

func TestThresholdAgent(t *testing.T) {
	a := Threshold{}
	assert.Equal(t, blackjack.Hit, a.Decide(blackjack.Observation{PlayerTotal: 16}))
	assert.Equal(t, blackjack.Stand, a.Decide(blackjack.Observation{PlayerTotal: 17}))

	low := Threshold{HitBelow: 12}
	assert.Equal(t, blackjack.Stand, low.Decide(blackjack.Observation{PlayerTotal: 13}))
}

func TestCountingAgent(t *testing.T) {
	a := Counting{}
	tests := []struct {
		name string
		obs  blackjack.Observation
		want blackjack.Action
	}{
		{"double hard 11 with advantage", blackjack.Observation{PlayerTotal: 11, Advantage: true}, blackjack.Double},
		{"double hard 9 with advantage", blackjack.Observation{PlayerTotal: 9, Advantage: true}, blackjack.Double},
		{"hit 11 without advantage", blackjack.Observation{PlayerTotal: 11}, blackjack.Hit},
		{"hit soft total", blackjack.Observation{PlayerTotal: 11, UsableAce: true, Advantage: true}, blackjack.Hit},
		{"hit 12 with advantage", blackjack.Observation{PlayerTotal: 12, Advantage: true}, blackjack.Hit},
		{"stand 18", blackjack.Observation{PlayerTotal: 18, Advantage: true}, blackjack.Stand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Decide(tt.obs))
		})
	}
}

func TestRandomAgentCoversActions(t *testing.T) {
	a := NewRandom(randutil.New(3))
	seen := make(map[blackjack.Action]int)
	for range 300 {
		action := a.Decide(blackjack.Observation{})
		require.True(t, action.Valid())
		seen[action]++
	}
	assert.Len(t, seen, 3)
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		a, err := New(name, randutil.New(1))
		require.NoError(t, err, name)
		assert.NotNil(t, a)
	}

	_, err := New("martingale", randutil.New(1))
	assert.ErrorContains(t, err, "unknown agent")

	assert.Equal(t, []string{"counting", "random", "stand", "threshold"}, Names())
}
