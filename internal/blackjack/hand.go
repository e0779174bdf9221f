package blackjack

import (
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/shoe"
)

// BustLimit is the highest total that is not a bust.
const BustLimit = 21

// Hand is an ordered, append-only sequence of ranks.
type Hand []shoe.Rank

// Sum returns the raw total with every Ace counted as 1.
func (h Hand) Sum() int {
	total := 0
	for _, r := range h {
		total += int(r)
	}
	return total
}

// UsableAce reports whether an Ace can count as 11 without busting.
func (h Hand) UsableAce() bool {
	for _, r := range h {
		if r == shoe.Ace {
			return h.Sum()+10 <= BustLimit
		}
	}
	return false
}

// Total returns the effective total, counting one Ace as 11 when usable.
func (h Hand) Total() int {
	if h.UsableAce() {
		return h.Sum() + 10
	}
	return h.Sum()
}

// IsBust reports whether the effective total exceeds 21.
func (h Hand) IsBust() bool {
	return h.Total() > BustLimit
}

// Score is the comparison value of the hand: 0 when bust, else Total.
func (h Hand) Score() int {
	if h.IsBust() {
		return 0
	}
	return h.Total()
}

// IsNatural reports whether the hand is exactly an Ace and a ten, in any order.
func (h Hand) IsNatural() bool {
	if len(h) != 2 {
		return false
	}
	return (h[0] == shoe.Ace && h[1] == shoe.Ten) || (h[0] == shoe.Ten && h[1] == shoe.Ace)
}

// String renders the hand as "A T (21)".
func (h Hand) String() string {
	var b strings.Builder
	for i, r := range h {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(h.Total()))
	b.WriteByte(')')
	return b.String()
}

func (h Hand) clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
