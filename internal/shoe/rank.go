package shoe

import "fmt"

// Rank is a blackjack card value: 1 is an Ace, 10 is any ten-valued card.
type Rank uint8

// Rank constants
const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
)

// Valid reports whether r is in [Ace, Ten].
func (r Rank) Valid() bool {
	return r >= Ace && r <= Ten
}

// String returns "A", "2".."9" or "T".
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r == Ten:
		return "T"
	case r.Valid():
		return string(rune('0' + r))
	default:
		return "?"
	}
}

// ParseRank parses the String form of a rank. "10", "J", "Q" and "K" are
// accepted as Ten.
func ParseRank(s string) (Rank, error) {
	switch s {
	case "A", "a", "1":
		return Ace, nil
	case "T", "t", "10", "J", "j", "Q", "q", "K", "k":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank: %q", s)
}
