package blackjack

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned for actions outside Stand/Hit/Double and for
// any action submitted after the round has resolved.
var ErrInvalidAction = errors.New("invalid action")

// Action is a player decision.
type Action int

// Action values match the agent-facing integer encoding.
const (
	Stand  Action = 0
	Hit    Action = 1
	Double Action = 2
)

// Actions lists every valid action in encoding order.
var Actions = []Action{Stand, Hit, Double}

// ParseAction converts the integer encoding into an Action.
func ParseAction(v int) (Action, error) {
	a := Action(v)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAction, v)
	}
	return a, nil
}

// Valid reports whether a is one of the three actions.
func (a Action) Valid() bool {
	return a >= Stand && a <= Double
}

func (a Action) String() string {
	switch a {
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}
