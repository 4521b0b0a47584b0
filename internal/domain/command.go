package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCommand is returned for input that is not a move command.
var ErrMalformedCommand = errors.New("malformed command")

// ParseCommand reads the numeric command form: 0 draws from the stock, -k
// plays the k-th tile of the hand on the left end and k plays it on the
// right end. Range checks against the hand happen when the move is played.
func ParseCommand(s string) (MoveCommand, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return MoveCommand{}, fmt.Errorf("%w: %q", ErrMalformedCommand, s)
	}
	switch {
	case n == 0:
		return DrawCommand(), nil
	case n < 0:
		return PlayCommand(-n, Left), nil
	default:
		return PlayCommand(n, Right), nil
	}
}

// String renders the command in the form ParseCommand reads.
func (c MoveCommand) String() string {
	switch {
	case c.Draw:
		return "0"
	case c.End == Left:
		return strconv.Itoa(-c.Index)
	default:
		return strconv.Itoa(c.Index)
	}
}
