package domain

import "github.com/rs/zerolog"

// Outcome is the terminal result of a game.
type Outcome uint8

const (
	Undecided Outcome = iota
	HumanWins
	ComputerWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// DrawThreshold is how many placed tiles must contain the shared end value
// for a matching-ends chain to count as a draw. A double-six set has only
// seven tiles per value, so the rule never fires with a full set.
const DrawThreshold = 8

// EndConditionChecker decides whether a position is finished.
type EndConditionChecker struct {
	threshold int
	logger    zerolog.Logger
}

// NewEndConditionChecker creates a checker that logs under its own component name.
func NewEndConditionChecker(logger zerolog.Logger) *EndConditionChecker {
	return &EndConditionChecker{
		threshold: DrawThreshold,
		logger:    logger.With().Str("component", "EndConditionChecker").Logger(),
	}
}

// Check evaluates, in order: an empty human hand, an empty computer hand,
// then matching open ends whose value is on at least DrawThreshold placed tiles.
func (c *EndConditionChecker) Check(human, computer Hand, board Board) Outcome {
	outcome := Undecided
	switch {
	case len(human) == 0:
		outcome = HumanWins
	case len(computer) == 0:
		outcome = ComputerWins
	case blocked(board, c.threshold):
		outcome = Draw
	}

	if outcome != Undecided {
		c.logger.Info().Stringer("outcome", outcome).Int("board_tiles", board.Len()).Msg("Game over")
	} else {
		c.logger.Debug().
			Int("human_tiles", len(human)).
			Int("computer_tiles", len(computer)).
			Msg("Game continues")
	}
	return outcome
}

func blocked(board Board, threshold int) bool {
	left, ok := board.OpenValue(Left)
	if !ok {
		return false
	}
	right, _ := board.OpenValue(Right)
	return left == right && board.Count(left) >= threshold
}
