package domain

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Side identifies who is playing.
type Side uint8

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Computer {
		return "computer"
	}
	return "human"
}

// Phase is the turn controller state.
type Phase uint8

const (
	AwaitingHuman Phase = iota
	AwaitingComputer
	Over
)

func (p Phase) String() string {
	switch p {
	case AwaitingHuman:
		return "awaiting_human_move"
	case AwaitingComputer:
		return "awaiting_computer_move"
	default:
		return "game_over"
	}
}

// Errors returned by domain operations.
var (
	ErrGameOver        = errors.New("game over")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrTileIndex       = errors.New("tile index out of range")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPosition = errors.New("invalid position")
)

// MoveCommand is a human request: draw from the stock, or play the Index-th
// tile (1-based) of the hand at End.
type MoveCommand struct {
	Draw  bool
	Index int
	End   End
}

// DrawCommand asks for a tile from the stock.
func DrawCommand() MoveCommand { return MoveCommand{Draw: true} }

// PlayCommand plays the index-th tile (1-based) at end.
func PlayCommand(index int, end End) MoveCommand {
	return MoveCommand{Index: index, End: end}
}

// ComputerTurn reports what the computer did on its turn.
type ComputerTurn struct {
	Played bool
	Move   Move
	Drew   bool
}

// Game holds the state of one match and drives its turns.
type Game struct {
	stock    Stock
	human    Hand
	computer Hand
	board    Board
	phase    Phase
	outcome  Outcome
	turns    int

	strategy Strategy
	checker  *EndConditionChecker
	logger   zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithStrategy replaces the default greedy opponent.
func WithStrategy(s Strategy) Option {
	return func(g *Game) {
		if s != nil {
			g.strategy = s
		}
	}
}

// WithLogger sets the logger used by the game and its end checker.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New deals until someone holds the double six and returns the opened game.
func New(rng RNG, opts ...Option) *Game {
	o := DealUntilDoubleSix(rng)
	g := build(o.Deal, o.Board, o.First, opts)
	g.logger.Debug().Int("attempts", o.Attempts).Stringer("first", o.First).Msg("Dealt")
	return g
}

// Position is an explicit arrangement of all 28 tiles.
type Position struct {
	Stock    Stock
	Human    Hand
	Computer Hand
	Board    Board
	Turn     Side
}

// FromPosition starts a game from p after checking that every tile of the
// set is present exactly once.
func FromPosition(p Position, opts ...Option) (*Game, error) {
	if err := CheckConservation(p.Stock, p.Human, p.Computer, p.Board); err != nil {
		return nil, err
	}
	d := Deal{
		Stock:    append(Stock(nil), p.Stock...),
		Human:    append(Hand(nil), p.Human...),
		Computer: append(Hand(nil), p.Computer...),
	}
	return build(d, p.Board, p.Turn, opts), nil
}

func build(d Deal, board Board, first Side, opts []Option) *Game {
	g := &Game{
		stock:    d.Stock,
		human:    d.Human,
		computer: d.Computer,
		board:    board,
		strategy: GreedyStrategy{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With().Str("component", "Game").Logger()
	g.checker = NewEndConditionChecker(g.logger)
	if first == Computer {
		g.phase = AwaitingComputer
	}
	return g
}

// Turn returns the side to move. It is meaningless once the game is over.
func (g *Game) Turn() Side {
	if g.phase == AwaitingComputer {
		return Computer
	}
	return Human
}

// IsOver reports whether the game has reached an outcome.
func (g *Game) IsOver() bool { return g.phase == Over }

// Phase returns the turn controller state.
func (g *Game) Phase() Phase { return g.phase }

// Outcome is Undecided until the game is over.
func (g *Game) Outcome() Outcome { return g.outcome }

// Turns counts completed turns, draws and passes included.
func (g *Game) Turns() int { return g.turns }

// PlayHuman applies a human command. A rejected command leaves the game
// untouched and the human must try again. Drawing from an empty stock is
// allowed and just passes the turn.
func (g *Game) PlayHuman(cmd MoveCommand) error {
	if g.phase == Over {
		return ErrGameOver
	}
	if g.phase != AwaitingHuman {
		return ErrNotYourTurn
	}

	if cmd.Draw {
		t, ok := g.stock.Draw()
		if ok {
			g.human = append(g.human, t)
		}
		g.logger.Debug().Bool("drew", ok).Msg("Human draws")
		g.finishTurn(AwaitingComputer)
		return nil
	}

	i := cmd.Index - 1
	if i < 0 || i >= len(g.human) {
		return fmt.Errorf("%w: %d of %d", ErrTileIndex, cmd.Index, len(g.human))
	}
	t := g.human[i]
	if !g.board.IsLegal(t, cmd.End) {
		return fmt.Errorf("%w: %v at %v end", ErrIllegalMove, t, cmd.End)
	}
	placed := g.board.Attach(t, cmd.End)
	g.human.Remove(i)
	g.logger.Debug().Stringer("tile", placed).Stringer("end", cmd.End).Msg("Human plays")
	g.finishTurn(AwaitingComputer)
	return nil
}

// PlayComputer lets the strategy move. With nothing playable the computer
// draws one tile, if any are left, and the turn ends either way.
func (g *Game) PlayComputer() (ComputerTurn, error) {
	if g.phase == Over {
		return ComputerTurn{}, ErrGameOver
	}
	if g.phase != AwaitingComputer {
		return ComputerTurn{}, ErrNotYourTurn
	}

	var turn ComputerTurn
	if m, ok := g.strategy.ChooseMove(g.computer, g.board); ok {
		i := g.computer.Index(m.Tile)
		if i < 0 || !g.board.IsLegal(m.Tile, m.End) {
			panic(fmt.Sprintf("domain: strategy chose %v at %v end, not playable", m.Tile, m.End))
		}
		g.board.Attach(m.Tile, m.End)
		g.computer.Remove(i)
		turn = ComputerTurn{Played: true, Move: m}
		g.logger.Debug().Stringer("tile", m.Tile).Stringer("end", m.End).Msg("Computer plays")
	} else if t, ok := g.stock.Draw(); ok {
		g.computer = append(g.computer, t)
		turn.Drew = true
		g.logger.Debug().Msg("Computer draws")
	}
	g.finishTurn(AwaitingHuman)
	return turn, nil
}

func (g *Game) finishTurn(next Phase) {
	g.turns++
	if outcome := g.checker.Check(g.human, g.computer, g.board); outcome != Undecided {
		g.outcome = outcome
		g.phase = Over
		return
	}
	g.phase = next
}

// CheckConservation verifies that stock, hands and board together hold the
// full set with no tile missing or repeated.
func CheckConservation(stock Stock, human, computer Hand, board Board) error {
	seen := make(map[Tile]bool, TileCount)
	n := 0
	add := func(where string, tiles []Tile) error {
		for _, t := range tiles {
			if t.A < 0 || t.B < 0 || t.A > MaxPip || t.B > MaxPip {
				return fmt.Errorf("%w: %v in %s is not in the set", ErrInvalidPosition, t, where)
			}
			c := t.Canonical()
			if seen[c] {
				return fmt.Errorf("%w: %v appears twice (%s)", ErrInvalidPosition, t, where)
			}
			seen[c] = true
			n++
		}
		return nil
	}
	if err := add("stock", stock); err != nil {
		return err
	}
	if err := add("human hand", human); err != nil {
		return err
	}
	if err := add("computer hand", computer); err != nil {
		return err
	}
	if err := add("board", board.tiles); err != nil {
		return err
	}
	if n != TileCount {
		return fmt.Errorf("%w: %d tiles, want %d", ErrInvalidPosition, n, TileCount)
	}
	return nil
}
