package domain

// SnakeDisplayLimit is the longest chain shown in full; longer chains show
// only their first and last SnakeDisplayEdge tiles.
const (
	SnakeDisplayLimit = 6
	SnakeDisplayEdge  = 3
)

// View is a read-only snapshot of a game for display. It shares no memory
// with the game it came from.
type View struct {
	StockSize      int
	ComputerPieces int
	Board          []Tile
	Hand           []Tile
	Turn           Side
	Phase          Phase
	Outcome        Outcome
	Turns          int
}

// View takes a snapshot of the game.
func (g *Game) View() View {
	hand := make([]Tile, len(g.human))
	copy(hand, g.human)
	return View{
		StockSize:      len(g.stock),
		ComputerPieces: len(g.computer),
		Board:          g.board.Tiles(),
		Hand:           hand,
		Turn:           g.Turn(),
		Phase:          g.phase,
		Outcome:        g.outcome,
		Turns:          g.turns,
	}
}

// Snake returns the chain as it should be displayed. When the chain is
// longer than SnakeDisplayLimit, head and tail hold its ends and truncated
// is true; otherwise head is the whole chain.
func (v View) Snake() (head, tail []Tile, truncated bool) {
	if len(v.Board) <= SnakeDisplayLimit {
		return v.Board, nil, false
	}
	return v.Board[:SnakeDisplayEdge], v.Board[len(v.Board)-SnakeDisplayEdge:], true
}
