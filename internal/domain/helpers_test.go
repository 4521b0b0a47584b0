package domain

import "testing"

// sequenceRNG returns values from a pre-set sequence, wrapping around.
type sequenceRNG struct {
	values []int
	idx    int
}

func (r *sequenceRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func mustBoard(t *testing.T, tiles ...Tile) Board {
	t.Helper()
	b, err := NewBoard(tiles...)
	if err != nil {
		t.Fatalf("NewBoard(%v): %v", tiles, err)
	}
	return b
}

// position fills the stock with every tile not already placed, in set order.
func position(t *testing.T, human, computer Hand, board Board, turn Side) Position {
	t.Helper()
	used := make(map[Tile]bool)
	for _, tile := range human {
		used[tile.Canonical()] = true
	}
	for _, tile := range computer {
		used[tile.Canonical()] = true
	}
	for _, tile := range board.Tiles() {
		used[tile.Canonical()] = true
	}
	var stock Stock
	for _, tile := range Universe() {
		if !used[tile] {
			stock = append(stock, tile)
		}
	}
	return Position{Stock: stock, Human: human, Computer: computer, Board: board, Turn: turn}
}

func mustGame(t *testing.T, p Position, opts ...Option) *Game {
	t.Helper()
	g, err := FromPosition(p, opts...)
	if err != nil {
		t.Fatalf("FromPosition: %v", err)
	}
	return g
}

func assertChain(t *testing.T, b Board) {
	t.Helper()
	tiles := b.Tiles()
	for i := 1; i < len(tiles); i++ {
		if tiles[i-1].B != tiles[i].A {
			t.Fatalf("chain broken between %v and %v in %v", tiles[i-1], tiles[i], tiles)
		}
	}
}
