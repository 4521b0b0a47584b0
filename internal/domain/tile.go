package domain

import "fmt"

const (
	// MaxPip is the highest pip value in a double-six set.
	MaxPip = 6
	// TileCount is the number of tiles in a double-six set.
	TileCount = 28
	// HandSize is the number of tiles dealt to each side.
	HandSize = 7
)

// Tile is a single domino. Identity ignores orientation; once a tile is on
// the board, A faces the left end of the chain and B faces the right end.
type Tile struct {
	A int
	B int
}

// DoubleSix opens every game.
var DoubleSix = Tile{A: 6, B: 6}

// Flip returns the tile turned around.
func (t Tile) Flip() Tile {
	return Tile{A: t.B, B: t.A}
}

// Has reports whether either half of the tile shows pip.
func (t Tile) Has(pip int) bool {
	return t.A == pip || t.B == pip
}

// IsDouble reports whether both halves match.
func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Same reports whether t and o are the same physical tile.
func (t Tile) Same(o Tile) bool {
	return t == o || t == o.Flip()
}

// Canonical returns the orientation with the smaller pip first.
func (t Tile) Canonical() Tile {
	if t.A > t.B {
		return t.Flip()
	}
	return t
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d, %d]", t.A, t.B)
}

// Universe returns the 28 tiles of a double-six set, each exactly once,
// as pairs (i, j) with 0 <= i <= j <= 6.
func Universe() []Tile {
	tiles := make([]Tile, 0, TileCount)
	for i := 0; i <= MaxPip; i++ {
		for j := i; j <= MaxPip; j++ {
			tiles = append(tiles, Tile{A: i, B: j})
		}
	}
	return tiles
}
