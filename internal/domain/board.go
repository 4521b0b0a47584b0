package domain

import (
	"errors"
	"fmt"
	"strings"
)

// End names one of the two open ends of the chain.
type End uint8

const (
	Left End = iota
	Right
)

// ErrUnknownEnd is returned when an end name cannot be parsed.
var ErrUnknownEnd = errors.New("unknown end")

func (e End) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("End(%d)", uint8(e))
	}
}

// ParseEnd accepts "left"/"right" and the short forms "l"/"r".
func ParseEnd(s string) (End, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnd, s)
}

// Board is the snake: tiles in table order, oriented so that every tile's
// B matches the next tile's A. The open ends are always read from the first
// and last tile; nothing else is stored.
type Board struct {
	tiles []Tile
}

// NewBoard builds a board from an already oriented chain.
func NewBoard(tiles ...Tile) (Board, error) {
	for i := 1; i < len(tiles); i++ {
		if tiles[i-1].B != tiles[i].A {
			return Board{}, fmt.Errorf("tiles %v and %v do not touch", tiles[i-1], tiles[i])
		}
	}
	b := Board{tiles: make([]Tile, len(tiles))}
	copy(b.tiles, tiles)
	return b, nil
}

// Len is the number of placed tiles.
func (b Board) Len() int { return len(b.tiles) }

// Empty reports whether no tile has been placed.
func (b Board) Empty() bool { return len(b.tiles) == 0 }

// Tiles returns a copy of the chain.
func (b Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// OpenValue returns the outward pip at end. ok is false on an empty board.
func (b Board) OpenValue(end End) (pip int, ok bool) {
	if len(b.tiles) == 0 {
		return 0, false
	}
	if end == Left {
		return b.tiles[0].A, true
	}
	return b.tiles[len(b.tiles)-1].B, true
}

// IsLegal reports whether t may be attached at end: anything opens an empty
// board, otherwise one of t's halves must match the open value there.
func (b Board) IsLegal(t Tile, end End) bool {
	pip, ok := b.OpenValue(end)
	if !ok {
		return true
	}
	return t.Has(pip)
}

// Attach places t at end, flipping it when needed so the matching half
// touches the chain, and returns the tile as placed. Attaching an illegal
// tile is a caller bug and panics.
func (b *Board) Attach(t Tile, end End) Tile {
	if !b.IsLegal(t, end) {
		panic(fmt.Sprintf("domain: attach %v at %v end of %v", t, end, b.tiles))
	}
	if len(b.tiles) == 0 {
		b.tiles = []Tile{t}
		return t
	}
	switch end {
	case Left:
		if t.B != b.tiles[0].A {
			t = t.Flip()
		}
		b.tiles = append([]Tile{t}, b.tiles...)
	default:
		if t.A != b.tiles[len(b.tiles)-1].B {
			t = t.Flip()
		}
		b.tiles = append(b.tiles[:len(b.tiles):len(b.tiles)], t)
	}
	return t
}

// Count returns how many placed tiles show pip on either half.
func (b Board) Count(pip int) int {
	n := 0
	for _, t := range b.tiles {
		if t.Has(pip) {
			n++
		}
	}
	return n
}

func (b Board) String() string {
	var sb strings.Builder
	for _, t := range b.tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}
