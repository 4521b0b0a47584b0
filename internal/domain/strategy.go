package domain

import "sort"

// Move is a tile and the end it goes on.
type Move struct {
	Tile Tile
	End  End
}

// Strategy picks the computer's move. ok is false when no tile in hand fits
// either end.
type Strategy interface {
	ChooseMove(hand Hand, board Board) (m Move, ok bool)
}

// PipCounts tallies how often each pip value shows on the board and in hand.
type PipCounts [MaxPip + 1]int

// CountPips counts pip occurrences across the board and the given hand.
func CountPips(hand Hand, board Board) PipCounts {
	var c PipCounts
	for _, t := range board.tiles {
		c[t.A]++
		c[t.B]++
	}
	for _, t := range hand {
		c[t.A]++
		c[t.B]++
	}
	return c
}

// Rate scores a tile as the sum of the counts of its two pip values.
func Rate(t Tile, counts PipCounts) int {
	return counts[t.A] + counts[t.B]
}

// GreedyStrategy plays the highest rated tile that fits, with no lookahead.
type GreedyStrategy struct{}

// ChooseMove rates the hand against the current board and hand pip counts.
func (GreedyStrategy) ChooseMove(hand Hand, board Board) (Move, bool) {
	return ChooseWithCounts(hand, board, CountPips(hand, board))
}

// ChooseWithCounts scans the hand by descending rating, keeping hand order
// between equal ratings, and returns the first tile that fits. The left end
// is tried before the right.
func ChooseWithCounts(hand Hand, board Board, counts PipCounts) (Move, bool) {
	ordered := make(Hand, len(hand))
	copy(ordered, hand)
	sort.SliceStable(ordered, func(i, j int) bool {
		return Rate(ordered[i], counts) > Rate(ordered[j], counts)
	})
	for _, t := range ordered {
		if board.IsLegal(t, Left) {
			return Move{Tile: t, End: Left}, true
		}
		if board.IsLegal(t, Right) {
			return Move{Tile: t, End: Right}, true
		}
	}
	return Move{}, false
}

// RandomStrategy picks uniformly among every legal tile and end pair.
type RandomStrategy struct {
	RNG RNG
}

func (s RandomStrategy) ChooseMove(hand Hand, board Board) (Move, bool) {
	var legal []Move
	for _, t := range hand {
		for _, end := range []End{Left, Right} {
			if board.IsLegal(t, end) {
				legal = append(legal, Move{Tile: t, End: end})
			}
		}
	}
	if len(legal) == 0 {
		return Move{}, false
	}
	return legal[s.RNG.Intn(len(legal))], true
}
