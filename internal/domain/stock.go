package domain

// Stock is the pool of undealt tiles. Draws come off the end.
type Stock []Tile

// Draw removes and returns the last tile. ok is false when the stock is empty.
func (s *Stock) Draw() (t Tile, ok bool) {
	n := len(*s)
	if n == 0 {
		return Tile{}, false
	}
	t = (*s)[n-1]
	*s = (*s)[:n-1]
	return t, true
}

// Hand holds one side's tiles. For the human side the order is what move
// commands index into.
type Hand []Tile

// Index returns the position of t in the hand regardless of orientation, or -1.
func (h Hand) Index(t Tile) int {
	for i, held := range h {
		if held.Same(t) {
			return i
		}
	}
	return -1
}

// Remove takes the tile at position i out of the hand, keeping the order of the rest.
func (h *Hand) Remove(i int) Tile {
	t := (*h)[i]
	*h = append((*h)[:i:i], (*h)[i+1:]...)
	return t
}

// Deal is the outcome of one shuffle-and-deal cycle.
type Deal struct {
	Stock    Stock
	Human    Hand
	Computer Hand
}

// DealFrom shuffles a copy of universe and deals HandSize tiles to the
// human, then HandSize to the computer. The rest becomes the stock.
func DealFrom(universe []Tile, rng RNG) Deal {
	pool := make(Stock, len(universe))
	copy(pool, universe)
	Shuffle(pool, rng)

	d := Deal{
		Human:    make(Hand, 0, HandSize),
		Computer: make(Hand, 0, HandSize),
	}
	for range HandSize {
		t, _ := pool.Draw()
		d.Human = append(d.Human, t)
	}
	for range HandSize {
		t, _ := pool.Draw()
		d.Computer = append(d.Computer, t)
	}
	d.Stock = pool
	return d
}

// Opening is a deal with the double six already on the board.
type Opening struct {
	Deal
	Board    Board
	First    Side
	Attempts int
}

// DealUntilDoubleSix reshuffles and redeals the full set until one of the
// hands holds the double six. That tile is moved onto the board and its
// holder moves first. Every attempt has the same non-zero chance, so there
// is no attempt cap.
func DealUntilDoubleSix(rng RNG) Opening {
	for attempt := 1; ; attempt++ {
		d := DealFrom(Universe(), rng)

		var first Side
		if i := d.Human.Index(DoubleSix); i >= 0 {
			d.Human.Remove(i)
			first = Human
		} else if i := d.Computer.Index(DoubleSix); i >= 0 {
			d.Computer.Remove(i)
			first = Computer
		} else {
			continue
		}

		var board Board
		board.Attach(DoubleSix, Left)
		return Opening{Deal: d, Board: board, First: first, Attempts: attempt}
	}
}
