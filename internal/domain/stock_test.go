package domain

import "testing"

func TestUniverseHasEveryTileOnce(t *testing.T) {
	u := Universe()
	if len(u) != TileCount {
		t.Fatalf("expected %d tiles, got %d", TileCount, len(u))
	}
	seen := make(map[Tile]bool)
	for _, tile := range u {
		if tile.A > tile.B {
			t.Fatalf("tile %v not in canonical order", tile)
		}
		if tile.A < 0 || tile.B > MaxPip {
			t.Fatalf("tile %v out of range", tile)
		}
		if seen[tile] {
			t.Fatalf("duplicate tile %v", tile)
		}
		seen[tile] = true
	}
	if !seen[DoubleSix] || !seen[Tile{0, 0}] {
		t.Fatalf("expected both doubles at the extremes to be present")
	}
}

func TestStockDraw(t *testing.T) {
	s := Stock{{0, 1}, {2, 3}}
	got, ok := s.Draw()
	if !ok || got != (Tile{2, 3}) {
		t.Fatalf("expected [2, 3] off the end, got %v ok=%v", got, ok)
	}
	s.Draw()
	if _, ok := s.Draw(); ok {
		t.Fatalf("expected empty stock to report !ok")
	}
}

func TestHandRemoveKeepsOrder(t *testing.T) {
	h := Hand{{0, 1}, {1, 2}, {2, 3}}
	alias := h
	got := h.Remove(1)
	if got != (Tile{1, 2}) {
		t.Fatalf("removed %v", got)
	}
	if len(h) != 2 || h[0] != (Tile{0, 1}) || h[1] != (Tile{2, 3}) {
		t.Fatalf("unexpected hand after remove: %v", h)
	}
	if alias[1] != (Tile{1, 2}) {
		t.Fatalf("remove must not write through to other slices, got %v", alias)
	}
	if h.Index(Tile{3, 2}) != 1 {
		t.Fatalf("Index should ignore orientation")
	}
}

func TestDealFromSplitsSet(t *testing.T) {
	d := DealFrom(Universe(), &sequenceRNG{values: []int{3, 1, 4, 1, 5, 9, 2, 6}})
	if len(d.Human) != HandSize || len(d.Computer) != HandSize {
		t.Fatalf("expected %d tiles per hand, got %d and %d", HandSize, len(d.Human), len(d.Computer))
	}
	if len(d.Stock) != TileCount-2*HandSize {
		t.Fatalf("expected %d tiles in stock, got %d", TileCount-2*HandSize, len(d.Stock))
	}
	if err := CheckConservation(d.Stock, d.Human, d.Computer, Board{}); err != nil {
		t.Fatalf("deal lost tiles: %v", err)
	}
}

func TestDealFromLeavesUniverseUntouched(t *testing.T) {
	u := Universe()
	DealFrom(u, &sequenceRNG{values: []int{0}})
	if u[0] != (Tile{0, 0}) || u[TileCount-1] != DoubleSix {
		t.Fatalf("universe was shuffled in place: %v", u)
	}
}

func TestDealUntilDoubleSixOpensBoard(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		o := DealUntilDoubleSix(NewRand(seed))
		tiles := o.Board.Tiles()
		if len(tiles) != 1 || tiles[0] != DoubleSix {
			t.Fatalf("seed %d: expected board [6, 6], got %v", seed, tiles)
		}
		if o.Attempts < 1 {
			t.Fatalf("seed %d: attempts = %d", seed, o.Attempts)
		}
		holder, other := o.Human, o.Computer
		if o.First == Computer {
			holder, other = o.Computer, o.Human
		}
		if len(holder) != HandSize-1 || len(other) != HandSize {
			t.Fatalf("seed %d: first=%v but hands have %d and %d tiles", seed, o.First, len(o.Human), len(o.Computer))
		}
		if o.Human.Index(DoubleSix) >= 0 || o.Computer.Index(DoubleSix) >= 0 {
			t.Fatalf("seed %d: double six still in a hand", seed)
		}
		if err := CheckConservation(o.Stock, o.Human, o.Computer, o.Board); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestDealUntilDoubleSixWithFixedShuffle(t *testing.T) {
	// All-zero swaps leave [6, 6] second from the end, so the human draws it.
	o := DealUntilDoubleSix(&sequenceRNG{values: []int{0}})
	if o.First != Human || o.Attempts != 1 {
		t.Fatalf("expected human to open on the first attempt, got %v after %d", o.First, o.Attempts)
	}
}
