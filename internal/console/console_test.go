package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

// newGame builds a game with the given hands around a lone double six.
func newGame(t *testing.T, human, computer domain.Hand, turn domain.Side) *domain.Game {
	t.Helper()
	board, err := domain.NewBoard(domain.DoubleSix)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	used := map[domain.Tile]bool{domain.DoubleSix: true}
	for _, tile := range append(append(domain.Hand{}, human...), computer...) {
		used[tile.Canonical()] = true
	}
	var stock domain.Stock
	for _, tile := range domain.Universe() {
		if !used[tile] {
			stock = append(stock, tile)
		}
	}
	g, err := domain.FromPosition(domain.Position{Stock: stock, Human: human, Computer: computer, Board: board, Turn: turn})
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	return g
}

func TestRender(t *testing.T) {
	v := domain.View{
		StockSize:      14,
		ComputerPieces: 6,
		Board:          []domain.Tile{{3, 6}, {6, 6}},
		Hand:           []domain.Tile{{0, 1}, {2, 5}},
		Phase:          domain.AwaitingHuman,
	}
	var buf bytes.Buffer
	Render(&buf, i18n.Printer("en"), v)
	out := buf.String()
	for _, want := range []string{
		separator,
		"Stock size: 14",
		"Computer pieces: 6",
		"[3, 6][6, 6]",
		"Your pieces:\n1:[0, 1]\n2:[2, 5]\n",
		i18n.YourTurn,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	v := domain.View{
		StockSize:      14,
		ComputerPieces: 6,
		Board:          []domain.Tile{{6, 6}},
		Hand:           []domain.Tile{{0, 1}},
		Phase:          domain.AwaitingHuman,
	}
	var buf bytes.Buffer
	Render(&buf, i18n.Printer("en"), v)
	want := separator + "\n" +
		"Stock size: 14\n" +
		"Computer pieces: 6\n" +
		"[6, 6]\n" +
		"Your pieces:\n" +
		"1:[0, 1]\n" +
		"Status: It is your turn to make a move. Enter your command.\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnakeElidesLongChains(t *testing.T) {
	v := domain.View{Board: []domain.Tile{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 6}}}
	if got := Snake(v); got != "[0, 1][1, 2][2, 3]...[4, 5][5, 6][6, 6]" {
		t.Fatalf("unexpected snake %q", got)
	}
}

func TestSessionRejectsBadCommands(t *testing.T) {
	g := newGame(t, domain.Hand{{0, 1}}, domain.Hand{{2, 2}}, domain.Human)
	var out bytes.Buffer
	s := NewSession(g, strings.NewReader("abc\n7\n1\n"), &out, i18n.Printer("en"), zerolog.Nop())

	outcome, err := s.Run(context.Background())
	if !errors.Is(err, ErrAbandoned) || outcome != domain.Undecided {
		t.Fatalf("expected abandoned game, got %v, %v", outcome, err)
	}
	text := out.String()
	if n := strings.Count(text, i18n.InvalidInput); n != 2 {
		t.Fatalf("expected 2 invalid input notices, got %d:\n%s", n, text)
	}
	if n := strings.Count(text, i18n.IllegalMove); n != 1 {
		t.Fatalf("expected 1 illegal move notice, got %d:\n%s", n, text)
	}
	if g.Turns() != 0 {
		t.Fatalf("rejected commands must not end the turn")
	}
}

func TestSessionHumanWins(t *testing.T) {
	g := newGame(t, domain.Hand{{5, 6}}, domain.Hand{{0, 0}}, domain.Human)
	var out bytes.Buffer
	s := NewSession(g, strings.NewReader("1\n"), &out, i18n.Printer("en"), zerolog.Nop())

	outcome, err := s.Run(context.Background())
	if err != nil || outcome != domain.HumanWins {
		t.Fatalf("expected human win, got %v, %v", outcome, err)
	}
	if !strings.Contains(out.String(), i18n.HumanWon) {
		t.Fatalf("missing win status:\n%s", out.String())
	}
}

func TestSessionComputerTurnWaitsForEnter(t *testing.T) {
	g := newGame(t, domain.Hand{{0, 0}}, domain.Hand{{4, 6}}, domain.Computer)
	var out bytes.Buffer
	s := NewSession(g, strings.NewReader("\n"), &out, i18n.Printer("es"), zerolog.Nop())

	outcome, err := s.Run(context.Background())
	if err != nil || outcome != domain.ComputerWins {
		t.Fatalf("expected computer win, got %v, %v", outcome, err)
	}
	if !strings.Contains(out.String(), "¡Ganó la computadora!") {
		t.Fatalf("expected spanish status:\n%s", out.String())
	}
}

func TestSessionStopsOnCancel(t *testing.T) {
	g := newGame(t, domain.Hand{{5, 6}}, domain.Hand{{0, 0}}, domain.Human)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := NewSession(g, strings.NewReader("1\n"), &out, i18n.Printer("en"), zerolog.Nop())
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if g.Turns() != 0 {
		t.Fatalf("no turn should run after cancel")
	}
}
