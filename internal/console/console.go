// Package console plays a game in a terminal: it reads numeric commands and
// prints the table before every turn.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

// ErrAbandoned is returned when the input closes before the game ends.
var ErrAbandoned = errors.New("game abandoned")

const separator = "============================================================"

// Render prints the snapshot: stock size, computer piece count, the snake,
// the human hand numbered from 1 and the status line.
func Render(w io.Writer, p *message.Printer, v domain.View) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, p.Sprintf(i18n.StockSize, v.StockSize))
	fmt.Fprintln(w, p.Sprintf(i18n.ComputerPieces, v.ComputerPieces))
	fmt.Fprintln(w, Snake(v))
	fmt.Fprintln(w, p.Sprintf(i18n.YourPieces))
	for i, t := range v.Hand {
		fmt.Fprintf(w, "%d:%v\n", i+1, t)
	}
	fmt.Fprintln(w, i18n.Status(p, v))
}

// Snake formats the chain, eliding the middle of long chains.
func Snake(v domain.View) string {
	head, tail, truncated := v.Snake()
	var sb strings.Builder
	for _, t := range head {
		sb.WriteString(t.String())
	}
	if truncated {
		sb.WriteString("...")
		for _, t := range tail {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}

// Session runs one game against a terminal.
type Session struct {
	game    *domain.Game
	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	logger  zerolog.Logger
}

func NewSession(g *domain.Game, in io.Reader, out io.Writer, p *message.Printer, logger zerolog.Logger) *Session {
	return &Session{
		game:    g,
		in:      bufio.NewScanner(in),
		out:     out,
		printer: p,
		logger:  logger.With().Str("component", "console").Logger(),
	}
}

// Run alternates turns until the game ends. The context is checked between
// turns only; a turn in progress is never interrupted. Closing the input
// abandons the game with ErrAbandoned.
func (s *Session) Run(ctx context.Context) (domain.Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Undecided, err
		}
		v := s.game.View()
		Render(s.out, s.printer, v)
		if s.game.IsOver() {
			s.logger.Info().Stringer("outcome", v.Outcome).Int("turns", v.Turns).Msg("Game finished")
			return v.Outcome, nil
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return domain.Undecided, fmt.Errorf("read command: %w", err)
			}
			return domain.Undecided, ErrAbandoned
		}
		line := s.in.Text()

		if s.game.Turn() == domain.Computer {
			if _, err := s.game.PlayComputer(); err != nil {
				return domain.Undecided, err
			}
			continue
		}

		cmd, err := domain.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(s.out, s.printer.Sprintf(i18n.InvalidInput))
			continue
		}
		if err := s.game.PlayHuman(cmd); err != nil {
			s.logger.Debug().Err(err).Str("command", line).Msg("Move rejected")
			if errors.Is(err, domain.ErrIllegalMove) {
				fmt.Fprintln(s.out, s.printer.Sprintf(i18n.IllegalMove))
			} else {
				fmt.Fprintln(s.out, s.printer.Sprintf(i18n.InvalidInput))
			}
		}
	}
}
