// Command dominoes plays a game of dominoes against the computer in the terminal.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/config"
	"github.com/jaminalder/codex-dominoes/internal/console"
	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	seed, err := cfg.ResolveSeed()
	if err != nil {
		config.Exitf("failed to seed: %v", err)
	}
	rng := domain.NewRand(seed)
	logger.Debug().Uint64("seed", seed).Str("strategy", cfg.Strategy).Msg("Dealing")

	g := domain.New(rng, domain.WithStrategy(cfg.NewStrategy(rng)), domain.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := console.NewSession(g, os.Stdin, os.Stdout, i18n.Printer(cfg.Lang), logger)
	outcome, err := session.Run(ctx)
	switch {
	case err == nil:
		logger.Debug().Stringer("outcome", outcome).Int("turns", g.Turns()).Msg("Game finished")
	case errors.Is(err, console.ErrAbandoned), errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Msg("Game abandoned")
	default:
		stop()
		config.Exitf("game error: %v", err)
	}
}
