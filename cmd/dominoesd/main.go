// Command dominoesd serves dominoes games over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/app"
	"github.com/jaminalder/codex-dominoes/internal/config"
	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("failed to load config: %v", err)
	}

	logger := zerolog.New(os.Stdout).Level(cfg.Level()).With().Timestamp().Logger()

	seed, err := cfg.ResolveSeed()
	if err != nil {
		config.Exitf("failed to seed: %v", err)
	}
	// The factory only runs under the service lock, so one generator is enough.
	rng := domain.NewRand(seed)
	strategy := cfg.NewStrategy(rng)
	factory := func() *domain.Game {
		return domain.New(rng, domain.WithStrategy(strategy), domain.WithLogger(logger))
	}

	svc := app.NewService(factory)
	svc.SetLogger(logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewServer(svc, cfg.Lang, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("strategy", cfg.Strategy).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server error")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
}
