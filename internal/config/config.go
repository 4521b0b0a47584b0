// Package config loads runtime settings from the environment.
package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/domain"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

// Strategy names accepted in DOMINO_STRATEGY.
const (
	StrategyGreedy = "greedy"
	StrategyRandom = "random"
)

type Config struct {
	HTTPAddr string `env:"DOMINO_HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"DOMINO_LOG_LEVEL" envDefault:"info"`
	// Seed fixes the shuffle. Zero picks a fresh seed on every start.
	Seed     uint64 `env:"DOMINO_SEED" envDefault:"0"`
	Strategy string `env:"DOMINO_STRATEGY" envDefault:"greedy"`
	Lang     string `env:"DOMINO_LANG" envDefault:"en"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that env parsing cannot.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid DOMINO_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	switch c.Strategy {
	case StrategyGreedy, StrategyRandom:
	default:
		return fmt.Errorf("invalid DOMINO_STRATEGY %q", c.Strategy)
	}
	if !i18n.Supported(c.Lang) {
		return fmt.Errorf("unsupported DOMINO_LANG %q", c.Lang)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewStrategy builds the configured opponent.
func (c Config) NewStrategy(rng domain.RNG) domain.Strategy {
	if c.Strategy == StrategyRandom {
		return domain.RandomStrategy{RNG: rng}
	}
	return domain.GreedyStrategy{}
}

// ResolveSeed returns the configured seed, or a fresh one from crypto/rand.
func (c Config) ResolveSeed() (uint64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
