package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/luca-patrignani/three-card-poker/application"
)

// Config is read from TCP_* environment variables.
type Config struct {
	Rounds   int             `env:"TCP_ROUNDS" envDefault:"100"`
	PairPlus decimal.Decimal `env:"TCP_PAIR_PLUS" envDefault:"5"`
	PlayBet  decimal.Decimal `env:"TCP_PLAY_BET" envDefault:"25"`
	LogLevel string          `env:"TCP_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Rounds < 0 {
		return Config{}, fmt.Errorf("TCP_ROUNDS must not be negative, got %d", cfg.Rounds)
	}
	if err := cfg.Policy().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid policy: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy returns the stakes the autoplayer uses.
func (c Config) Policy() application.Policy {
	return application.Policy{PairPlus: c.PairPlus, PlayBet: c.PlayBet}
}

// Level maps TCP_LOG_LEVEL to a pterm log level.
func (c Config) Level() (pterm.LogLevel, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
}
