// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           int    `env:"PORT" envDefault:"3000"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"board.db"`
	DatabaseType   string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	BoardKey       string `env:"BOARD_KEY" envDefault:"catan_board_config"`
	HealthURL      string `env:"HEALTH_URL"`

	// HealthCheck runs a single probe against HealthURL instead of serving
	HealthCheck bool
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("catan-builder", flag.ContinueOnError)

	// Environment values become the flag defaults
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.FrontendOrigin, "origin", cfg.FrontendOrigin, "Allowed CORS origin")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&cfg.BoardKey, "board-key", cfg.BoardKey, "Storage key for the board document")
	fs.StringVar(&cfg.HealthURL, "health-url", cfg.HealthURL, "Base URL probed by -healthcheck")
	fs.BoolVar(&cfg.HealthCheck, "healthcheck", false, "Probe /health and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.HealthURL == "" {
		cfg.HealthURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	return cfg, nil
}
