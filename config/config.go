package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	LogLevel  string `env:"BINGO_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BINGO_LOG_FORMAT" envDefault:"console"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	// A missing .env is fine, the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("BINGO_LOG_FORMAT must be console or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}
