package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "POSTER"

// Env holds the command-line defaults taken from the environment.
// Command-line flags override them.
type Env struct {
	Output   string `envconfig:"OUTPUT" default:"poster.png"`
	Format   string `envconfig:"FORMAT"`
	Quality  int    `envconfig:"QUALITY" default:"90"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadEnv reads POSTER_OUTPUT, POSTER_FORMAT, POSTER_QUALITY and
// POSTER_LOG_LEVEL.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("config: environment: %w", err)
	}
	return env, nil
}

// Level parses LogLevel. Accepted names are those of slog.Level.
func (e Env) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(e.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}
