// Package config reads skill settings from the Lambda environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// AppID is the Alexa skill id requests must be addressed to. Empty
	// disables the check.
	AppID string `env:"ALEXA_APP_ID"`
	// ParamPrefix is the SSM path holding the content tables. Empty uses
	// the tables compiled into the binary.
	ParamPrefix string `env:"PARAM_PREFIX"`
	// TurnTable enables the DynamoDB turn audit log when set.
	TurnTable string `env:"TURN_TABLE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.AppID = strings.TrimSpace(cfg.AppID)
	cfg.ParamPrefix = strings.TrimRight(strings.TrimSpace(cfg.ParamPrefix), "/")
	cfg.TurnTable = strings.TrimSpace(cfg.TurnTable)
	return cfg, nil
}

// SlogLevel maps LogLevel onto slog, defaulting to info for unknown values.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
