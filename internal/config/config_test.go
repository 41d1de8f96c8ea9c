package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ALEXA_APP_ID", "")
	t.Setenv("PARAM_PREFIX", "")
	t.Setenv("TURN_TABLE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.AppID)
	require.Empty(t, cfg.ParamPrefix)
	require.Empty(t, cfg.TurnTable)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ALEXA_APP_ID", " amzn1.ask.skill.abc ")
	t.Setenv("PARAM_PREFIX", "/star-gazer/prod/")
	t.Setenv("TURN_TABLE", "star-gazer-turns")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "amzn1.ask.skill.abc", cfg.AppID)
	require.Equal(t, "/star-gazer/prod", cfg.ParamPrefix)
	require.Equal(t, "star-gazer-turns", cfg.TurnTable)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	require.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	require.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.SlogLevel())
}
