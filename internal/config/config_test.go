package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"penulis/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "data/penulis.db", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.RetentionDays)
	require.Equal(t, "openai", cfg.AI.Provider)
	require.InDelta(t, 1.2, cfg.AI.Temperature, 0.001)
	require.Equal(t, 4096, cfg.AI.MaxTokens)
	require.Equal(t, 10, cfg.AI.RateLimit)
	require.Equal(t, "en", cfg.Translate.SourceLang)
	require.Equal(t, "id", cfg.Translate.TargetLang)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PENULIS_ADDR", ":9999")
	t.Setenv("PENULIS_AI_PROVIDER", "anthropic")
	t.Setenv("PENULIS_AI_MODEL", "claude-sonnet-4-5")
	t.Setenv("PENULIS_AI_TEMPERATURE", "0.7")
	t.Setenv("PENULIS_AI_RATE_LIMIT", "3")
	t.Setenv("PENULIS_RETENTION_DAYS", "30")
	t.Setenv("PENULIS_TARGET_LANG", "ms")

	cfg := config.Load()

	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "anthropic", cfg.AI.Provider)
	require.Equal(t, "claude-sonnet-4-5", cfg.AI.Model)
	require.InDelta(t, 0.7, cfg.AI.Temperature, 0.001)
	require.Equal(t, 3, cfg.AI.RateLimit)
	require.Equal(t, 30, cfg.RetentionDays)
	require.Equal(t, "ms", cfg.Translate.TargetLang)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PENULIS_AI_TEMPERATURE", "hot")
	t.Setenv("PENULIS_RETENTION_DAYS", "forever")

	cfg := config.Load()

	require.InDelta(t, 1.2, cfg.AI.Temperature, 0.001)
	require.Equal(t, 0, cfg.RetentionDays)
}
