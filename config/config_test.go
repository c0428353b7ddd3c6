package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/arena")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/arena", cfg.DatabaseURL)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "GET,POST,OPTIONS,DELETE", cfg.AllowedMethods)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.BattleTTLMinutes, "sweeper is off by default")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/arena")
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://itsnotagame.netlify.app")
	t.Setenv("BATTLE_TTL_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://itsnotagame.netlify.app", cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.BattleTTLMinutes)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}
