package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("STORAGE", "memory")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, AuthFirebase, cfg.AuthProvider)
	assert.Equal(t, 5, cfg.ProgressMaxRetries)
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location().String())
}

func TestParseRequiresDatabaseURLForPostgres(t *testing.T) {
	t.Setenv("STORAGE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Parse()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestParseRejectsUnknownValues(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("AUTH_PROVIDER", "basic")
	_, err := Parse()
	assert.ErrorContains(t, err, "AUTH_PROVIDER")

	t.Setenv("AUTH_PROVIDER", "clerk")
	t.Setenv("CLERK_SECRET_KEY", "")
	_, err = Parse()
	assert.ErrorContains(t, err, "CLERK_SECRET_KEY")

	t.Setenv("AUTH_PROVIDER", "firebase")
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err = Parse()
	assert.ErrorContains(t, err, "TIMEZONE")
}
