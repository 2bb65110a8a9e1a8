package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":2000", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "http://localhost:2000", cfg.BaseURL)
	assert.Equal(t, "internal/views/*.tmpl", cfg.TemplatesGlob)
	assert.Equal(t, "k", cfg.TokenSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_KEY", "k")
	t.Setenv("ADDR", ":9999")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DB_DSN", "host=localhost user=app dbname=seelee")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_x")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "host=localhost user=app dbname=seelee", cfg.DatabaseDSN)
	assert.Equal(t, "sk_test_x", cfg.StripeKey)
}

func TestLoadMissingTokenSecret(t *testing.T) {
	t.Setenv("JWT_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadTTL(t *testing.T) {
	t.Setenv("JWT_KEY", "k")
	t.Setenv("TOKEN_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
