package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("JWT_EXPIRY_DURATION", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("INCLUDE_LEGACY_DEPOSITS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ledger@localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.True(t, cfg.IncludeLegacyDeposits)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("INCLUDE_LEGACY_DEPOSITS", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", " 10-S ")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IncludeLegacyDeposits)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
