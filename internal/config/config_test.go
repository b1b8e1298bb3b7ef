package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/delivery")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.ServerPort)
	require.Equal(t, "HS256", cfg.JWTAlgorithm)
	require.Equal(t, 30*time.Minute, cfg.JWTAccessTTL)
	require.Equal(t, []string{"/auth/login", "/auth/register", "/docs", "/openapi.json"}, cfg.AuthAllowlist)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.False(t, cfg.TrustProxyHeaders)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("JWT_ACCESS_TTL", "5m")
	t.Setenv("AUTH_ALLOWLIST", " /auth/login , /health,, ")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "HS512", cfg.JWTAlgorithm)
	require.Equal(t, 5*time.Minute, cfg.JWTAccessTTL)
	require.Equal(t, []string{"/auth/login", "/health"}, cfg.AuthAllowlist)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestLoadKeepsSecretVerbatim(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "s3cr et\twith inner space")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "s3cr et\twith inner space", cfg.JWTSecret)
	require.True(t, cfg.TrustProxyHeaders)
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "blank secret", env: map[string]string{"JWT_SECRET": "  "}},
		{name: "secret with surrounding whitespace", env: map[string]string{"JWT_SECRET": " secret\n"}},
		{name: "missing database", env: map[string]string{"DATABASE_URL": ""}},
		{name: "asymmetric algorithm", env: map[string]string{"JWT_ALGORITHM": "RS256"}},
		{name: "zero lifetime", env: map[string]string{"JWT_ACCESS_TTL": "0s"}},
		{name: "unparseable lifetime", env: map[string]string{"JWT_ACCESS_TTL": "soon"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "min above max conns", env: map[string]string{"DB_MIN_CONNS": "20"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
		})
	}
}
