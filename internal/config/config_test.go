package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  env: dev
server:
  host: 127.0.0.1
  port: 9090
db:
  dsn: postgres://localhost:5432/fitness
jwt:
  secret: test-secret
  access_token_ttl: 30m
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, Development, cfg.App.Env)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "postgres://localhost:5432/fitness", cfg.DB.DSN)
	require.Equal(t, "test-secret", cfg.JWT.Secret)
	require.Equal(t, "30m0s", cfg.JWT.AccessTokenTTL.String())
	require.Equal(t, "24h0m0s", cfg.JWT.SessionTTL.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, ErrConfigNotLoaded)
}

func TestLoad_RejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load(writeConfig(t, testConfig))
	require.ErrorIs(t, err, ErrConfigNotLoaded)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Server.Port)
}
