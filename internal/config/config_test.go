package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/config"
)

func TestMustLoad(t *testing.T) {
	raw := `env: test
http_server:
  address: "localhost:9090"
  timeout: 7s
  idle_timeout: 45s
backend:
  base_url: "https://api.example.com/v1"
  service_token: "svc-token"
  request_timeout: 12s
redis_connection:
  address: "localhost:6380"
  db: 2
jwttoken:
  jwt_secret_key: "secret"
  token_ttl: 12h
session:
  ttl: 15m
  sweep_interval: 1m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg := config.MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "localhost:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 7*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "svc-token", cfg.ServiceToken)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "localhost:6380", cfg.RedisConnection.Address)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, "secret", cfg.JWTSecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
}
