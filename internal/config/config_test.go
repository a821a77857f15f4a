package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	require.Equal(t, "memory", cfg.Storage.Type)
	require.Equal(t, "memory", cfg.Cache.Type)
	require.Equal(t, time.Minute, cfg.Cache.TTL)
	require.Equal(t, "localhost:6379", cfg.Cache.RedisAddress())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_TYPE", "sqlite")
	t.Setenv("STORAGE_PATH", "/tmp/test.db")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	require.Equal(t, "sqlite", cfg.Storage.Type)
	require.Equal(t, "/tmp/test.db", cfg.Storage.Path)
	require.Equal(t, "redis", cfg.Cache.Type)
	require.Equal(t, 30*time.Second, cfg.Cache.TTL)
	require.Equal(t, "redis.internal:6380", cfg.Cache.RedisAddress())
}
