package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "weepify", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, 120, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 60, cfg.Redis.StatsTTLSeconds)
	assert.Equal(t, 5, cfg.Redis.StatsDirtyTTLSeconds)
	assert.Equal(t, "cry.activity.persist", cfg.RabbitMQ.ActivityLogQueue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MYSQL_DB", "weepify_test")
	t.Setenv("REDIS_STATS_TTL_SECONDS", "30")
	t.Setenv("RABBITMQ_ACTIVITY_LOG_QUEUE", "test.queue")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "weepify_test", cfg.MySQL.DB)
	assert.Equal(t, 30, cfg.Redis.StatsTTLSeconds)
	assert.Equal(t, "test.queue", cfg.RabbitMQ.ActivityLogQueue)
}

func TestLoadEnvOverrideBadInt(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
}

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.MySQL.User = "weepy"
	cfg.MySQL.Password = "pw"
	cfg.MySQL.DB = "tears"
	cfg.MySQL.Params = "parseTime=true"

	assert.Equal(t, "weepy:pw@tcp(127.0.0.1:3306)/tears?parseTime=true", cfg.MySQLDSN())
}
