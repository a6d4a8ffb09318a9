package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "America/Guatemala", cfg.App.Timezone)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.False(t, cfg.Auth.PlaintextPasswords)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_PLAINTEXT_PASSWORDS", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Auth.PlaintextPasswords)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_RechazaDriverYZonaInvalidos(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("STORAGE_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_TIMEZONE", "Marte/Olympus")
	_, err = Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
