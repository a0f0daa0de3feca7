package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 15, cfg.Order.DefaultPrepMinutes)
	assert.Equal(t, 5, cfg.Order.DispatchBufferMinutes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mysql")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ORDER_DEFAULT_PREP_MINUTES", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Storage.Backend)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20, cfg.Order.DefaultPrepMinutes)
}
