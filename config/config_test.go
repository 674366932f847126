package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/config"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "hotelier", cfg.App.Name)
	assert.Equal(t, ".", cfg.Store.Dir)
	assert.Equal(t, "hotels.json", cfg.Store.HotelsFile)
	assert.Equal(t, "customers.json", cfg.Store.CustomersFile)
	assert.Equal(t, "reservations.json", cfg.Store.ReservationsFile)
	assert.Equal(t, uint32(0o644), cfg.Store.FileMode)
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Dir = "/var/lib/hotelier"
	cfg.Store.HotelsFile = "h.json"
	cfg.Store.FileMode = 0o600

	cfg.ApplyDefaults()

	assert.Equal(t, "/var/lib/hotelier", cfg.Store.Dir)
	assert.Equal(t, "h.json", cfg.Store.HotelsFile)
	assert.Equal(t, "customers.json", cfg.Store.CustomersFile)
	assert.Equal(t, uint32(0o600), cfg.Store.FileMode)
}

func TestGet_ReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_DIR", t.TempDir())
	t.Setenv("SERVER_LOG_LEVEL", "debug")

	cfg := config.Get()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.Store.HotelsFile)
	assert.Same(t, cfg, config.Get())
}
