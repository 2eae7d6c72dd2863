package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost/inventory-backend/api", c.BaseURL)
	assert.Equal(t, 30*time.Second, c.PollInterval)
	assert.Equal(t, "inventorypro.db", c.StateDBPath)
	assert.Equal(t, "inventorypro.log", c.LogFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost/inventory-backend/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
}
