package config_test

import (
	"os"
	"testing"

	"initiative-discovery-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigGinMode(t *testing.T) {
	t.Run("Defaults to release", func(t *testing.T) {
		t.Setenv("GIN_MODE", "")
		os.Unsetenv("GIN_MODE")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "release", cfg.GinMode)
	})

	t.Run("Honors GIN_MODE from the environment", func(t *testing.T) {
		t.Setenv("GIN_MODE", "debug")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.GinMode)
	})
}
