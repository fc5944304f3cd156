package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/craveblock/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("env file and defaults", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(file, []byte("JWT_SECRET=from-file\nSTORAGE_BACKEND=sqlite\n"), 0o600))
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		t.Setenv("STORAGE_BACKEND", "")
		os.Unsetenv("STORAGE_BACKEND")
		t.Setenv("TOKEN_TTL", "30m")

		cfg, err := config.Load(file)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.JWTSecret)
		assert.Equal(t, "sqlite", cfg.StorageBackend)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
		assert.Equal(t, "0.0.0.0:8080", cfg.APIAddress)
	})

	t.Run("missing file is fine", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.JWTSecret)
	})

	t.Run("secret is required", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		_, err := config.Load("")
		assert.Error(t, err)
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DEFAULT_TIMEZONE", "Mars/Olympus")
		_, err := config.Load("")
		assert.Error(t, err)
	})
}
