package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("EMBEDDING_PROVIDER", "deterministic")
	t.Setenv("EMBEDDING_DIMENSION", "64")
	t.Setenv("STORE_VALKEY_ENABLED", "true")
	t.Setenv("STORE_VALKEY_ADDR", "localhost:6379")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "deterministic", cfg.Embedding.Provider)
	require.Equal(t, 64, cfg.Embedding.Dimension)
	require.True(t, cfg.Store.Valkey.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := defaultConfig()
	cfg.Embedding.Provider = "word2vec"
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsValkeyWithoutAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Store.Valkey.Enabled = true
	cfg.Store.Valkey.Addr = " "
	require.Error(t, cfg.Validate())
}
