package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "kardex-captura", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "./data", cfg.Storage.Dir)
	assert.Equal(t, "./data/submissions", cfg.Storage.SubmissionsDir)
	assert.Equal(t, "GTQ", cfg.Capture.DefaultCurrency)
	assert.False(t, cfg.Capture.ClearOnSubmit)
	assert.Equal(t, int64(5<<20), cfg.Import.MaxBytes)
	assert.Equal(t, 15*time.Minute, cfg.Import.PreviewTTL)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DIR", "/tmp/kardex")
	t.Setenv("CAPTURE_CLEAR_ON_SUBMIT", "true")
	t.Setenv("CAPTURE_DEFAULT_CURRENCY", "USD")
	t.Setenv("IMPORT_PREVIEW_TTL_MINUTES", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/tmp/kardex/submissions", cfg.Storage.SubmissionsDir)
	assert.True(t, cfg.Capture.ClearOnSubmit)
	assert.Equal(t, "USD", cfg.Capture.DefaultCurrency)
	assert.Equal(t, 2*time.Minute, cfg.Import.PreviewTTL)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "70000")
	_, err := config.Load()
	assert.Error(t, err)
}
