package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventory-web/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "invorya-web", cfg.App.Name)
	assert.Equal(t, "https://deploy-api-inventory-sena.onrender.com", cfg.API.BaseURL,
		"el origen del API es único y viene configurado de fábrica")
	assert.Equal(t, 25, cfg.API.TimeoutSeconds)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.False(t, cfg.Session.Rehydrate, "por defecto recargar exige login de nuevo")
	assert.Empty(t, cfg.Session.File)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:9999")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("SESSION_REHYDRATE", "true")
	t.Setenv("SESSION_FILE", "/tmp/invorya-session")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.Session.Rehydrate)
	assert.Equal(t, "/tmp/invorya-session", cfg.Session.File)
}

func TestHTTPConfig_Addr(t *testing.T) {
	c := config.HTTPConfig{Host: "127.0.0.1", Port: 3000}
	assert.Equal(t, "127.0.0.1:3000", c.Addr())
}

func TestLoad_TimeoutInvalidoVuelveAlPorDefecto(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.API.TimeoutSeconds)
}
