package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "geoportal-api", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 6.0, cfg.MaxSearchRadiusKm)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/geoportal")
	t.Setenv("MAX_SEARCH_RADIUS_KM", "10.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/geoportal", cfg.DatabaseURL)
	assert.Equal(t, 10.5, cfg.MaxSearchRadiusKm)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadRadius(t *testing.T) {
	t.Setenv("MAX_SEARCH_RADIUS_KM", "six")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_SEARCH_RADIUS_KM")
}

func TestValidate_RequiresDatabaseURL(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate("geoportal-api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidate_RejectsNegativeRadiusCap(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/geoportal", MaxSearchRadiusKm: -1}
	err := cfg.Validate("geoportal-api")
	require.Error(t, err)
}
