package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://origin-backend-3v3f.onrender.com", cfg.BackendBaseURL)
	assert.Equal(t, PayloadShapeStructured, cfg.PayloadShape)
	assert.Equal(t, RailWeightSchemaLegacy, cfg.RailWeightSchema)
	assert.Equal(t, 720*time.Hour, cfg.SessionDuration)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "development")
	t.Setenv("RAIL_WEIGHT_SCHEMA", RailWeightSchemaV2)
	t.Setenv("SESSION_DURATION", "24h")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, RailWeightSchemaV2, cfg.RailWeightSchema)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
}

func TestBackendURLOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://primary.example.com")
	assert.Equal(t, "https://primary.example.com", Load().BackendBaseURL)

	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("BACKEND_FALLBACK_BASE_URL", "https://fallback.example.com")
	assert.Equal(t, "https://fallback.example.com", Load().BackendBaseURL)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, Load().RequestTimeout)
}
