package config

import (
	"os"
	"time"
)

// Payload shapes attempted when creating a charge record upstream.
const (
	PayloadShapeStructured = "structured"
	PayloadShapeLegacy     = "legacy"
)

// Rail-freight weight tier schemas. The backend migrated the top 20ft
// bracket from weight20ft20Plus to weight20ft20_26/weight20ft26Plus
// without versioning, so the field names are configuration.
const (
	RailWeightSchemaLegacy = "legacy"
	RailWeightSchemaV2     = "v2"
)

type Config struct {
	Port             string
	DatabasePath     string
	Environment      string
	LogLevel         string
	BackendBaseURL   string
	PayloadShape     string
	RailWeightSchema string
	SessionDuration  time.Duration
	RequestTimeout   time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DatabasePath:     getEnv("DATABASE_PATH", "freightpro.db"),
		Environment:      getEnv("ENV", "production"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		BackendBaseURL:   resolveBackendURL(),
		PayloadShape:     getEnv("PAYLOAD_SHAPE", PayloadShapeStructured),
		RailWeightSchema: getEnv("RAIL_WEIGHT_SCHEMA", RailWeightSchemaLegacy),
		SessionDuration:  getDuration("SESSION_DURATION", 720*time.Hour),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// resolveBackendURL picks the upstream host. The deployed frontend shipped
// with two divergent hosts; the onrender one is authoritative and the
// b4a.run one survives as an explicit fallback setting.
func resolveBackendURL() string {
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		return v
	}
	if v := os.Getenv("BACKEND_FALLBACK_BASE_URL"); v != "" {
		return v
	}
	return "https://origin-backend-3v3f.onrender.com"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
