package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the adapter.
type Config struct {
	ServiceName string // e.g. "octopus-adapter"
	Env         string // e.g. "dev", "uat", "prod"
	LogLevel    string // "debug", "info", etc.
	Port        int    // HTTP API port for serve mode

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration

	// Octopus API
	OctopusBaseURL     string        // e.g. https://api.octopus.energy
	OctopusHTTPTimeout time.Duration // 0 keeps the transport defaults
	ProductBrand       string        // brand the selected product must carry
	ProductDisplayName string        // display name the selected product must carry

	// Optional event publishing; disabled when NATSURL is empty
	NATSURL         string
	SelectedSubject string
}

// Load loads configuration from environment variables and .env file if present.
func Load() *Config {
	// load .env silently (no error if missing)
	_ = godotenv.Load()

	return &Config{
		ServiceName:        GetEnv("SERVICE_NAME", "octopus-adapter"),
		Env:                GetEnv("ENV", "dev"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		Port:               GetEnvInt("OCTOPUS_PORT", 9020),
		HTTPReadTimeout:    GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout:   GetEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		OctopusBaseURL:     GetEnv("OCTOPUS_BASE_URL", "https://api.octopus.energy"),
		OctopusHTTPTimeout: GetEnvDuration("OCTOPUS_HTTP_TIMEOUT", 0),
		ProductBrand:       GetEnv("OCTOPUS_BRAND", "OCTOPUS_ENERGY"),
		ProductDisplayName: GetEnv("OCTOPUS_DISPLAY_NAME", "Agile Octopus"),
		NATSURL:            GetEnv("NATS_URL", ""),
		SelectedSubject:    GetEnv("SELECTED_SUBJECT", "evt.tariff.product_selected.v1"),
	}
}

// PublishingEnabled reports whether selected products should be published to NATS.
func (c *Config) PublishingEnabled() bool {
	return c.NATSURL != ""
}
