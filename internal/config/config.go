package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION" envDefault:"1.0"`

	Port            int           `env:"PORT" envDefault:"8080"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"9090"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AdminAPIKey     string        `env:"ADMIN_API_KEY"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"raffle-rate"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DefaultSpeed      float64       `env:"DEFAULT_SPEED" envDefault:"10"`
	PresetsPath       string        `env:"PRESETS_PATH" envDefault:"configs/presets.yaml"`
	PresetsSchemaPath string        `env:"PRESETS_SCHEMA_PATH" envDefault:"configs/schemas/presets.schema.json"`
	FrameCacheSize    int           `env:"FRAME_CACHE_SIZE" envDefault:"128"`
	FrameCacheTTL     time.Duration `env:"FRAME_CACHE_TTL" envDefault:"10m"`

	OTELEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint string `env:"OTEL_ENDPOINT" envDefault:"localhost:4318"`
	OTELInsecure bool   `env:"OTEL_INSECURE" envDefault:"true"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HTTPAddr returns the listen address of the HTTP server
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GRPCAddr returns the listen address of the gRPC server
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
