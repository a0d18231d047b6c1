package config

import (
	"errors"
	"fmt"

	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/ticker"
)

// Validate checks values that parse correctly but cannot run
func (c *Config) Validate() error {
	var errs []error

	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}
	if c.Port < MinPort || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if c.GRPCPort < MinPort || c.GRPCPort > MaxPort {
		errs = append(errs, fmt.Errorf("GRPC_PORT must be between %d and %d, got %d", MinPort, MaxPort, c.GRPCPort))
	}
	if c.Port == c.GRPCPort {
		errs = append(errs, fmt.Errorf("PORT and GRPC_PORT must differ, both are %d", c.Port))
	}
	if !ticker.ValidSpeed(c.DefaultSpeed) {
		errs = append(errs, fmt.Errorf("DEFAULT_SPEED must be between %v and %v in steps of %v, got %v",
			ticker.MinSpeed, ticker.MaxSpeed, ticker.SpeedStep, c.DefaultSpeed))
	}
	if c.FrameCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("FRAME_CACHE_SIZE must be positive, got %d", c.FrameCacheSize))
	}
	if c.FrameCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("FRAME_CACHE_TTL must be positive, got %s", c.FrameCacheTTL))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that work but are probably not intended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.AdminAPIKey == "" {
		warnings = append(warnings, "ADMIN_API_KEY is not set - admin endpoints are disabled")
	} else if c.AdminAPIKey == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "ADMIN_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.OTELEnabled && c.OTELEndpoint == "" {
		warnings = append(warnings, "OTEL_ENABLED is set without OTEL_ENDPOINT - traces will go to the exporter default")
	}

	if longest := raffle.MaxNumDraws + 1; c.FrameCacheSize < longest {
		warnings = append(warnings, fmt.Sprintf("FRAME_CACHE_SIZE is below the longest reveal (%d frames) - early frames will be re-rendered", longest))
	}

	return warnings
}
