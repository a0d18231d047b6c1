package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		EnvSchemaVersion: ExpectedEnvSchemaVersion,
		Port:             8080,
		GRPCPort:         9090,
		ShutdownTimeout:  10 * time.Second,
		AdminAPIKey:      "secret",
		DefaultSpeed:     10,
		FrameCacheSize:   128,
		FrameCacheTTL:    time.Minute,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_VersionMismatch(t *testing.T) {
	cfg := validConfig()
	cfg.EnvSchemaVersion = "0.9"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	cfg.GRPCPort = 70000
	cfg.DefaultSpeed = 35
	cfg.FrameCacheSize = 0
	cfg.FrameCacheTTL = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"PORT must be", "GRPC_PORT must be", "DEFAULT_SPEED", "FRAME_CACHE_SIZE", "FRAME_CACHE_TTL"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_SamePorts(t *testing.T) {
	cfg := validConfig()
	cfg.GRPCPort = cfg.Port

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestWarnings(t *testing.T) {
	assert.Empty(t, validConfig().Warnings())

	cfg := validConfig()
	cfg.AdminAPIKey = ""
	cfg.FrameCacheSize = 50
	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "ADMIN_API_KEY")
	assert.Contains(t, warnings[1], "101 frames")

	cfg = validConfig()
	cfg.AdminAPIKey = "generate_with_openssl_rand_hex_32"
	assert.Contains(t, cfg.Warnings()[0], "example value")
}
