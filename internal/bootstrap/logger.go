package bootstrap

import (
	"log/slog"

	"github.com/osse101/RaffleRate_Go/internal/config"
	"github.com/osse101/RaffleRate_Go/internal/logger"
)

// SetupLogger installs the default slog logger from the app configuration.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	slog.Info(LogMsgStartingRaffleRate,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"grpc_port", cfg.GRPCPort,
		"default_speed", cfg.DefaultSpeed,
		"presets_path", cfg.PresetsPath,
		"admin_enabled", cfg.AdminAPIKey != "")
}
