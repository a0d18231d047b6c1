package bootstrap

// Log messages for logger initialization
const (
	LogMsgStartingRaffleRate  = "Starting RaffleRate"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Log messages for preset loading
const (
	LogMsgPresetsUnavailable = "Presets unavailable, continuing without them"
)

const (
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgServerStopped           = "Server stopped"
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgGRPCForcedShutdown      = "gRPC server forced to shutdown"
	LogMsgTelemetryShutdownFailed = "Telemetry shutdown failed"

	// Service names for shutdown logging
	ServiceNameReveal = "reveal"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
