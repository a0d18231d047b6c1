package handler

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgPageRenderFailed = "Failed to render page"
	LogMsgPresetsReloaded  = "Presets reloaded"
	LogMsgDrawRejected     = "Draw rejected"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// URL parameters
const (
	ParamTick   = "tick"
	ParamPreset = "name"
)
