package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidTick = "Invalid tick"

	// Draw and reveal error messages
	ErrMsgSpeedStep = "Must be between %g and %g in steps of %g"

	// Admin error messages
	ErrMsgReloadPresetsFailed = "Failed to reload presets"
)

// Success messages for API responses
const (
	MsgSpeedChangedSuccess    = "Speed changed"
	MsgPresetsReloadedSuccess = "Presets reloaded successfully"
)
