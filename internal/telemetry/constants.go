package telemetry

// Log messages
const (
	LogMsgTracingEnabled  = "Tracing enabled"
	LogMsgTracingDisabled = "Tracing disabled"
)
