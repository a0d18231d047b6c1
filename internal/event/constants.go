package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyRunID = "run_id"
	MetadataKeyTick  = "tick"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// AllTypes lists every event type published by the reveal pipeline
var AllTypes = []Type{
	SimulationStarted,
	SimulationRejected,
	FrameRendered,
	RenderSkipped,
	RevealCompleted,
	SpeedChanged,
}
