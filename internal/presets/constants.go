package presets

// Log messages
const (
	LogMsgPresetsLoaded     = "Presets loaded"
	LogMsgPresetsLoadFailed = "Failed to load presets"
)
