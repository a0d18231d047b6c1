package config

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Port bounds
const (
	MinPort = 1
	MaxPort = 65535
)

// Configuration file paths
const (
	ConfigPathPresets       = "configs/presets.yaml"
	ConfigPathPresetsSchema = "configs/schemas/presets.schema.json"
)
