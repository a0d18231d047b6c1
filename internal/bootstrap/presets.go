package bootstrap

import (
	"log/slog"

	"github.com/osse101/RaffleRate_Go/internal/config"
	"github.com/osse101/RaffleRate_Go/internal/presets"
)

// LoadPresets reads the preset catalog. A bad catalog is logged and the page
// is served without presets; the admin reload route can fix it later.
func LoadPresets(cfg *config.Config) *presets.Loader {
	loader := presets.NewLoader(cfg.PresetsPath, cfg.PresetsSchemaPath, nil)
	if err := loader.Load(); err != nil {
		slog.Warn(LogMsgPresetsUnavailable, "path", cfg.PresetsPath, "error", err)
	}
	return loader
}
