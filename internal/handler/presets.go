package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RaffleRate_Go/internal/presets"
)

// PresetSource provides the instruction text and preset inputs
type PresetSource interface {
	All() []presets.Preset
	Instructions() []string
	Get(name string) (presets.Preset, error)
	Reload() error
}

// PresetsResponse is the body of GET /api/v1/presets
type PresetsResponse struct {
	Instructions []string         `json:"instructions"`
	Presets      []presets.Preset `json:"presets"`
}

// PresetHandler serves the presets file
type PresetHandler struct {
	source PresetSource
	raffle *RaffleHandler
}

// NewPresetHandler creates a preset handler. Draws go through raffle.
func NewPresetHandler(source PresetSource, raffle *RaffleHandler) *PresetHandler {
	return &PresetHandler{source: source, raffle: raffle}
}

// HandleGetPresets lists the instructions and presets
// GET /api/v1/presets
func (h *PresetHandler) HandleGetPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, PresetsResponse{
		Instructions: h.source.Instructions(),
		Presets:      h.source.All(),
	})
}

// HandleDrawPreset starts a run with a preset's inputs
// POST /api/v1/presets/{name}/draw
func (h *PresetHandler) HandleDrawPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := h.source.Get(chi.URLParam(r, ParamPreset))
	if err != nil {
		respondServiceError(w, r, "Draw preset", err)
		return
	}

	h.raffle.draw(w, r, preset.Input())
}

// HandleReloadPresets re-reads the presets file
// POST /api/v1/admin/reload-presets
func (h *PresetHandler) HandleReloadPresets(w http.ResponseWriter, r *http.Request) {
	if err := h.source.Reload(); err != nil {
		slog.Error(ErrMsgReloadPresetsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgReloadPresetsFailed)
		return
	}

	slog.Info(LogMsgPresetsReloaded, "presets", len(h.source.All()))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPresetsReloadedSuccess})
}
