package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/RaffleRate_Go/internal/logger"
	"github.com/osse101/RaffleRate_Go/internal/presets"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" failed", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	// Reveal messages
	ErrMsgNoRunError          = "No draw has been made yet"
	ErrMsgTickOutOfRangeError = "Tick is outside the current run"
	ErrMsgTickNotRevealedErr  = "Tick has not been revealed yet"
	ErrMsgInvalidSpeedError   = "Speed must be positive"

	// Preset messages
	ErrMsgPresetNotFoundError = "Preset not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var fieldErr *raffle.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return http.StatusUnprocessableEntity, fieldErr.Message
	case errors.Is(err, raffle.ErrInvalidInput):
		return http.StatusUnprocessableEntity, raffle.ErrMsgInvalidInput
	case errors.Is(err, reveal.ErrNoSeries):
		return http.StatusNotFound, ErrMsgNoRunError
	case errors.Is(err, reveal.ErrTickOutOfRange):
		return http.StatusNotFound, ErrMsgTickOutOfRangeError
	case errors.Is(err, reveal.ErrTickNotRevealed):
		return http.StatusConflict, ErrMsgTickNotRevealedErr
	case errors.Is(err, reveal.ErrInvalidSpeed):
		return http.StatusBadRequest, ErrMsgInvalidSpeedError
	case errors.Is(err, presets.ErrPresetNotFound):
		return http.StatusNotFound, ErrMsgPresetNotFoundError
	case errors.Is(err, reveal.ErrAdapterStopped),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	// Default to generic message for system-level errors
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
