package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/RaffleRate_Go/internal/logger"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

// DrawRequest is the body of POST /api/v1/draw.
// Ranges match the draw controls; the tickets rule is checked by the service.
type DrawRequest struct {
	TicketsBought int `json:"tickets_bought" validate:"min=1,max=1000"`
	TotalTickets  int `json:"total_tickets" validate:"min=1,max=1000"`
	NumDraws      int `json:"num_draws" validate:"min=1,max=100"`
}

// Input converts the request to simulation input
func (r DrawRequest) Input() raffle.Input {
	return raffle.Input{
		TicketsBought: r.TicketsBought,
		TotalTickets:  r.TotalTickets,
		NumDraws:      r.NumDraws,
	}
}

// SpeedRequest is the body of PUT /api/v1/speed
type SpeedRequest struct {
	Speed float64 `json:"speed" validate:"required,speedstep"`
}

// RaffleHandler serves the draw controls and the reveal outputs
type RaffleHandler struct {
	svc reveal.Service
}

// NewRaffleHandler creates a new raffle handler
func NewRaffleHandler(svc reveal.Service) *RaffleHandler {
	return &RaffleHandler{svc: svc}
}

// HandleDraw starts a new run, replacing any reveal in progress
// POST /api/v1/draw
func (h *RaffleHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	var req DrawRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Draw"); err != nil {
		return
	}

	h.draw(w, r, req.Input())
}

func (h *RaffleHandler) draw(w http.ResponseWriter, r *http.Request, in raffle.Input) {
	summary, err := h.svc.Draw(r.Context(), in)
	if err != nil {
		var fieldErr *raffle.FieldError
		if errors.As(err, &fieldErr) {
			logger.FromContext(r.Context()).Info(LogMsgDrawRejected, "fields", fieldErr.Fields())
			respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: fieldErr.Fields(),
			})
			return
		}
		respondServiceError(w, r, "Draw", err)
		return
	}

	respondJSON(w, http.StatusCreated, summary)
}

// HandleSetSpeed changes the reveal speed from the next tick on
// PUT /api/v1/speed
func (h *RaffleHandler) HandleSetSpeed(w http.ResponseWriter, r *http.Request) {
	var req SpeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set speed"); err != nil {
		return
	}

	if err := h.svc.SetSpeed(r.Context(), req.Speed); err != nil {
		respondServiceError(w, r, "Set speed", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgSpeedChangedSuccess,
		Data:    h.svc.State().State,
	})
}

// HandleGetFrame returns the frame currently on screen
// GET /api/v1/frame
func (h *RaffleHandler) HandleGetFrame(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Frame())
}

// HandleGetFrameAt returns the frame of an already revealed tick
// GET /api/v1/frames/{tick}
func (h *RaffleHandler) HandleGetFrameAt(w http.ResponseWriter, r *http.Request) {
	tick, ok := GetIntURLParam(r, w, ParamTick, ErrMsgInvalidTick)
	if !ok {
		return
	}

	frame, err := h.svc.FrameAt(tick)
	if err != nil {
		respondServiceError(w, r, "Get frame", err)
		return
	}
	respondJSON(w, http.StatusOK, frame)
}

// HandleGetState returns the reveal position, the current run and any invalid fields
// GET /api/v1/state
func (h *RaffleHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.State())
}
