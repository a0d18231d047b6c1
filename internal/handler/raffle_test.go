package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

func newRaffleRouter(svc reveal.Service) http.Handler {
	h := NewRaffleHandler(svc)
	r := chi.NewRouter()
	r.Post("/draw", h.HandleDraw)
	r.Put("/speed", h.HandleSetSpeed)
	r.Get("/frame", h.HandleGetFrame)
	r.Get("/frames/{tick}", h.HandleGetFrameAt)
	r.Get("/state", h.HandleGetState)
	return r
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHandleDraw(t *testing.T) {
	defaultBody := `{"tickets_bought":3,"total_tickets":10,"num_draws":10}`
	defaultInput := raffle.Input{TicketsBought: 3, TotalTickets: 10, NumDraws: 10}

	t.Run("Success", func(t *testing.T) {
		svc := &MockRevealService{}
		summary := reveal.RunSummary{RunID: "run-1", Input: defaultInput, Wins: 4, Probability: 0.3, FinalWinRate: 0.4, MaxTick: 11}
		svc.On("Draw", mock.Anything, defaultInput).Return(summary, nil)

		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw", defaultBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, summary, decodeBody[reveal.RunSummary](t, w))
		svc.AssertExpectations(t)
	})

	t.Run("Tickets Exceed Total", func(t *testing.T) {
		svc := &MockRevealService{}
		in := raffle.Input{TicketsBought: 5, TotalTickets: 3, NumDraws: 10}
		svc.On("Draw", mock.Anything, in).Return(reveal.RunSummary{}, raffle.Validate(in))

		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw",
			`{"tickets_bought":5,"total_tickets":3,"num_draws":10}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Equal(t, map[string]string{raffle.FieldTicketsBought: raffle.ErrMsgTicketsExceedTotal}, resp.Fields)
		svc.AssertExpectations(t)
	})

	t.Run("Out Of Range Never Reaches Service", func(t *testing.T) {
		svc := &MockRevealService{}

		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw",
			`{"tickets_bought":3,"total_tickets":10,"num_draws":500}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, "Must be at most 100", resp.Fields["num_draws"])
		svc.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := &MockRevealService{}
		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw", `{"tickets_bought":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidRequest, decodeBody[ErrorResponse](t, w).Error)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		svc := &MockRevealService{}
		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw",
			`{"tickets_bought":3,"total_tickets":10,"num_draws":10,"seed":4}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Draw", mock.Anything, mock.Anything)
	})

	t.Run("Service Stopped", func(t *testing.T) {
		svc := &MockRevealService{}
		svc.On("Draw", mock.Anything, defaultInput).Return(reveal.RunSummary{}, reveal.ErrAdapterStopped)

		w := serve(t, newRaffleRouter(svc), http.MethodPost, "/draw", defaultBody)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, ErrMsgUnavailableError, decodeBody[ErrorResponse](t, w).Error)
	})
}

func TestHandleSetSpeed(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockRevealService{}
		svc.On("SetSpeed", mock.Anything, 25.0).Return(nil)
		svc.On("State").Return(reveal.Snapshot{State: reveal.State{CurrentTick: 2, MaxTick: 11, Speed: 25}})

		w := serve(t, newRaffleRouter(svc), http.MethodPut, "/speed", `{"speed":25}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"speed":25`)
		assert.Contains(t, w.Body.String(), MsgSpeedChangedSuccess)
		svc.AssertExpectations(t)
	})

	t.Run("Off Step", func(t *testing.T) {
		svc := &MockRevealService{}

		w := serve(t, newRaffleRouter(svc), http.MethodPut, "/speed", `{"speed":12}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody[ValidationErrorResponse](t, w).Fields, "speed")
		svc.AssertNotCalled(t, "SetSpeed", mock.Anything, mock.Anything)
	})
}

func TestHandleGetFrame(t *testing.T) {
	svc := &MockRevealService{}
	frame := chart.Frame{RunID: "run-1", Tick: 3, MaxTick: 11, Draws: "2", Figure: chart.BlankFigure()}
	svc.On("Frame").Return(frame)

	w := serve(t, newRaffleRouter(svc), http.MethodGet, "/frame", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, frame, decodeBody[chart.Frame](t, w))
}

func TestHandleGetFrameAt(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		tick       int
		err        error
		wantStatus int
	}{
		{"revealed", "/frames/2", 2, nil, http.StatusOK},
		{"no run", "/frames/1", 1, reveal.ErrNoSeries, http.StatusNotFound},
		{"out of range", "/frames/40", 40, fmt.Errorf("%w: 40 not in [1, 11]", reveal.ErrTickOutOfRange), http.StatusNotFound},
		{"ahead of reveal", "/frames/9", 9, reveal.ErrTickNotRevealed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockRevealService{}
			svc.On("FrameAt", tt.tick).Return(chart.Frame{RunID: "run-1", Tick: tt.tick}, tt.err)

			w := serve(t, newRaffleRouter(svc), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		svc := &MockRevealService{}
		w := serve(t, newRaffleRouter(svc), http.MethodGet, "/frames/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgInvalidTick, decodeBody[ErrorResponse](t, w).Error)
		svc.AssertNotCalled(t, "FrameAt", mock.Anything)
	})
}

func TestHandleGetState(t *testing.T) {
	svc := &MockRevealService{}
	snap := reveal.Snapshot{
		State:         reveal.State{CurrentTick: 0, MaxTick: 11, Speed: 10},
		InvalidFields: map[string]string{raffle.FieldTicketsBought: raffle.ErrMsgTicketsExceedTotal},
	}
	svc.On("State").Return(snap)

	w := serve(t, newRaffleRouter(svc), http.MethodGet, "/state", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, snap, decodeBody[reveal.Snapshot](t, w))
}
