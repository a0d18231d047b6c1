package handler

import (
	"net/http"

	"github.com/osse101/RaffleRate_Go/internal/sse"
)

// SSEClientsResponse is the body of GET /api/v1/admin/sse/clients
type SSEClientsResponse struct {
	Clients int `json:"clients"`
}

// AdminSSEHandler handles SSE-related admin tasks
type AdminSSEHandler struct {
	sseHub *sse.Hub
}

// NewAdminSSEHandler creates a new admin SSE handler
func NewAdminSSEHandler(sseHub *sse.Hub) *AdminSSEHandler {
	return &AdminSSEHandler{sseHub: sseHub}
}

// HandleGetClients reports how many event stream clients are connected
// GET /api/v1/admin/sse/clients
func (h *AdminSSEHandler) HandleGetClients(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SSEClientsResponse{Clients: h.sseHub.ClientCount()})
}
