package sse

// RunStartedPayload is the SSE payload for a new simulation
type RunStartedPayload struct {
	RunID         string  `json:"run_id"`
	TicketsBought int     `json:"tickets_bought"`
	TotalTickets  int     `json:"total_tickets"`
	NumDraws      int     `json:"num_draws"`
	MaxTick       int     `json:"max_tick"`
	Probability   float64 `json:"probability"`
}

// RunRejectedPayload lists the invalid fields and their messages
type RunRejectedPayload struct {
	Fields map[string]string `json:"fields"`
}

// RevealCompletedPayload marks the end of a reveal
type RevealCompletedPayload struct {
	RunID   string `json:"run_id"`
	MaxTick int    `json:"max_tick"`
}

// SpeedChangedPayload carries the new speed and the resulting tick interval
type SpeedChangedPayload struct {
	Speed      float64 `json:"speed"`
	IntervalMS float64 `json:"interval_ms"`
}

// ConnectedPayload is sent once on connect
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
