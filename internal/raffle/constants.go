package raffle

// Input limits accepted by the draw controls
const (
	MinTicketsBought = 1
	MaxTicketsBought = 1000
	MinTotalTickets  = 1
	MaxTotalTickets  = 1000
	MinNumDraws      = 1
	MaxNumDraws      = 100
)

// Defaults shown when the page first loads
const (
	DefaultTicketsBought = 3
	DefaultTotalTickets  = 10
	DefaultNumDraws      = 10
)

// Field names used in validation errors
const (
	FieldTicketsBought = "tickets_bought"
	FieldTotalTickets  = "total_tickets"
	FieldNumDraws      = "num_draws"
)
