package raffle

// Validate checks the one rule the engine depends on: a player cannot hold
// more tickets than exist. Range limits are enforced by the transports.
func Validate(in Input) error {
	if in.TicketsBought > in.TotalTickets {
		return &FieldError{
			Field:   FieldTicketsBought,
			Message: ErrMsgTicketsExceedTotal,
			Err:     ErrTicketsExceedTotal,
		}
	}
	return nil
}
