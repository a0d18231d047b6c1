package raffle

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
const (
	ErrMsgTicketsExceedTotal = "Number of tickets bought must be less than total tickets"
	ErrMsgInvalidInput       = "invalid raffle input"
)

var (
	// ErrInvalidInput is the base error for every rejected Input
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrTicketsExceedTotal is returned when more tickets are bought than exist
	ErrTicketsExceedTotal = fmt.Errorf("%w: tickets bought exceeds total tickets", ErrInvalidInput)
)

// FieldError reports which input field failed validation and the message to show next to it
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Fields returns the error as a field -> message map for API responses
func (e *FieldError) Fields() map[string]string {
	return map[string]string{e.Field: e.Message}
}
