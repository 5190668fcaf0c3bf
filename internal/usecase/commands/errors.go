package commands

import "booking-engine/internal/domain/calendar"

// RejectedError carries the admission decision that turned a booking down so
// the transport can echo it back. errors.Is matches the calendar sentinel.
type RejectedError struct {
	Decision calendar.Decision
	err      error
}

func (e *RejectedError) Error() string { return e.err.Error() }

func (e *RejectedError) Unwrap() error { return e.err }

// NewRejectedError wraps an unavailable decision.
func NewRejectedError(d calendar.Decision) *RejectedError {
	return &RejectedError{Decision: d, err: d.Err()}
}
