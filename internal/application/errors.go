package application

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP status codes and
// never expose anything more specific for authorization failures.
var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountDisabled         = errors.New("account disabled")
	ErrNotFound                = errors.New("not found")
	ErrSchedulingConflict      = errors.New("scheduling conflict")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrAppointmentNotCompleted = errors.New("appointment not completed")
	ErrDuplicateInvoice        = errors.New("appointment already billed")
	ErrInvalidInput            = errors.New("invalid input")
)
