package services

import "errors"

var (
	ErrNoSession     = errors.New("No session found")
	ErrNoOrder       = errors.New("No active order found")
	ErrEmptyOrder    = errors.New("Your order is empty")
	ErrActionPending = errors.New("Request already in progress")
	ErrNomorRequired = errors.New("Nomor meja is required")
)

// UserError carries the text shown to the diner next to the underlying cause.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}
