package models

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the order API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("order api responded with status %d", e.StatusCode)
}

func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNoCheckout reports whether a checkout lookup failure means the session
// simply has no checkout yet.
func IsNoCheckout(err error) bool {
	status := StatusOf(err)
	return status == http.StatusBadRequest || status == http.StatusNotFound
}

// MessageOr returns the server-provided message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
