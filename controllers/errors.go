package controllers

import (
	"errors"
	"net/http"

	"ohio-order/models"
	"ohio-order/services"
)

// describe turns a service error into the text shown to the diner.
func describe(err error) string {
	switch {
	case errors.Is(err, models.ErrOrderLocked):
		return "This order is locked and can no longer be edited."
	case errors.Is(err, models.ErrItemNotFound):
		return "Item is no longer part of your order."
	default:
		return err.Error()
	}
}

// alreadyToasted reports whether the service queued its own toast for err.
func alreadyToasted(err error) bool {
	var userErr *services.UserError
	return errors.As(err, &userErr)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrOrderLocked), errors.Is(err, services.ErrActionPending):
		return http.StatusConflict
	case errors.Is(err, models.ErrItemNotFound), errors.Is(err, services.ErrNoOrder):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrNomorRequired):
		return http.StatusBadRequest
	}

	if status := models.StatusOf(err); status >= 400 && status < 500 {
		return status
	}
	if alreadyToasted(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
