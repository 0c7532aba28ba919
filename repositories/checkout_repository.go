package repositories

import (
	"context"
	"net/http"

	"ohio-order/models"
)

type CheckoutRepository struct {
	client *APIClient
}

func NewCheckoutRepository(client *APIClient) *CheckoutRepository {
	return &CheckoutRepository{client: client}
}

// GetCurrent returns the session's checkout, or nil when the API answered
// with an empty body.
func (r *CheckoutRepository) GetCurrent(ctx context.Context, sess models.Session) (*models.Checkout, error) {
	var checkout models.Checkout
	hasBody, err := r.client.do(ctx, http.MethodGet, "/api/checkout/me", sess.ID, nil, &checkout)
	if err != nil {
		return nil, err
	}
	if !hasBody {
		return nil, nil
	}
	return &checkout, nil
}

func (r *CheckoutRepository) Create(ctx context.Context, sess models.Session) (*models.Checkout, error) {
	var checkout models.Checkout
	if _, err := r.client.do(ctx, http.MethodPost, "/api/checkout", sess.ID, nil, &checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}
