package repositories

import (
	"context"
	"net/http"
	"net/url"

	"ohio-order/models"
)

type OrderRepository struct {
	client *APIClient
}

func NewOrderRepository(client *APIClient) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) GetCurrent(ctx context.Context, sess models.Session) (*models.Order, error) {
	var order models.Order
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/orders/me", sess.ID, nil, &order); err != nil {
		return nil, err
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return &order, nil
}

// Update replaces the quantities of the session's order. The returned order is
// nil when the API answers without a body.
func (r *OrderRepository) Update(ctx context.Context, sess models.Session, req models.UpdateOrderRequest) (*models.Order, error) {
	var order models.Order
	hasBody, err := r.client.do(ctx, http.MethodPut, "/api/v1/orders/me", sess.ID, req, &order)
	if err != nil {
		return nil, err
	}
	if !hasBody || order.ID == "" {
		return nil, nil
	}
	return &order, nil
}

func (r *OrderRepository) RemoveItem(ctx context.Context, sess models.Session, itemID string) error {
	_, err := r.client.do(ctx, http.MethodDelete, "/api/v1/orders/me/items/"+url.PathEscape(itemID), sess.ID, nil, nil)
	return err
}
