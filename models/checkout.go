package models

import "time"

type Checkout struct {
	ID        string     `json:"id"`
	OrderID   string     `json:"orderId,omitempty"`
	SessionID string     `json:"sessionId,omitempty"`
	NomorMeja string     `json:"nomorMeja,omitempty"`
	Status    string     `json:"status,omitempty"`
	Total     float64    `json:"total,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type CheckoutResult struct {
	Checkout *Checkout `json:"checkout"`
	Created  bool      `json:"created"`
}
