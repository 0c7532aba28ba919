package models

import "time"

const (
	ActivitySaved          = "order_saved"
	ActivitySaveFailed     = "order_save_failed"
	ActivityItemRemoved    = "item_removed"
	ActivityRemoveFailed   = "item_remove_failed"
	ActivityCheckoutReused = "checkout_reused"
	ActivityCheckoutNew    = "checkout_created"
	ActivityCheckoutFailed = "checkout_failed"
)

type OrderActivity struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	OrderID   string    `json:"order_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
