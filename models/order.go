package models

import "errors"

var (
	ErrOrderLocked  = errors.New("order is locked and cannot be edited")
	ErrItemNotFound = errors.New("order item not found")
)

type Order struct {
	ID        string      `json:"id"`
	NomorMeja string      `json:"nomorMeja"`
	Locked    bool        `json:"locked"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
}

type OrderItem struct {
	ID                  string  `json:"id"`
	MenuItemID          string  `json:"menuItemId"`
	MenuItemName        string  `json:"menuItemName"`
	MenuItemDescription string  `json:"menuItemDescription,omitempty"`
	MenuItemCategory    string  `json:"menuItemCategory,omitempty"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	Subtotal            float64 `json:"subtotal"`
}

type UpdateOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type UpdateOrderRequest struct {
	Items []UpdateOrderItem `json:"items"`
}

// Clone returns a deep copy so a draft never shares its item slice with the
// server snapshot it was taken from.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = append([]OrderItem(nil), o.Items...)
	return &cp
}

func (o *Order) FindItem(itemID string) (int, bool) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return i, true
		}
	}
	return -1, false
}

// SetQuantity changes one item's quantity and recomputes its subtotal and the
// order total.
func (o *Order) SetQuantity(itemID string, quantity int) error {
	if o.Locked {
		return ErrOrderLocked
	}
	idx, ok := o.FindItem(itemID)
	if !ok {
		return ErrItemNotFound
	}

	o.Items[idx].Quantity = quantity
	o.Items[idx].Subtotal = o.Items[idx].Price * float64(quantity)
	o.Recalculate()
	return nil
}

// RemoveItem drops an item and recomputes the total. It reports whether the
// item was present.
func (o *Order) RemoveItem(itemID string) bool {
	if o == nil {
		return false
	}
	idx, ok := o.FindItem(itemID)
	if !ok {
		return false
	}
	o.Items = append(o.Items[:idx:idx], o.Items[idx+1:]...)
	o.Recalculate()
	return true
}

func (o *Order) Recalculate() {
	total := 0.0
	for _, item := range o.Items {
		total += item.Subtotal
	}
	o.Total = total
}

func (o *Order) UpdateRequest() UpdateOrderRequest {
	req := UpdateOrderRequest{Items: make([]UpdateOrderItem, 0, len(o.Items))}
	for _, item := range o.Items {
		req.Items = append(req.Items, UpdateOrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return req
}

// SameAs reports whether two fetched orders carry the same data. A refetch
// that returns the same order keeps the diner's local edits.
func (o *Order) SameAs(other *Order) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.ID != other.ID || o.NomorMeja != other.NomorMeja || o.Locked != other.Locked ||
		o.Total != other.Total || len(o.Items) != len(other.Items) {
		return false
	}
	for i := range o.Items {
		if o.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}
