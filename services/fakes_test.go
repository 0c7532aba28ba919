package services

import (
	"context"
	"sync"

	"ohio-order/models"
)

type fakeOrderAPI struct {
	mu        sync.Mutex
	order     *models.Order
	getErr    error
	updateErr error
	removeErr error
	updates   []models.UpdateOrderRequest
	removed   []string
	returned  *models.Order
}

func (f *fakeOrderAPI) GetCurrent(_ context.Context, _ models.Session) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.order.Clone(), nil
}

func (f *fakeOrderAPI) Update(_ context.Context, _ models.Session, req models.UpdateOrderRequest) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.returned.Clone(), nil
}

func (f *fakeOrderAPI) RemoveItem(_ context.Context, _ models.Session, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, itemID)
	return f.removeErr
}

type fakeCheckoutAPI struct {
	existing  *models.Checkout
	lookupErr error
	created   *models.Checkout
	createErr error
	lookups   int
	creates   int
}

func (f *fakeCheckoutAPI) GetCurrent(_ context.Context, _ models.Session) (*models.Checkout, error) {
	f.lookups++
	return f.existing, f.lookupErr
}

func (f *fakeCheckoutAPI) Create(_ context.Context, _ models.Session) (*models.Checkout, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(_ context.Context, a *models.OrderActivity) error {
	f.actions = append(f.actions, a.Action)
	return nil
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:        "order-1",
		NomorMeja: "7",
		Items: []models.OrderItem{
			{ID: "item-1", MenuItemID: "menu-1", MenuItemName: "Nasi Goreng", Price: 50000, Quantity: 2, Subtotal: 100000},
			{ID: "item-2", MenuItemID: "menu-2", MenuItemName: "Es Teh", Price: 8000, Quantity: 1, Subtotal: 8000},
		},
		Total: 108000,
	}
}

var testSession = models.Session{ID: "sess-1", TableID: "meja-7", NomorMeja: "7"}
