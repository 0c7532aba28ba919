package services

import (
	"context"
	"errors"
	"log"

	"ohio-order/models"
)

type OrderAPI interface {
	GetCurrent(ctx context.Context, sess models.Session) (*models.Order, error)
	Update(ctx context.Context, sess models.Session, req models.UpdateOrderRequest) (*models.Order, error)
	RemoveItem(ctx context.Context, sess models.Session, itemID string) error
}

type CheckoutFlow interface {
	Proceed(ctx context.Context, sess models.Session) (*models.CheckoutResult, error)
}

// OrderService owns the diner's order draft: local quantity edits, the
// unsaved-changes flag, both confirmation dialogs and the toasts produced by
// settled actions.
type OrderService struct {
	orders   OrderAPI
	checkout CheckoutFlow
	drafts   DraftStore
	guard    *ActionGuard
	activity ActivityRecorder

	// locks guard read-modify-write of each session's draft; a lock is never
	// held across a call to the order API.
	locks *sessionLocks
}

func NewOrderService(orders OrderAPI, checkout CheckoutFlow, drafts DraftStore, guard *ActionGuard, activity ActivityRecorder) *OrderService {
	return &OrderService{
		orders:   orders,
		checkout: checkout,
		drafts:   drafts,
		guard:    guard,
		activity: recorderOrNoop(activity),
		locks:    newSessionLocks(),
	}
}

// Load fetches the session's order and returns the page view. Fresh server
// data replaces the local copy and clears the unsaved flag; an unchanged
// refetch keeps local edits. Toasts are handed out once.
func (s *OrderService) Load(ctx context.Context, sess models.Session) (*models.PesananView, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}

	order, err := s.orders.GetCurrent(ctx, sess)
	if err != nil {
		log.Printf("Fetching order for session %s failed: %v", sess.ID, err)
		return nil, &UserError{Message: models.MessageOr(err, ErrNoOrder.Error()), Err: err}
	}

	unlock := s.locks.lock(sess.ID)
	defer unlock()

	d, err := s.drafts.Get(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = &models.Draft{}
	}
	if d.Server == nil || !d.Server.SameAs(order) {
		d.Server = order
		d.Local = order.Clone()
		d.HasUnsavedChanges = false
	}
	if d.PendingDelete != "" {
		if _, ok := d.Local.FindItem(d.PendingDelete); !ok || d.Locked() {
			d.CloseDeleteDialog()
		}
	}

	view := s.view(sess, d)
	d.Toasts = nil
	if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *OrderService) view(sess models.Session, d *models.Draft) *models.PesananView {
	v := &models.PesananView{
		Order:               d.Local,
		NomorMeja:           sess.NomorMeja,
		Locked:              d.Locked(),
		HasUnsavedChanges:   d.HasUnsavedChanges,
		PendingDelete:       d.PendingDelete,
		ShowDeleteConfirm:   d.ShowDeleteConfirm,
		ShowCheckoutConfirm: d.ShowCheckoutConfirm,
		Pending: models.PendingState{
			Save:     s.guard.Pending(sess.ID, ActionSave),
			Remove:   s.guard.Pending(sess.ID, ActionRemove),
			Checkout: s.guard.Pending(sess.ID, ActionCheckout),
		},
		Toasts: d.Toasts,
	}
	if d.Server != nil && d.Server.NomorMeja != "" {
		v.NomorMeja = d.Server.NomorMeja
	}
	v.CanSave = v.HasUnsavedChanges && !v.Locked
	v.CanCheckout = !v.Empty() && !v.Pending.Save
	return v
}

func (s *OrderService) getDraft(ctx context.Context, sess models.Session) (*models.Draft, error) {
	d, err := s.drafts.Get(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if d == nil || d.Local == nil {
		return nil, ErrNoOrder
	}
	return d, nil
}

func (s *OrderService) withDraft(ctx context.Context, sess models.Session, fn func(d *models.Draft) error) (*models.Draft, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}

	unlock := s.locks.lock(sess.ID)
	defer unlock()

	d, err := s.getDraft(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *OrderService) editBlocked(sess models.Session) bool {
	return s.guard.Pending(sess.ID, ActionSave) || s.guard.Pending(sess.ID, ActionRemove)
}

func (s *OrderService) IncreaseQuantity(ctx context.Context, sess models.Session, itemID string) (*models.Order, error) {
	if s.editBlocked(sess) {
		return nil, ErrActionPending
	}
	d, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		if d.Locked() {
			return models.ErrOrderLocked
		}
		idx, ok := d.Local.FindItem(itemID)
		if !ok {
			return models.ErrItemNotFound
		}
		if err := d.Local.SetQuantity(itemID, d.Local.Items[idx].Quantity+1); err != nil {
			return err
		}
		d.HasUnsavedChanges = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d.Local, nil
}

// DecreaseQuantity lowers an item's quantity by one. At quantity one it opens
// the delete confirmation instead and reports removalRequested.
func (s *OrderService) DecreaseQuantity(ctx context.Context, sess models.Session, itemID string) (order *models.Order, removalRequested bool, err error) {
	if s.editBlocked(sess) {
		return nil, false, ErrActionPending
	}
	d, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		if d.Locked() {
			return models.ErrOrderLocked
		}
		idx, ok := d.Local.FindItem(itemID)
		if !ok {
			return models.ErrItemNotFound
		}
		if d.Local.Items[idx].Quantity <= 1 {
			d.PendingDelete = itemID
			d.ShowDeleteConfirm = true
			removalRequested = true
			return nil
		}
		if err := d.Local.SetQuantity(itemID, d.Local.Items[idx].Quantity-1); err != nil {
			return err
		}
		d.HasUnsavedChanges = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return d.Local, removalRequested, nil
}

// Save sends every local item's menu item id and quantity to the order API.
// On failure the local copy and the unsaved flag are left as they were.
func (s *OrderService) Save(ctx context.Context, sess models.Session) (*models.Order, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if !s.guard.Begin(sess.ID, ActionSave) {
		return nil, ErrActionPending
	}
	defer s.guard.End(sess.ID, ActionSave)

	unlock := s.locks.lock(sess.ID)
	d, err := s.getDraft(ctx, sess)
	unlock()
	if err != nil {
		return nil, err
	}
	if d.Locked() {
		return nil, models.ErrOrderLocked
	}

	updated, apiErr := s.orders.Update(ctx, sess, d.Local.UpdateRequest())

	unlock = s.locks.lock(sess.ID)
	defer unlock()

	d, err = s.getDraft(ctx, sess)
	if err != nil {
		return nil, err
	}

	if apiErr != nil {
		log.Printf("Saving order %s for session %s failed: %v", d.Local.ID, sess.ID, apiErr)
		msg := models.MessageOr(apiErr, "Failed to save order")
		d.Fail("Save Failed", msg)
		if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
			return nil, err
		}
		record(ctx, s.activity, sess, d.Local.ID, models.ActivitySaveFailed, msg)
		return nil, &UserError{Message: msg, Err: apiErr}
	}

	d.HasUnsavedChanges = false
	if updated != nil {
		d.Server = updated
		d.Local = updated.Clone()
	} else {
		d.Server = d.Local.Clone()
	}
	d.Notify("Order Saved", "Your order has been saved successfully.")
	if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
		return nil, err
	}
	record(ctx, s.activity, sess, d.Local.ID, models.ActivitySaved, "")
	return d.Local, nil
}

// RequestRemove opens the delete confirmation for one item.
func (s *OrderService) RequestRemove(ctx context.Context, sess models.Session, itemID string) error {
	_, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		if d.Locked() {
			return models.ErrOrderLocked
		}
		if _, ok := d.Local.FindItem(itemID); !ok {
			return models.ErrItemNotFound
		}
		d.PendingDelete = itemID
		d.ShowDeleteConfirm = true
		return nil
	})
	return err
}

func (s *OrderService) CancelRemove(ctx context.Context, sess models.Session) error {
	_, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		d.CloseDeleteDialog()
		return nil
	})
	return err
}

// ConfirmRemove removes the item selected in the delete dialog. Whatever the
// outcome, the dialog is closed and the selection cleared. It returns the id
// of the item it tried to remove, or "" when nothing was selected.
func (s *OrderService) ConfirmRemove(ctx context.Context, sess models.Session) (string, error) {
	if !sess.Valid() {
		return "", ErrNoSession
	}

	unlock := s.locks.lock(sess.ID)
	d, err := s.getDraft(ctx, sess)
	unlock()
	if err != nil {
		return "", err
	}
	itemID := d.PendingDelete
	if itemID == "" {
		return "", nil
	}
	if d.Locked() {
		if _, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
			d.CloseDeleteDialog()
			return nil
		}); err != nil {
			return "", err
		}
		return itemID, models.ErrOrderLocked
	}

	if !s.guard.Begin(sess.ID, ActionRemove) {
		return "", ErrActionPending
	}
	defer s.guard.End(sess.ID, ActionRemove)

	apiErr := s.orders.RemoveItem(ctx, sess, itemID)

	var msg string
	_, err = s.withDraft(ctx, sess, func(d *models.Draft) error {
		d.CloseDeleteDialog()
		if apiErr != nil {
			msg = models.MessageOr(apiErr, "Failed to remove item")
			d.Fail("Remove Failed", msg)
			return nil
		}
		d.Local.RemoveItem(itemID)
		d.Server.RemoveItem(itemID)
		d.Notify("Item Removed", "Item has been removed from your order.")
		return nil
	})
	if err != nil {
		return itemID, err
	}

	if apiErr != nil {
		log.Printf("Removing item %s for session %s failed: %v", itemID, sess.ID, apiErr)
		record(ctx, s.activity, sess, d.Local.ID, models.ActivityRemoveFailed, itemID+": "+msg)
		return itemID, &UserError{Message: msg, Err: apiErr}
	}
	record(ctx, s.activity, sess, d.Local.ID, models.ActivityItemRemoved, itemID)
	return itemID, nil
}

// RemoveItem asks for and confirms the removal of one item in a single call.
func (s *OrderService) RemoveItem(ctx context.Context, sess models.Session, itemID string) error {
	if s.guard.Pending(sess.ID, ActionRemove) {
		return ErrActionPending
	}
	if err := s.RequestRemove(ctx, sess, itemID); err != nil {
		return err
	}
	_, err := s.ConfirmRemove(ctx, sess)
	return err
}

func (s *OrderService) OpenCheckout(ctx context.Context, sess models.Session) error {
	if s.guard.Pending(sess.ID, ActionSave) {
		return ErrActionPending
	}
	_, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		if len(d.Local.Items) == 0 {
			return ErrEmptyOrder
		}
		d.ShowCheckoutConfirm = true
		return nil
	})
	return err
}

func (s *OrderService) CancelCheckout(ctx context.Context, sess models.Session) error {
	_, err := s.withDraft(ctx, sess, func(d *models.Draft) error {
		d.ShowCheckoutConfirm = false
		return nil
	})
	return err
}

// ConfirmCheckout runs the checkout flow and closes the confirmation dialog
// once it settles.
func (s *OrderService) ConfirmCheckout(ctx context.Context, sess models.Session) (*models.CheckoutResult, error) {
	if !sess.Valid() {
		return nil, &UserError{Message: ErrNoSession.Error(), Err: ErrNoSession}
	}
	if s.guard.Pending(sess.ID, ActionSave) {
		return nil, ErrActionPending
	}

	unlock := s.locks.lock(sess.ID)
	_, err := s.getDraft(ctx, sess)
	unlock()
	if err != nil {
		return nil, err
	}

	result, flowErr := s.checkout.Proceed(ctx, sess)

	_, err = s.withDraft(ctx, sess, func(d *models.Draft) error {
		d.ShowCheckoutConfirm = false
		switch {
		case flowErr != nil:
			d.Fail("Checkout Failed", flowErr.Error())
		case result.Created:
			d.Notify("Checkout Created", "Proceeding to checkout...")
		default:
			d.Notify("Proceeding to Checkout", "Taking you to your existing checkout...")
		}
		return nil
	})
	if flowErr != nil {
		return nil, flowErr
	}
	if err != nil && !errors.Is(err, ErrNoOrder) {
		return nil, err
	}
	return result, nil
}

// TakeToasts hands out and clears the toasts queued for the session.
func (s *OrderService) TakeToasts(ctx context.Context, sess models.Session) []models.Toast {
	if !sess.Valid() {
		return nil
	}
	unlock := s.locks.lock(sess.ID)
	defer unlock()

	d, err := s.drafts.Get(ctx, sess.ID)
	if err != nil || d == nil || len(d.Toasts) == 0 {
		return nil
	}
	toasts := d.Toasts
	d.Toasts = nil
	if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
		log.Printf("Failed to clear toasts for session %s: %v", sess.ID, err)
	}
	return toasts
}

// Warn queues a destructive toast for the next render.
func (s *OrderService) Warn(ctx context.Context, sess models.Session, title, description string) {
	if !sess.Valid() {
		return
	}
	unlock := s.locks.lock(sess.ID)
	defer unlock()

	d, err := s.drafts.Get(ctx, sess.ID)
	if err != nil {
		log.Printf("Failed to load draft for session %s: %v", sess.ID, err)
		return
	}
	if d == nil {
		d = &models.Draft{}
	}
	d.Fail(title, description)
	if err := s.drafts.Put(ctx, sess.ID, d); err != nil {
		log.Printf("Failed to queue toast for session %s: %v", sess.ID, err)
	}
}
