package services

import (
	"context"
	"log"

	"ohio-order/models"
)

type CheckoutAPI interface {
	GetCurrent(ctx context.Context, sess models.Session) (*models.Checkout, error)
	Create(ctx context.Context, sess models.Session) (*models.Checkout, error)
}

type CheckoutService struct {
	checkouts CheckoutAPI
	guard     *ActionGuard
	activity  ActivityRecorder
}

func NewCheckoutService(checkouts CheckoutAPI, guard *ActionGuard, activity ActivityRecorder) *CheckoutService {
	return &CheckoutService{
		checkouts: checkouts,
		guard:     guard,
		activity:  recorderOrNoop(activity),
	}
}

// Proceed reuses the session's checkout when one exists and creates it
// otherwise. A lookup answered with 400 or 404, or with no checkout at all,
// means "no checkout yet"; any other lookup failure is returned without
// creating anything.
func (s *CheckoutService) Proceed(ctx context.Context, sess models.Session) (*models.CheckoutResult, error) {
	if !sess.Valid() {
		return nil, &UserError{Message: ErrNoSession.Error(), Err: ErrNoSession}
	}
	if !s.guard.Begin(sess.ID, ActionCheckout) {
		return nil, &UserError{Message: ErrActionPending.Error(), Err: ErrActionPending}
	}
	defer s.guard.End(sess.ID, ActionCheckout)

	existing, err := s.checkouts.GetCurrent(ctx, sess)
	if err != nil && !models.IsNoCheckout(err) {
		log.Printf("Checkout lookup for session %s failed: %v", sess.ID, err)
		record(ctx, s.activity, sess, "", models.ActivityCheckoutFailed, err.Error())
		return nil, &UserError{Message: models.MessageOr(err, "Failed to proceed to checkout"), Err: err}
	}
	if err == nil && existing != nil && existing.ID != "" {
		record(ctx, s.activity, sess, existing.OrderID, models.ActivityCheckoutReused, existing.ID)
		return &models.CheckoutResult{Checkout: existing, Created: false}, nil
	}

	created, err := s.checkouts.Create(ctx, sess)
	if err != nil {
		log.Printf("Checkout creation for session %s failed: %v", sess.ID, err)
		record(ctx, s.activity, sess, "", models.ActivityCheckoutFailed, err.Error())
		return nil, &UserError{Message: models.MessageOr(err, "Failed to create checkout"), Err: err}
	}

	record(ctx, s.activity, sess, created.OrderID, models.ActivityCheckoutNew, created.ID)
	return &models.CheckoutResult{Checkout: created, Created: true}, nil
}

func (s *CheckoutService) Current(ctx context.Context, sess models.Session) (*models.Checkout, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	checkout, err := s.checkouts.GetCurrent(ctx, sess)
	if err != nil {
		return nil, &UserError{Message: models.MessageOr(err, "Failed to load checkout"), Err: err}
	}
	if checkout == nil || checkout.ID == "" {
		return nil, &UserError{Message: "No checkout found"}
	}
	return checkout, nil
}
