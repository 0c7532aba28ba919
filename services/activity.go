package services

import (
	"context"
	"log"

	"ohio-order/models"
)

type ActivityRecorder interface {
	Record(ctx context.Context, activity *models.OrderActivity) error
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, *models.OrderActivity) error { return nil }

func recorderOrNoop(r ActivityRecorder) ActivityRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

// record never fails the caller's action.
func record(ctx context.Context, r ActivityRecorder, sess models.Session, orderID, action, detail string) {
	err := r.Record(ctx, &models.OrderActivity{
		SessionID: sess.ID,
		OrderID:   orderID,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		log.Printf("Failed to record %s activity for session %s: %v", action, sess.ID, err)
	}
}
