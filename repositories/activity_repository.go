package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ohio-order/models"
)

// ActivityRepository stores the order activity log. A nil pool turns every
// call into a no-op.
type ActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Enabled() bool {
	return r != nil && r.db != nil
}

func (r *ActivityRepository) Record(ctx context.Context, activity *models.OrderActivity) error {
	if !r.Enabled() {
		return nil
	}
	query := `
		INSERT INTO order_activities (session_id, order_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	return r.db.QueryRow(ctx, query,
		activity.SessionID, activity.OrderID, activity.Action, activity.Detail, activity.CreatedAt,
	).Scan(&activity.ID)
}

func (r *ActivityRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]models.OrderActivity, error) {
	activities := []models.OrderActivity{}
	if !r.Enabled() {
		return activities, nil
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	query := `SELECT id, session_id, order_id, action, detail, created_at
	          FROM order_activities WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.OrderActivity
		if err := rows.Scan(&a.ID, &a.SessionID, &a.OrderID, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
