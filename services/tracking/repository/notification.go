package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shegerlabs/transitlive/internal/pkg/models"
)

// NotificationRepo appends durable notification records for the persistence
// collaborator. Append-only: no update or delete path exists.
type NotificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a notification repository
func NewNotificationRepo(db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Insert appends one notification record.
func (r *NotificationRepo) Insert(ctx context.Context, notification *models.Notification) error {
	query := `INSERT INTO notifications (id, subject_actor_id, kind, payload, created_at)
		VALUES (:id, :subject_actor_id, :kind, :payload, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
