package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"peerskill/api/internal/models"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(ctx context.Context, notification models.Notification) error {
	const query = `
		INSERT INTO notifications (id, email, message, read, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		notification.ID,
		notification.Email,
		notification.Message,
		notification.Read,
	)
	return err
}

func (r *NotificationRepository) ListByEmail(ctx context.Context, email string) ([]models.Notification, error) {
	const query = `
		SELECT id, email, message, read, created_at
		FROM notifications
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.Email,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

// MarkRead flips the read flag for the given ids. The flag only ever moves
// false to true.
func (r *NotificationRepository) MarkRead(ctx context.Context, ids []string) error {
	const query = `UPDATE notifications SET read = TRUE WHERE id = ANY($1)`
	_, err := r.pool.Exec(ctx, query, ids)
	return err
}

func (r *NotificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	const query = `DELETE FROM notifications WHERE LOWER(email) = LOWER($1)`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}
