package postgresql

import (
	"context"
	"fmt"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// Create implements notification.NotificationRepository. Data is stored as a
// jsonb column; pgx serializes the map directly.
func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (
			id, company_id, recipient_kind, recipient_id, type, title, message, data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING is_read, created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID,
		n.CompanyID,
		n.Recipient.Kind,
		n.Recipient.ID,
		n.Type,
		n.Title,
		n.Message,
		n.Data,
	).Scan(&n.IsRead, &n.CreatedAt)

	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByRecipient implements notification.NotificationRepository.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipient notification.Recipient, companyID string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, recipient_kind, recipient_id, type, title, message, data,
			   is_read, created_at
		FROM notifications
		WHERE recipient_kind = $1 AND recipient_id = $2 AND company_id = $3
		ORDER BY created_at DESC
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, recipient.Kind, recipient.ID, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID, &n.CompanyID, &n.Recipient.Kind, &n.Recipient.ID,
			&n.Type, &n.Title, &n.Message, &n.Data,
			&n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// UnreadCount implements notification.NotificationRepository.
func (r *notificationRepository) UnreadCount(ctx context.Context, recipient notification.Recipient, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_kind = $1 AND recipient_id = $2 AND company_id = $3 AND is_read = FALSE
	`

	var count int
	if err := q.QueryRow(ctx, query, recipient.Kind, recipient.ID, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead implements notification.NotificationRepository.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, recipient notification.Recipient, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_kind = $2 AND recipient_id = $3 AND company_id = $4
	`

	tag, err := q.Exec(ctx, query, id, recipient.Kind, recipient.ID, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead implements notification.NotificationRepository.
func (r *notificationRepository) MarkAllAsRead(ctx context.Context, recipient notification.Recipient, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE recipient_kind = $1 AND recipient_id = $2 AND company_id = $3 AND is_read = FALSE
	`

	if _, err := q.Exec(ctx, query, recipient.Kind, recipient.ID, companyID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}
