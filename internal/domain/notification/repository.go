package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByRecipient(ctx context.Context, recipient Recipient, companyID string, limit int) ([]Notification, error)
	UnreadCount(ctx context.Context, recipient Recipient, companyID string) (int, error)
	MarkAsRead(ctx context.Context, id string, recipient Recipient, companyID string) error
	MarkAllAsRead(ctx context.Context, recipient Recipient, companyID string) error
}
