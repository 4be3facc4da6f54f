package notification

import "context"

type NotificationService interface {
	// NotifyTardiness records a tardiness notification for the employee.
	NotifyTardiness(ctx context.Context, companyID, employeeID string, minutesLate int) error
	NotifyVacationDecision(ctx context.Context, companyID, employeeID string, approved bool, reason string) error

	List(ctx context.Context, companyID string, recipient Recipient, limit int) (ListNotificationsResponse, error)
	MarkAsRead(ctx context.Context, companyID string, recipient Recipient, id string) error
	MarkAllAsRead(ctx context.Context, companyID string, recipient Recipient) error
}
