package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
)

const defaultListLimit = 50

type NotificationServiceImpl struct {
	notification.NotificationRepository
	employee.EmployeeRepository
}

func toNotificationResponse(n notification.Notification) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NotifyTardiness implements notification.NotificationService. The employee
// gets a personal notification; the note carries the minutes for display.
func (s *NotificationServiceImpl) NotifyTardiness(ctx context.Context, companyID, employeeID string, minutesLate int) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return err
	}

	n := notification.Notification{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CompanyID: companyID,
		Recipient: notification.EmployeeRecipient(employeeID),
		Type:      notification.TypeTardiness,
		Title:     "Late arrival registered",
		Message:   fmt.Sprintf("%s arrived %d minutes late", emp.Name, minutesLate),
		Data: map[string]any{
			"employee_id":  employeeID,
			"minutes_late": minutesLate,
		},
	}

	_, err = s.NotificationRepository.Create(ctx, n)
	return err
}

// NotifyVacationDecision implements notification.NotificationService.
func (s *NotificationServiceImpl) NotifyVacationDecision(ctx context.Context, companyID, employeeID string, approved bool, reason string) error {
	nType := notification.TypeVacationApproved
	title := "Vacation request approved"
	message := "Your vacation request was approved"
	if !approved {
		nType = notification.TypeVacationRejected
		title = "Vacation request rejected"
		message = "Your vacation request was rejected"
		if reason != "" {
			message = fmt.Sprintf("Your vacation request was rejected: %s", reason)
		}
	}

	n := notification.Notification{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CompanyID: companyID,
		Recipient: notification.EmployeeRecipient(employeeID),
		Type:      nType,
		Title:     title,
		Message:   message,
	}

	_, err := s.NotificationRepository.Create(ctx, n)
	return err
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, companyID string, recipient notification.Recipient, limit int) (notification.ListNotificationsResponse, error) {
	if !recipient.Valid() {
		return notification.ListNotificationsResponse{}, notification.ErrInvalidRecipient
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}

	notifications, err := s.NotificationRepository.ListByRecipient(ctx, recipient, companyID, limit)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	unread, err := s.NotificationRepository.UnreadCount(ctx, recipient, companyID)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}

	resp := notification.ListNotificationsResponse{
		UnreadCount:   unread,
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}

	return resp, nil
}

// MarkAsRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, companyID string, recipient notification.Recipient, id string) error {
	if !recipient.Valid() {
		return notification.ErrInvalidRecipient
	}
	return s.NotificationRepository.MarkAsRead(ctx, id, recipient, companyID)
}

// MarkAllAsRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, companyID string, recipient notification.Recipient) error {
	if !recipient.Valid() {
		return notification.ErrInvalidRecipient
	}
	return s.NotificationRepository.MarkAllAsRead(ctx, recipient, companyID)
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	employeeRepo employee.EmployeeRepository,
) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: notificationRepo,
		EmployeeRepository:     employeeRepo,
	}
}
