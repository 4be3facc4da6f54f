package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// recipientFromClaims addresses the caller: employees get their employee
// inbox, admins their profile inbox.
func recipientFromClaims(claims middleware.Claims) notification.Recipient {
	if claims.Role == auth.RoleEmployee {
		return notification.EmployeeRecipient(claims.EmployeeID)
	}
	return notification.AdminRecipient(claims.SubjectID)
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		limit = parsed
	}

	resp, err := h.notificationService.List(r.Context(), claims.CompanyID, recipientFromClaims(claims), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MarkAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	err := h.notificationService.MarkAsRead(r.Context(), claims.CompanyID, recipientFromClaims(claims), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllAsRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	err := h.notificationService.MarkAllAsRead(r.Context(), claims.CompanyID, recipientFromClaims(claims))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}
