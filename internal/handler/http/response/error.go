package response

import (
	"errors"
	"net/http"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/company"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/payroll"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/vacation"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrProfileNotFound):
		NotFound(w, "Profile not found")

	// Attendance
	case errors.Is(err, attendance.ErrDuplicatePunch):
		Conflict(w, "A punch of that kind already exists for today")
	case errors.Is(err, attendance.ErrOutsideGeofence):
		BadRequest(w, "You are outside the allowed location", nil)
	case errors.Is(err, attendance.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Company
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrZoneNotFound):
		NotFound(w, "Geofence zone not found")
	case errors.Is(err, company.ErrInvalidSchedule):
		BadRequest(w, "Schedule end must be after its start", nil)

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "An employee with that DNI already exists")

	// Payroll
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period end must not be before period start", nil)
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Payroll calculation not found")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidRecipient):
		BadRequest(w, "Invalid notification recipient", nil)

	// Vacations
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrAlreadyProcessed):
		Conflict(w, "Vacation request already processed")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "Vacation end date must not be before its start date", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
