package payroll

import (
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	EmployeeID  string `json:"employee_id,omitempty"` // empty = all active employees
	PeriodStart string `json:"period_start"`          // YYYY-MM-DD
	PeriodEnd   string `json:"period_end"`            // YYYY-MM-DD
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
	LateIncidents    int             `json:"late_incidents"`
	TotalLateMinutes int             `json:"total_late_minutes"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPay           decimal.Decimal `json:"net_pay"`
}

type CalculateResponse struct {
	PeriodStart  string                `json:"period_start"`
	PeriodEnd    string                `json:"period_end"`
	Calculations []CalculationResponse `json:"calculations"`
}

type ListRequest struct {
	EmployeeID  string `json:"employee_id,omitempty"`
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodStart != "" {
		if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "period_start",
				Message: "period_start must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PeriodEnd != "" {
		if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "period_end",
				Message: "period_end must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Limit < 0 || r.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
