package employee

import (
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name            string           `json:"name"`
	DNI             string           `json:"dni"`
	JobPosition     string           `json:"job_position"`
	PIN             string           `json:"pin"` // optional, generated when empty
	HourlySalary    *decimal.Decimal `json:"hourly_salary,omitempty"`
	HourlyDeduction *decimal.Decimal `json:"hourly_deduction,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be 8 digits",
		})
	}

	if validator.IsEmpty(r.JobPosition) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_position",
			Message: "job_position is required",
		})
	}

	if r.PIN != "" && !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 digits",
		})
	}

	if r.HourlySalary != nil && r.HourlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_salary",
			Message: "must be non-negative",
		})
	}

	if r.HourlyDeduction != nil && r.HourlyDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_deduction",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID              string           `json:"-"`
	Name            *string          `json:"name,omitempty"`
	JobPosition     *string          `json:"job_position,omitempty"`
	PIN             *string          `json:"pin,omitempty"`
	HourlySalary    *decimal.Decimal `json:"hourly_salary,omitempty"`
	HourlyDeduction *decimal.Decimal `json:"hourly_deduction,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.PIN != nil && !validator.IsValidPIN(*r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 digits",
		})
	}

	if r.HourlySalary != nil && r.HourlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_salary",
			Message: "must be non-negative",
		})
	}

	if r.HourlyDeduction != nil && r.HourlyDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_deduction",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	DNI             string          `json:"dni"`
	JobPosition     string          `json:"job_position"`
	HourlySalary    decimal.Decimal `json:"hourly_salary"`
	HourlyDeduction decimal.Decimal `json:"hourly_deduction"`
	LateCount       int             `json:"late_count"`
	IsActive        bool            `json:"is_active"`
	// GeneratedPIN is only present on creation when the server generated it.
	GeneratedPIN string `json:"generated_pin,omitempty"`
}
