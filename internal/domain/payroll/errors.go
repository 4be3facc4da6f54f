package payroll

import "errors"

// Payroll domain errors
var (
	ErrInvalidPeriod       = errors.New("period end must not be before period start")
	ErrCalculationNotFound = errors.New("payroll calculation not found")
)
