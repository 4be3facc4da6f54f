package payroll

import (
	"context"
	"time"
)

// CalculationRepository stores derived payroll results. Upsert overwrites an
// existing row for the same (employee, period_start, period_end) key instead
// of inserting a duplicate.
type CalculationRepository interface {
	Upsert(ctx context.Context, calc Calculation) (Calculation, error)
	GetByID(ctx context.Context, id string, companyID string) (Calculation, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Calculation, error)
}

type ListFilter struct {
	EmployeeID  *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Limit       int
}
