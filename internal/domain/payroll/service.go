package payroll

import "context"

type PayrollService interface {
	// Calculate recomputes payroll for one employee or for every active
	// employee of the company, upserting one result per (employee, period).
	Calculate(ctx context.Context, companyID string, req CalculateRequest) (CalculateResponse, error)

	Get(ctx context.Context, companyID string, id string) (CalculationResponse, error)
	List(ctx context.Context, companyID string, req ListRequest) ([]CalculationResponse, error)
}
