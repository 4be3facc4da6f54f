package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, req VacationRequest) (VacationRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (VacationRequest, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]VacationRequest, error)
	ListByCompany(ctx context.Context, companyID string, status *Status) ([]VacationRequest, error)
	Update(ctx context.Context, req VacationRequest) error
}
