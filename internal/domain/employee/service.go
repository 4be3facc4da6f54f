package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, companyID string, id string) (EmployeeResponse, error)
	List(ctx context.Context, companyID string, activeOnly bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, companyID string, id string) error
}
