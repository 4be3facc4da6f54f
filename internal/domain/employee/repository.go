package employee

import "context"

// EmployeeRepository defines data access methods for employees. All reads
// take companyID to prevent cross-company access.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByDNI(ctx context.Context, dni string) (Employee, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Deactivate(ctx context.Context, id string, companyID string) error
}
