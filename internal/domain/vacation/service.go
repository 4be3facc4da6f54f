package vacation

import "context"

type VacationService interface {
	Create(ctx context.Context, companyID, employeeID string, req CreateRequest) (VacationResponse, error)
	ListMine(ctx context.Context, companyID, employeeID string) ([]VacationResponse, error)
	ListCompany(ctx context.Context, companyID string, status *Status) ([]VacationResponse, error)
	Approve(ctx context.Context, companyID, reviewerID, id string) (VacationResponse, error)
	Reject(ctx context.Context, companyID, reviewerID string, req RejectRequest) (VacationResponse, error)
}
