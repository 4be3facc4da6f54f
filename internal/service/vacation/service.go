package vacation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/vacation"
)

type VacationServiceImpl struct {
	vacation.VacationRepository
	notifications notification.NotificationService
	now           func() time.Time
}

func toVacationResponse(v vacation.VacationRequest) vacation.VacationResponse {
	resp := vacation.VacationResponse{
		ID:              v.ID,
		EmployeeID:      v.EmployeeID,
		StartDate:       v.StartDate.Format("2006-01-02"),
		EndDate:         v.EndDate.Format("2006-01-02"),
		Reason:          v.Reason,
		Status:          string(v.Status),
		RejectionReason: v.RejectionReason,
	}
	if v.EmployeeName != nil {
		resp.EmployeeName = *v.EmployeeName
	}
	if v.ReviewedAt != nil {
		reviewed := v.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

// Create implements vacation.VacationService.
func (s *VacationServiceImpl) Create(ctx context.Context, companyID, employeeID string, req vacation.CreateRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return vacation.VacationResponse{}, vacation.ErrInvalidDateRange
	}

	request := vacation.VacationRequest{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     vacation.StatusPending,
	}

	created, err := s.VacationRepository.Create(ctx, request)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	return toVacationResponse(created), nil
}

// ListMine implements vacation.VacationService.
func (s *VacationServiceImpl) ListMine(ctx context.Context, companyID, employeeID string) ([]vacation.VacationResponse, error) {
	requests, err := s.VacationRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	return toVacationResponses(requests), nil
}

// ListCompany implements vacation.VacationService.
func (s *VacationServiceImpl) ListCompany(ctx context.Context, companyID string, status *vacation.Status) ([]vacation.VacationResponse, error) {
	requests, err := s.VacationRepository.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	return toVacationResponses(requests), nil
}

// Approve implements vacation.VacationService. Only pending requests can be
// reviewed; the decision is final.
func (s *VacationServiceImpl) Approve(ctx context.Context, companyID, reviewerID, id string) (vacation.VacationResponse, error) {
	return s.review(ctx, companyID, reviewerID, id, vacation.StatusApproved, nil)
}

// Reject implements vacation.VacationService.
func (s *VacationServiceImpl) Reject(ctx context.Context, companyID, reviewerID string, req vacation.RejectRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}
	return s.review(ctx, companyID, reviewerID, req.ID, vacation.StatusRejected, &req.Reason)
}

func (s *VacationServiceImpl) review(ctx context.Context, companyID, reviewerID, id string, status vacation.Status, reason *string) (vacation.VacationResponse, error) {
	request, err := s.VacationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	if request.Status != vacation.StatusPending {
		return vacation.VacationResponse{}, vacation.ErrAlreadyProcessed
	}

	reviewedAt := s.now().UTC()
	request.Status = status
	request.ReviewedAt = &reviewedAt
	request.ReviewedBy = &reviewerID
	request.RejectionReason = reason

	if err := s.VacationRepository.Update(ctx, request); err != nil {
		return vacation.VacationResponse{}, err
	}

	if s.notifications != nil {
		approved := status == vacation.StatusApproved
		rejectionReason := ""
		if reason != nil {
			rejectionReason = *reason
		}
		// The review outcome stands even if the notification write fails.
		_ = s.notifications.NotifyVacationDecision(ctx, companyID, request.EmployeeID, approved, rejectionReason)
	}

	return toVacationResponse(request), nil
}

func toVacationResponses(requests []vacation.VacationRequest) []vacation.VacationResponse {
	responses := make([]vacation.VacationResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toVacationResponse(r))
	}
	return responses
}

func NewVacationService(
	vacationRepo vacation.VacationRepository,
	notificationService notification.NotificationService,
) vacation.VacationService {
	return &VacationServiceImpl{
		VacationRepository: vacationRepo,
		notifications:      notificationService,
		now:                time.Now,
	}
}
