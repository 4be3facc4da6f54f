package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVacationRepo struct {
	requests map[string]vacation.VacationRequest
}

func (f *fakeVacationRepo) Create(_ context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeVacationRepo) GetByID(_ context.Context, id string, companyID string) (vacation.VacationRequest, error) {
	req, ok := f.requests[id]
	if !ok || req.CompanyID != companyID {
		return vacation.VacationRequest{}, vacation.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeVacationRepo) ListByEmployee(_ context.Context, employeeID string, companyID string) ([]vacation.VacationRequest, error) {
	var out []vacation.VacationRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) ListByCompany(_ context.Context, companyID string, status *vacation.Status) ([]vacation.VacationRequest, error) {
	var out []vacation.VacationRequest
	for _, req := range f.requests {
		if req.CompanyID == companyID && (status == nil || req.Status == *status) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeVacationRepo) Update(_ context.Context, req vacation.VacationRequest) error {
	f.requests[req.ID] = req
	return nil
}

type decision struct {
	employeeID string
	approved   bool
	reason     string
}

type fakeNotifier struct {
	decisions []decision
}

func (f *fakeNotifier) NotifyTardiness(context.Context, string, string, int) error { return nil }

func (f *fakeNotifier) NotifyVacationDecision(_ context.Context, _ string, employeeID string, approved bool, reason string) error {
	f.decisions = append(f.decisions, decision{employeeID, approved, reason})
	return nil
}

func (f *fakeNotifier) List(context.Context, string, notification.Recipient, int) (notification.ListNotificationsResponse, error) {
	return notification.ListNotificationsResponse{}, nil
}

func (f *fakeNotifier) MarkAsRead(context.Context, string, notification.Recipient, string) error {
	return nil
}

func (f *fakeNotifier) MarkAllAsRead(context.Context, string, notification.Recipient) error {
	return nil
}

func fixture() (*fakeVacationRepo, *fakeNotifier, vacation.VacationService) {
	repo := &fakeVacationRepo{requests: map[string]vacation.VacationRequest{}}
	notifier := &fakeNotifier{}
	svc := NewVacationService(repo, notifier)
	return repo, notifier, svc
}

func TestCreate_Pending(t *testing.T) {
	ctx := context.Background()
	_, _, svc := fixture()

	resp, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)
	assert.Equal(t, string(vacation.StatusPending), resp.Status)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	_, _, svc := fixture()

	_, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-10",
		EndDate:   "2026-07-01",
	})
	assert.Error(t, err)
}

func TestApprove_NotifiesEmployee(t *testing.T) {
	ctx := context.Background()
	_, notifier, svc := fixture()

	created, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, "co-1", "admin-1", created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(vacation.StatusApproved), resp.Status)
	require.NotNil(t, resp.ReviewedAt)
	require.Len(t, notifier.decisions, 1)
	assert.True(t, notifier.decisions[0].approved)
	assert.Equal(t, "emp-1", notifier.decisions[0].employeeID)
}

func TestReject_CarriesReason(t *testing.T) {
	ctx := context.Background()
	_, notifier, svc := fixture()

	created, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, "co-1", "admin-1", vacation.RejectRequest{
		ID:     created.ID,
		Reason: "coverage gap",
	})
	require.NoError(t, err)

	assert.Equal(t, string(vacation.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "coverage gap", *resp.RejectionReason)
	require.Len(t, notifier.decisions, 1)
	assert.False(t, notifier.decisions[0].approved)
	assert.Equal(t, "coverage gap", notifier.decisions[0].reason)
}

func TestReview_IsFinal(t *testing.T) {
	ctx := context.Background()
	_, _, svc := fixture()

	created, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "co-1", "admin-1", created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, "co-1", "admin-1", created.ID)
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)

	_, err = svc.Reject(ctx, "co-1", "admin-1", vacation.RejectRequest{ID: created.ID, Reason: "late"})
	assert.ErrorIs(t, err, vacation.ErrAlreadyProcessed)
}

func TestReject_RequiresReason(t *testing.T) {
	ctx := context.Background()
	_, _, svc := fixture()

	created, err := svc.Create(ctx, "co-1", "emp-1", vacation.CreateRequest{
		StartDate: "2026-07-01",
		EndDate:   "2026-07-10",
	})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, "co-1", "admin-1", vacation.RejectRequest{ID: created.ID})
	assert.Error(t, err)
}
