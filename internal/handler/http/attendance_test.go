package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type stubAttendanceService struct {
	recorded []attendance.RecordPunchRequest
	err      error
}

func (s *stubAttendanceService) Record(_ context.Context, _, _ string, req attendance.RecordPunchRequest) (attendance.PunchResponse, error) {
	if s.err != nil {
		return attendance.PunchResponse{}, s.err
	}
	s.recorded = append(s.recorded, req)
	return attendance.PunchResponse{
		ID:         "punch-1",
		Kind:       req.Kind,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		RecordDate: "2026-03-02",
	}, nil
}

func (s *stubAttendanceService) TodaySummary(context.Context, string, string) (attendance.TodaySummaryResponse, error) {
	return attendance.TodaySummaryResponse{Date: "2026-03-02"}, nil
}

func (s *stubAttendanceService) PunchesInRange(context.Context, string, string, attendance.RangeFilter) ([]attendance.PunchResponse, error) {
	return nil, nil
}

func (s *stubAttendanceService) MonthlyStats(context.Context, string, string, int, int) (attendance.MonthlyStatsResponse, error) {
	return attendance.MonthlyStatsResponse{}, nil
}

func (s *stubAttendanceService) CompanyDailyReport(context.Context, string, time.Time) (attendance.DailyReportResponse, error) {
	return attendance.DailyReportResponse{Date: "2026-03-02"}, nil
}

// noopHandler satisfies every handler interface the router needs besides the
// one under test.
type noopHandler struct{}

func (noopHandler) AdminLogin(http.ResponseWriter, *http.Request)    {}
func (noopHandler) EmployeeLogin(http.ResponseWriter, *http.Request) {}
func (noopHandler) Calculate(http.ResponseWriter, *http.Request)     {}
func (noopHandler) Get(http.ResponseWriter, *http.Request)           {}
func (noopHandler) List(http.ResponseWriter, *http.Request)          {}
func (noopHandler) Update(http.ResponseWriter, *http.Request)        {}
func (noopHandler) CreateZone(http.ResponseWriter, *http.Request)    {}
func (noopHandler) ListZones(http.ResponseWriter, *http.Request)     {}
func (noopHandler) UpdateZone(http.ResponseWriter, *http.Request)    {}
func (noopHandler) DeleteZone(http.ResponseWriter, *http.Request)    {}
func (noopHandler) Create(http.ResponseWriter, *http.Request)        {}
func (noopHandler) Deactivate(http.ResponseWriter, *http.Request)    {}
func (noopHandler) Me(http.ResponseWriter, *http.Request)            {}
func (noopHandler) MarkAsRead(http.ResponseWriter, *http.Request)    {}
func (noopHandler) MarkAllAsRead(http.ResponseWriter, *http.Request) {}
func (noopHandler) ListMine(http.ResponseWriter, *http.Request)      {}
func (noopHandler) ListCompany(http.ResponseWriter, *http.Request)   {}
func (noopHandler) Approve(http.ResponseWriter, *http.Request)       {}
func (noopHandler) Reject(http.ResponseWriter, *http.Request)        {}

type stubHandlers struct {
	jwtService jwt.Service
	attendance *stubAttendanceService
	router     http.Handler
}

func newTestRouter(t *testing.T) *stubHandlers {
	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	attendanceSvc := &stubAttendanceService{}

	router := NewRouter(
		RouterConfig{FrontendURL: "http://localhost:3000", Environment: "test"},
		jwtService,
		noopHandler{},
		NewAttendanceHandler(attendanceSvc),
		noopHandler{},
		noopHandler{},
		noopHandler{},
		noopHandler{},
		noopHandler{},
	)

	return &stubHandlers{
		jwtService: jwtService,
		attendance: attendanceSvc,
		router:     router,
	}
}

func employeeToken(t *testing.T, s *stubHandlers) string {
	employeeID := "emp-1"
	token, _, err := s.jwtService.GenerateAccessToken("emp-1", "co-1", &employeeID, auth.RoleEmployee)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T, s *stubHandlers) string {
	token, _, err := s.jwtService.GenerateAccessToken("admin-1", "co-1", nil, auth.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestPunch_RequiresToken(t *testing.T) {
	s := newTestRouter(t)

	body, _ := json.Marshal(attendance.RecordPunchRequest{Kind: "entrance"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunch_EmployeeTokenAccepted(t *testing.T) {
	s := newTestRouter(t)

	body, _ := json.Marshal(attendance.RecordPunchRequest{Kind: "entrance"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, s))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, s.attendance.recorded, 1)
	assert.Equal(t, "entrance", s.attendance.recorded[0].Kind)
}

func TestPunch_AdminTokenForbidden(t *testing.T) {
	s := newTestRouter(t)

	body, _ := json.Marshal(attendance.RecordPunchRequest{Kind: "entrance"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken(t, s))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPunch_DuplicateMapsToConflict(t *testing.T) {
	s := newTestRouter(t)
	s.attendance.err = attendance.ErrDuplicatePunch

	body, _ := json.Marshal(attendance.RecordPunchRequest{Kind: "entrance"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, s))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPunch_OutsideGeofenceMapsToBadRequest(t *testing.T) {
	s := newTestRouter(t)
	s.attendance.err = attendance.ErrOutsideGeofence

	body, _ := json.Marshal(attendance.RecordPunchRequest{Kind: "entrance"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/punch", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, s))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDailyReport_AdminOnly(t *testing.T) {
	s := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/report?date=2026-03-02", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken(t, s))
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/attendance/report?date=2026-03-02", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, s))
	rec = httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
