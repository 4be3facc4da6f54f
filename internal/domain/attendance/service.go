package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// Record validates, geofence-checks and tardiness-checks a punch, then
	// writes it through the ledger.
	Record(ctx context.Context, companyID, employeeID string, req RecordPunchRequest) (PunchResponse, error)

	TodaySummary(ctx context.Context, companyID, employeeID string) (TodaySummaryResponse, error)
	PunchesInRange(ctx context.Context, companyID, employeeID string, filter RangeFilter) ([]PunchResponse, error)
	MonthlyStats(ctx context.Context, companyID, employeeID string, month, year int) (MonthlyStatsResponse, error)
	// CompanyDailyReport rolls up presence and tardiness for one date. A
	// zero date means today on the company's calendar.
	CompanyDailyReport(ctx context.Context, companyID string, date time.Time) (DailyReportResponse, error)
}
