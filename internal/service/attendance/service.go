package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/company"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/notification"
)

type AttendanceServiceImpl struct {
	attendance.PunchRepository
	employee.EmployeeRepository
	company.CompanyRepository
	notifications notification.NotificationService
	defaultLoc    *time.Location
	now           func() time.Time
}

func toPunchResponse(p attendance.Punch) attendance.PunchResponse {
	return attendance.PunchResponse{
		ID:          p.ID,
		Kind:        string(p.Kind),
		Timestamp:   p.Timestamp.UTC().Format(time.RFC3339),
		RecordDate:  p.RecordDate.Format("2006-01-02"),
		IsLate:      p.IsLate,
		MinutesLate: p.MinutesLate,
	}
}

// Record implements attendance.AttendanceService.
//
// The pipeline is validate, geofence, tardiness, persist. RecordDate is
// derived once here, in the company timezone, and never recomputed.
func (s *AttendanceServiceImpl) Record(ctx context.Context, companyID, employeeID string, req attendance.RecordPunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}
	if !emp.IsActive {
		return attendance.PunchResponse{}, employee.ErrEmployeeInactive
	}

	comp, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	zones, err := s.CompanyRepository.ListZones(ctx, companyID, true)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	// No configured zones means no location restriction; otherwise the
	// punch must carry coordinates inside at least one zone.
	if len(zones) > 0 {
		if req.Latitude == nil || req.Longitude == nil {
			return attendance.PunchResponse{}, attendance.ErrOutsideGeofence
		}
		if !company.Admissible(*req.Latitude, *req.Longitude, zones) {
			return attendance.PunchResponse{}, attendance.ErrOutsideGeofence
		}
	}

	ts := req.At(s.now())
	loc := comp.Location(s.defaultLoc)

	punch := attendance.Punch{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Kind:       attendance.PunchKind(req.Kind),
		Timestamp:  ts,
		RecordDate: dateOnly(ts.In(loc)),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	if punch.Kind == attendance.PunchEntrance {
		punch.IsLate, punch.MinutesLate = comp.Schedule.EvaluateTardiness(ts, loc, comp.LateThresholdMinutes)
	}

	created, err := s.PunchRepository.CreateWithLateCount(ctx, punch)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	if created.IsLate && s.notifications != nil {
		// A lost notification must not fail the punch.
		_ = s.notifications.NotifyTardiness(ctx, companyID, employeeID, created.MinutesLate)
	}

	return toPunchResponse(created), nil
}

// TodaySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodaySummary(ctx context.Context, companyID, employeeID string) (attendance.TodaySummaryResponse, error) {
	comp, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return attendance.TodaySummaryResponse{}, err
	}

	today := dateOnly(s.now().In(comp.Location(s.defaultLoc)))

	punches, err := s.PunchRepository.ListByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.TodaySummaryResponse{}, err
	}

	summary := attendance.TodaySummaryResponse{Date: today.Format("2006-01-02")}
	byKind := map[attendance.PunchKind]attendance.Punch{}
	for _, p := range punches {
		byKind[p.Kind] = p
	}

	if p, ok := byKind[attendance.PunchEntrance]; ok {
		resp := toPunchResponse(p)
		summary.Entrance = &resp
	}
	if p, ok := byKind[attendance.PunchLunchStart]; ok {
		resp := toPunchResponse(p)
		summary.LunchStart = &resp
	}
	if p, ok := byKind[attendance.PunchLunchEnd]; ok {
		resp := toPunchResponse(p)
		summary.LunchEnd = &resp
	}
	if p, ok := byKind[attendance.PunchExit]; ok {
		resp := toPunchResponse(p)
		summary.Exit = &resp
	}

	summary.TotalHours = workedHours(byKind)

	return summary, nil
}

// PunchesInRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchesInRange(ctx context.Context, companyID, employeeID string, filter attendance.RangeFilter) ([]attendance.PunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toPunchResponse(p))
	}

	return responses, nil
}

// MonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyStats(ctx context.Context, companyID, employeeID string, month, year int) (attendance.MonthlyStatsResponse, error) {
	if month < 1 || month > 12 {
		return attendance.MonthlyStatsResponse{}, fmt.Errorf("month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end, companyID)
	if err != nil {
		return attendance.MonthlyStatsResponse{}, err
	}

	stats := attendance.MonthlyStatsResponse{Month: month, Year: year}
	for _, p := range punches {
		if p.Kind != attendance.PunchEntrance {
			continue
		}
		stats.TotalDays++
		if p.IsLate {
			stats.LateDays++
			stats.TotalLateMinutes += p.MinutesLate
		} else {
			stats.OnTimeDays++
		}
	}

	if stats.LateDays > 0 {
		stats.AverageLateMinutes = float64(stats.TotalLateMinutes) / float64(stats.LateDays)
	}

	return stats, nil
}

// CompanyDailyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CompanyDailyReport(ctx context.Context, companyID string, date time.Time) (attendance.DailyReportResponse, error) {
	employees, err := s.EmployeeRepository.ListByCompany(ctx, companyID, true)
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	// A zero date means today, resolved on the company's calendar the same
	// way TodaySummary resolves it.
	if date.IsZero() {
		comp, err := s.CompanyRepository.GetByID(ctx, companyID)
		if err != nil {
			return attendance.DailyReportResponse{}, err
		}
		date = s.now().In(comp.Location(s.defaultLoc))
	}
	date = dateOnly(date)

	punches, err := s.PunchRepository.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	type dayPunches struct {
		entrance *attendance.Punch
		exit     *attendance.Punch
	}
	byEmployee := map[string]*dayPunches{}
	for i := range punches {
		p := punches[i]
		dp := byEmployee[p.EmployeeID]
		if dp == nil {
			dp = &dayPunches{}
			byEmployee[p.EmployeeID] = dp
		}
		switch p.Kind {
		case attendance.PunchEntrance:
			dp.entrance = &p
		case attendance.PunchExit:
			dp.exit = &p
		}
	}

	report := attendance.DailyReportResponse{
		Date:           date.Format("2006-01-02"),
		TotalEmployees: len(employees),
		Employees:      make([]attendance.DailyReportRow, 0, len(employees)),
	}

	for _, emp := range employees {
		row := attendance.DailyReportRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			JobPosition:  emp.JobPosition,
		}

		if dp := byEmployee[emp.ID]; dp != nil && dp.entrance != nil {
			row.IsPresent = true
			row.IsLate = dp.entrance.IsLate
			resp := toPunchResponse(*dp.entrance)
			row.Entrance = &resp
			if dp.exit != nil {
				exitResp := toPunchResponse(*dp.exit)
				row.Exit = &exitResp
			}
			report.Present++
			if row.IsLate {
				report.Late++
			}
		} else {
			report.Absent++
		}

		report.Employees = append(report.Employees, row)
	}

	return report, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// workedHours mirrors the period aggregation rule for a single day: both
// entrance and exit must exist for any credit, lunch is subtracted only when
// both of its punches exist.
func workedHours(byKind map[attendance.PunchKind]attendance.Punch) float64 {
	entrance, hasEntrance := byKind[attendance.PunchEntrance]
	exit, hasExit := byKind[attendance.PunchExit]
	if !hasEntrance || !hasExit {
		return 0
	}

	worked := exit.Timestamp.Sub(entrance.Timestamp)

	lunchStart, hasLunchStart := byKind[attendance.PunchLunchStart]
	lunchEnd, hasLunchEnd := byKind[attendance.PunchLunchEnd]
	if hasLunchStart && hasLunchEnd {
		worked -= lunchEnd.Timestamp.Sub(lunchStart.Timestamp)
	}

	if worked < 0 {
		return 0
	}
	return worked.Minutes() / 60
}

func NewAttendanceService(
	punchRepo attendance.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	notificationService notification.NotificationService,
	defaultLoc *time.Location,
) attendance.AttendanceService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &AttendanceServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
		notifications:      notificationService,
		defaultLoc:         defaultLoc,
		now:                time.Now,
	}
}
