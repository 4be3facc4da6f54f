package attendance

import (
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/pkg/geo"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	Kind      string   `json:"kind"`
	Timestamp string   `json:"timestamp,omitempty"` // RFC3339; server time when empty
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, PunchKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: entrance, exit, lunch_start, lunch_end",
		})
	}

	if r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an ISO-8601 instant",
			})
		}
	}

	// Coordinates travel together or not at all.
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must both be provided",
		})
	}

	if r.Latitude != nil && !geo.ValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !geo.ValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// At resolves the punch instant: the provided timestamp, or now.
func (r *RecordPunchRequest) At(now time.Time) time.Time {
	if r.Timestamp == "" {
		return now.UTC()
	}
	ts, _ := validator.IsValidDateTime(r.Timestamp)
	return ts.UTC()
}

type PunchResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Timestamp   string `json:"timestamp"`
	RecordDate  string `json:"record_date"`
	IsLate      bool   `json:"is_late"`
	MinutesLate int    `json:"minutes_late"`
}

type RangeFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TodaySummaryResponse is the employee's working day at a glance.
type TodaySummaryResponse struct {
	Date       string         `json:"date"`
	Entrance   *PunchResponse `json:"entrance,omitempty"`
	LunchStart *PunchResponse `json:"lunch_start,omitempty"`
	LunchEnd   *PunchResponse `json:"lunch_end,omitempty"`
	Exit       *PunchResponse `json:"exit,omitempty"`
	TotalHours float64        `json:"total_hours"`
}

type MonthlyStatsResponse struct {
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	TotalDays          int     `json:"total_days"`
	LateDays           int     `json:"late_days"`
	OnTimeDays         int     `json:"on_time_days"`
	TotalLateMinutes   int     `json:"total_late_minutes"`
	AverageLateMinutes float64 `json:"average_late_minutes"`
}

type DailyReportRow struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	JobPosition  string         `json:"job_position"`
	IsPresent    bool           `json:"is_present"`
	IsLate       bool           `json:"is_late"`
	Entrance     *PunchResponse `json:"entrance,omitempty"`
	Exit         *PunchResponse `json:"exit,omitempty"`
}

type DailyReportResponse struct {
	Date           string           `json:"date"`
	TotalEmployees int              `json:"total_employees"`
	Present        int              `json:"present"`
	Absent         int              `json:"absent"`
	Late           int              `json:"late"`
	Employees      []DailyReportRow `json:"employees"`
}
