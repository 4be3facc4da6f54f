package company

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time as seconds since midnight. Comparing
// integers avoids the formatted-string comparisons the schedule otherwise
// invites.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

// TimeOfDayAt reduces an instant to its time-of-day in the given location.
func TimeOfDayAt(ts time.Time, loc *time.Location) TimeOfDay {
	local := ts.In(loc)
	return TimeOfDay(local.Hour()*3600 + local.Minute()*60 + local.Second())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)%3600/60, int(t)%60)
}

// Schedule is the company's expected working day. Fields are nil when the
// company has not configured them.
type Schedule struct {
	WorkStart  *TimeOfDay
	WorkEnd    *TimeOfDay
	LunchStart *TimeOfDay
	LunchEnd   *TimeOfDay
}

// EvaluateTardiness decides whether an entrance at ts is late against the
// schedule and, if so, how many whole minutes after WorkStart it happened.
// Minutes are truncated, never rounded up, and always counted from WorkStart
// even when a grace period widened the on-time window. Without a configured
// WorkStart lateness is undefined and the result is never late.
func (s Schedule) EvaluateTardiness(ts time.Time, loc *time.Location, graceMinutes int) (isLate bool, minutesLate int) {
	if s.WorkStart == nil {
		return false, 0
	}

	tod := TimeOfDayAt(ts, loc)
	limit := *s.WorkStart + TimeOfDay(graceMinutes*60)
	if tod <= limit {
		return false, 0
	}

	return true, int(tod-*s.WorkStart) / 60
}

// Validate checks the schedule's internal ordering.
func (s Schedule) Validate() error {
	if s.WorkStart != nil && s.WorkEnd != nil && *s.WorkEnd <= *s.WorkStart {
		return ErrInvalidSchedule
	}
	if s.LunchStart != nil && s.LunchEnd != nil && *s.LunchEnd <= *s.LunchStart {
		return ErrInvalidSchedule
	}
	return nil
}
