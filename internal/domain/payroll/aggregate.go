package payroll

import (
	"sort"
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
)

// DailySummary is one calendar date's paired punches reduced to minutes.
type DailySummary struct {
	Date          time.Time
	WorkedMinutes int
	IsLate        bool
	MinutesLate   int
}

// PeriodTotals accumulates daily summaries over an inclusive period.
type PeriodTotals struct {
	TotalWorkedMinutes int
	LateIncidents      int
	TotalLateMinutes   int
	DaysWorked         int
}

// HoursWorked is the period total as fractional hours.
func (t PeriodTotals) HoursWorked() float64 {
	return float64(t.TotalWorkedMinutes) / 60.0
}

// Aggregate groups punches by record date and computes per-day worked
// minutes and period totals. The ledger guarantees at most one punch per
// kind per date. A date missing its entrance or exit contributes zero
// worked minutes; a lunch interval is subtracted only when both lunch
// punches exist, and a day never contributes negative minutes. The
// result depends only on the punches passed in.
func Aggregate(punches []attendance.Punch) ([]DailySummary, PeriodTotals) {
	byDate := make(map[time.Time]map[attendance.PunchKind]attendance.Punch)
	for _, p := range punches {
		date := p.RecordDate
		if byDate[date] == nil {
			byDate[date] = make(map[attendance.PunchKind]attendance.Punch)
		}
		byDate[date][p.Kind] = p
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var summaries []DailySummary
	var totals PeriodTotals

	for _, date := range dates {
		day := byDate[date]
		summary := DailySummary{Date: date}

		entrance, hasEntrance := day[attendance.PunchEntrance]
		exit, hasExit := day[attendance.PunchExit]

		if hasEntrance && hasExit {
			minutes := int(exit.Timestamp.Sub(entrance.Timestamp).Minutes())

			lunchStart, hasLunchStart := day[attendance.PunchLunchStart]
			lunchEnd, hasLunchEnd := day[attendance.PunchLunchEnd]
			if hasLunchStart && hasLunchEnd {
				minutes -= int(lunchEnd.Timestamp.Sub(lunchStart.Timestamp).Minutes())
			}

			// Malformed days (exit before entrance, lunch wider than the
			// work interval) never contribute negative time.
			if minutes < 0 {
				minutes = 0
			}

			summary.WorkedMinutes = minutes
			totals.TotalWorkedMinutes += minutes
			totals.DaysWorked++
		}

		if hasEntrance && entrance.IsLate {
			summary.IsLate = true
			summary.MinutesLate = entrance.MinutesLate
			totals.LateIncidents++
			totals.TotalLateMinutes += entrance.MinutesLate
		}

		summaries = append(summaries, summary)
	}

	return summaries, totals
}
