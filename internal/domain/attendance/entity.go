package attendance

import "time"

// PunchKind is one of the four attendance event types.
type PunchKind string

const (
	PunchEntrance   PunchKind = "entrance"
	PunchExit       PunchKind = "exit"
	PunchLunchStart PunchKind = "lunch_start"
	PunchLunchEnd   PunchKind = "lunch_end"
)

var PunchKindValues = []string{
	string(PunchEntrance),
	string(PunchExit),
	string(PunchLunchStart),
	string(PunchLunchEnd),
}

func (k PunchKind) Valid() bool {
	switch k {
	case PunchEntrance, PunchExit, PunchLunchStart, PunchLunchEnd:
		return true
	}
	return false
}

// Punch is a single attendance event. RecordDate is the employee's working
// day, derived once from Timestamp in the company timezone when the punch is
// recorded, and never recomputed. At most one punch per
// (employee, record_date, kind) exists.
type Punch struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Kind        PunchKind
	Timestamp   time.Time // stored UTC
	RecordDate  time.Time // date only, company-local calendar day
	Latitude    *float64
	Longitude   *float64
	IsLate      bool // meaningful for entrance punches only
	MinutesLate int
	CreatedAt   time.Time
}
