package attendance

import (
	"context"
	"time"
)

// PunchRepository is the punch ledger. CreateWithLateCount is the single
// atomic write: it inserts the punch and, when it is a late entrance, bumps
// the employee's late counter inside the same transaction, failing with
// ErrDuplicatePunch if a punch of the same kind already exists for the
// employee on that record date.
type PunchRepository interface {
	CreateWithLateCount(ctx context.Context, punch Punch) (Punch, error)

	// ListByEmployeeAndDate returns the employee's punches on one calendar
	// date, ordered by timestamp ascending.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]Punch, error)

	// ListByEmployeeAndRange returns punches with record_date within
	// [start, end] inclusive, ordered by timestamp ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]Punch, error)

	// ListByCompanyAndDate returns every punch in the company on one date.
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Punch, error)
}
