package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

const punchColumns = `
	id, employee_id, company_id, kind, timestamp, record_date,
	latitude, longitude, is_late, minutes_late, created_at
`

func scanPunch(row pgx.Row) (attendance.Punch, error) {
	var p attendance.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Kind, &p.Timestamp, &p.RecordDate,
		&p.Latitude, &p.Longitude, &p.IsLate, &p.MinutesLate, &p.CreatedAt,
	)
	return p, err
}

// CreateWithLateCount implements attendance.PunchRepository. The punch insert
// and the late counter increment commit or roll back together. The unique
// index on (employee_id, record_date, kind) is the dedupe backstop against
// concurrent submissions.
func (r *punchRepository) CreateWithLateCount(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO punches (
				id, employee_id, company_id, kind, timestamp, record_date,
				latitude, longitude, is_late, minutes_late
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at
		`

		err := q.QueryRow(txCtx, query,
			punch.ID,
			punch.EmployeeID,
			punch.CompanyID,
			punch.Kind,
			punch.Timestamp,
			punch.RecordDate,
			punch.Latitude,
			punch.Longitude,
			punch.IsLate,
			punch.MinutesLate,
		).Scan(&punch.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return attendance.ErrDuplicatePunch
			}
			return fmt.Errorf("failed to create punch: %w", err)
		}

		if punch.Kind == attendance.PunchEntrance && punch.IsLate {
			_, err := q.Exec(txCtx,
				`UPDATE employees SET late_count = late_count + 1, updated_at = NOW() WHERE id = $1`,
				punch.EmployeeID,
			)
			if err != nil {
				return fmt.Errorf("failed to increment late count: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return attendance.Punch{}, err
	}

	return punch, nil
}

// ListByEmployeeAndDate implements attendance.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1 AND record_date = $2 AND company_id = $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by date: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByEmployeeAndRange implements attendance.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		  AND record_date >= $2
		  AND record_date <= $3
		  AND company_id = $4
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by range: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByCompanyAndDate implements attendance.PunchRepository.
func (r *punchRepository) ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE company_id = $1 AND record_date = $2
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by company: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

func collectPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}
