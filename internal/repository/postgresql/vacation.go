package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/vacation"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type vacationRepository struct {
	db *database.DB
}

// Create implements vacation.VacationRepository.
func (r *vacationRepository) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (
			id, employee_id, company_id, start_date, end_date, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.CompanyID,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return req, nil
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepository) GetByID(ctx context.Context, id string, companyID string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vr.id, vr.employee_id, vr.company_id, vr.start_date, vr.end_date,
			   vr.reason, vr.status, vr.reviewed_at, vr.reviewed_by, vr.rejection_reason,
			   vr.created_at, vr.updated_at, e.name
		FROM vacation_requests vr
		JOIN employees e ON e.id = vr.employee_id
		WHERE vr.id = $1 AND vr.company_id = $2
	`

	var req vacation.VacationRequest
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.ReviewedAt, &req.ReviewedBy, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return vacation.VacationRequest{}, vacation.ErrRequestNotFound
		}
		return vacation.VacationRequest{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	return req, nil
}

// ListByEmployee implements vacation.VacationRepository.
func (r *vacationRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vr.id, vr.employee_id, vr.company_id, vr.start_date, vr.end_date,
			   vr.reason, vr.status, vr.reviewed_at, vr.reviewed_by, vr.rejection_reason,
			   vr.created_at, vr.updated_at, e.name
		FROM vacation_requests vr
		JOIN employees e ON e.id = vr.employee_id
		WHERE vr.employee_id = $1 AND vr.company_id = $2
		ORDER BY vr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	return collectVacationRequests(rows)
}

// ListByCompany implements vacation.VacationRepository.
func (r *vacationRepository) ListByCompany(ctx context.Context, companyID string, status *vacation.Status) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vr.id, vr.employee_id, vr.company_id, vr.start_date, vr.end_date,
			   vr.reason, vr.status, vr.reviewed_at, vr.reviewed_by, vr.rejection_reason,
			   vr.created_at, vr.updated_at, e.name
		FROM vacation_requests vr
		JOIN employees e ON e.id = vr.employee_id
		WHERE vr.company_id = $1
	`
	args := []any{companyID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND vr.status = $%d", len(args))
	}

	query += " ORDER BY vr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	return collectVacationRequests(rows)
}

// Update implements vacation.VacationRepository.
func (r *vacationRepository) Update(ctx context.Context, req vacation.VacationRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_requests
		SET status = $3,
			reviewed_at = $4,
			reviewed_by = $5,
			rejection_reason = $6,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		req.ID,
		req.CompanyID,
		req.Status,
		req.ReviewedAt,
		req.ReviewedBy,
		req.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to update vacation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrRequestNotFound
	}

	return nil
}

func collectVacationRequests(rows pgx.Rows) ([]vacation.VacationRequest, error) {
	var requests []vacation.VacationRequest
	for rows.Next() {
		var req vacation.VacationRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.CompanyID, &req.StartDate, &req.EndDate,
			&req.Reason, &req.Status, &req.ReviewedAt, &req.ReviewedBy, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vacation requests: %w", err)
	}

	return requests, nil
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}
