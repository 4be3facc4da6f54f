package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/payroll"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type calculationRepository struct {
	db *database.DB
}

// Upsert implements payroll.CalculationRepository. A recomputation for the
// same (employee, period_start, period_end) key overwrites the stored row
// and keeps its original id and created_at.
func (r *calculationRepository) Upsert(ctx context.Context, calc payroll.Calculation) (payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_calculations (
			id, employee_id, company_id, period_start, period_end,
			total_hours_worked, late_incidents, total_late_minutes,
			total_earnings, total_deductions, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, period_start, period_end)
		DO UPDATE SET
			total_hours_worked = EXCLUDED.total_hours_worked,
			late_incidents = EXCLUDED.late_incidents,
			total_late_minutes = EXCLUDED.total_late_minutes,
			total_earnings = EXCLUDED.total_earnings,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		calc.ID,
		calc.EmployeeID,
		calc.CompanyID,
		calc.PeriodStart,
		calc.PeriodEnd,
		calc.TotalHoursWorked,
		calc.LateIncidents,
		calc.TotalLateMinutes,
		calc.TotalEarnings,
		calc.TotalDeductions,
		calc.NetPay,
	).Scan(&calc.ID, &calc.CreatedAt, &calc.UpdatedAt)

	if err != nil {
		return payroll.Calculation{}, fmt.Errorf("failed to upsert payroll calculation: %w", err)
	}

	return calc, nil
}

// GetByID implements payroll.CalculationRepository.
func (r *calculationRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pc.id, pc.employee_id, pc.company_id, pc.period_start, pc.period_end,
			   pc.total_hours_worked, pc.late_incidents, pc.total_late_minutes,
			   pc.total_earnings, pc.total_deductions, pc.net_pay,
			   pc.created_at, pc.updated_at, e.name
		FROM payroll_calculations pc
		JOIN employees e ON e.id = pc.employee_id
		WHERE pc.id = $1 AND pc.company_id = $2
	`

	var calc payroll.Calculation
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&calc.ID, &calc.EmployeeID, &calc.CompanyID, &calc.PeriodStart, &calc.PeriodEnd,
		&calc.TotalHoursWorked, &calc.LateIncidents, &calc.TotalLateMinutes,
		&calc.TotalEarnings, &calc.TotalDeductions, &calc.NetPay,
		&calc.CreatedAt, &calc.UpdatedAt, &calc.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Calculation{}, payroll.ErrCalculationNotFound
		}
		return payroll.Calculation{}, fmt.Errorf("failed to get payroll calculation: %w", err)
	}

	return calc, nil
}

// List implements payroll.CalculationRepository.
func (r *calculationRepository) List(ctx context.Context, companyID string, filter payroll.ListFilter) ([]payroll.Calculation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pc.id, pc.employee_id, pc.company_id, pc.period_start, pc.period_end,
			   pc.total_hours_worked, pc.late_incidents, pc.total_late_minutes,
			   pc.total_earnings, pc.total_deductions, pc.net_pay,
			   pc.created_at, pc.updated_at, e.name
		FROM payroll_calculations pc
		JOIN employees e ON e.id = pc.employee_id
		WHERE pc.company_id = $1
	`
	args := []any{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND pc.employee_id = $%d", len(args))
	}
	if filter.PeriodStart != nil {
		args = append(args, *filter.PeriodStart)
		query += fmt.Sprintf(" AND pc.period_start >= $%d", len(args))
	}
	if filter.PeriodEnd != nil {
		args = append(args, *filter.PeriodEnd)
		query += fmt.Sprintf(" AND pc.period_end <= $%d", len(args))
	}

	query += " ORDER BY pc.period_start DESC, e.name ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll calculations: %w", err)
	}
	defer rows.Close()

	var calcs []payroll.Calculation
	for rows.Next() {
		var calc payroll.Calculation
		err := rows.Scan(
			&calc.ID, &calc.EmployeeID, &calc.CompanyID, &calc.PeriodStart, &calc.PeriodEnd,
			&calc.TotalHoursWorked, &calc.LateIncidents, &calc.TotalLateMinutes,
			&calc.TotalEarnings, &calc.TotalDeductions, &calc.NetPay,
			&calc.CreatedAt, &calc.UpdatedAt, &calc.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll calculation: %w", err)
		}
		calcs = append(calcs, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll calculations: %w", err)
	}

	return calcs, nil
}

func NewCalculationRepository(db *database.DB) payroll.CalculationRepository {
	return &calculationRepository{db: db}
}
