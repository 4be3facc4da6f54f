package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/company"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

// Schedule boundaries are stored as seconds since local midnight, NULL when
// the boundary is not configured.
func scanTimeOfDay(v *int) *company.TimeOfDay {
	if v == nil {
		return nil
	}
	tod := company.TimeOfDay(*v)
	return &tod
}

func timeOfDayValue(t *company.TimeOfDay) *int {
	if t == nil {
		return nil
	}
	v := int(*t)
	return &v
}

// Create implements company.CompanyRepository.
func (r *companyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (
			id, name, timezone, late_threshold_minutes,
			work_start_seconds, work_end_seconds, lunch_start_seconds, lunch_end_seconds
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.ID,
		c.Name,
		c.Timezone,
		c.LateThresholdMinutes,
		timeOfDayValue(c.Schedule.WorkStart),
		timeOfDayValue(c.Schedule.WorkEnd),
		timeOfDayValue(c.Schedule.LunchStart),
		timeOfDayValue(c.Schedule.LunchEnd),
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return c, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, late_threshold_minutes,
			   work_start_seconds, work_end_seconds, lunch_start_seconds, lunch_end_seconds,
			   created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	var workStart, workEnd, lunchStart, lunchEnd *int
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Timezone, &c.LateThresholdMinutes,
		&workStart, &workEnd, &lunchStart, &lunchEnd,
		&c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	c.Schedule = company.Schedule{
		WorkStart:  scanTimeOfDay(workStart),
		WorkEnd:    scanTimeOfDay(workEnd),
		LunchStart: scanTimeOfDay(lunchStart),
		LunchEnd:   scanTimeOfDay(lunchEnd),
	}

	return c, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepository) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $2,
			timezone = $3,
			late_threshold_minutes = $4,
			work_start_seconds = $5,
			work_end_seconds = $6,
			lunch_start_seconds = $7,
			lunch_end_seconds = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Timezone,
		c.LateThresholdMinutes,
		timeOfDayValue(c.Schedule.WorkStart),
		timeOfDayValue(c.Schedule.WorkEnd),
		timeOfDayValue(c.Schedule.LunchStart),
		timeOfDayValue(c.Schedule.LunchEnd),
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// CreateZone implements company.CompanyRepository.
func (r *companyRepository) CreateZone(ctx context.Context, zone company.GeofenceZone) (company.GeofenceZone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofence_zones (
			id, company_id, name, latitude, longitude, radius_meters, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		zone.ID,
		zone.CompanyID,
		zone.Name,
		zone.Latitude,
		zone.Longitude,
		zone.RadiusMeters,
		zone.IsActive,
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)

	if err != nil {
		return company.GeofenceZone{}, fmt.Errorf("failed to create geofence zone: %w", err)
	}

	return zone, nil
}

// GetZoneByID implements company.CompanyRepository.
func (r *companyRepository) GetZoneByID(ctx context.Context, id string, companyID string) (company.GeofenceZone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, latitude, longitude, radius_meters, is_active,
			   created_at, updated_at
		FROM geofence_zones
		WHERE id = $1 AND company_id = $2
	`

	var zone company.GeofenceZone
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&zone.ID, &zone.CompanyID, &zone.Name,
		&zone.Latitude, &zone.Longitude, &zone.RadiusMeters, &zone.IsActive,
		&zone.CreatedAt, &zone.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return company.GeofenceZone{}, company.ErrZoneNotFound
		}
		return company.GeofenceZone{}, fmt.Errorf("failed to get geofence zone: %w", err)
	}

	return zone, nil
}

// ListZones implements company.CompanyRepository.
func (r *companyRepository) ListZones(ctx context.Context, companyID string, activeOnly bool) ([]company.GeofenceZone, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, latitude, longitude, radius_meters, is_active,
			   created_at, updated_at
		FROM geofence_zones
		WHERE company_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofence zones: %w", err)
	}
	defer rows.Close()

	var zones []company.GeofenceZone
	for rows.Next() {
		var zone company.GeofenceZone
		err := rows.Scan(
			&zone.ID, &zone.CompanyID, &zone.Name,
			&zone.Latitude, &zone.Longitude, &zone.RadiusMeters, &zone.IsActive,
			&zone.CreatedAt, &zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence zone: %w", err)
		}
		zones = append(zones, zone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate geofence zones: %w", err)
	}

	return zones, nil
}

// UpdateZone implements company.CompanyRepository.
func (r *companyRepository) UpdateZone(ctx context.Context, zone company.GeofenceZone) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE geofence_zones
		SET name = $3,
			latitude = $4,
			longitude = $5,
			radius_meters = $6,
			is_active = $7,
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		zone.ID,
		zone.CompanyID,
		zone.Name,
		zone.Latitude,
		zone.Longitude,
		zone.RadiusMeters,
		zone.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update geofence zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrZoneNotFound
	}

	return nil
}

// DeleteZone implements company.CompanyRepository.
func (r *companyRepository) DeleteZone(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM geofence_zones WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete geofence zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrZoneNotFound
	}

	return nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
