package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

// GetByEmail implements auth.ProfileRepository. Email comparison is
// case-insensitive.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, email, password_hash, full_name, created_at, updated_at
		FROM profiles
		WHERE LOWER(email) = $1
	`

	var p auth.Profile
	err := q.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&p.ID, &p.CompanyID, &p.Email, &p.PasswordHash, &p.FullName,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, auth.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return &p, nil
}

// GetByID implements auth.ProfileRepository.
func (r *profileRepository) GetByID(ctx context.Context, id string) (*auth.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, email, password_hash, full_name, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p auth.Profile
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Email, &p.PasswordHash, &p.FullName,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, auth.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// Create implements auth.ProfileRepository.
func (r *profileRepository) Create(ctx context.Context, profile *auth.Profile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO profiles (id, company_id, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.ID,
		profile.CompanyID,
		strings.ToLower(profile.Email),
		profile.PasswordHash,
		profile.FullName,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func NewProfileRepository(db *database.DB) auth.ProfileRepository {
	return &profileRepository{db: db}
}
