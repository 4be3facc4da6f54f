package company

import (
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/geo"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/validator"
)

type UpdateCompanyRequest struct {
	Name                 *string `json:"name,omitempty"`
	Timezone             *string `json:"timezone,omitempty"`
	WorkStart            *string `json:"work_start,omitempty"`  // HH:MM:SS
	WorkEnd              *string `json:"work_end,omitempty"`    // HH:MM:SS
	LunchStart           *string `json:"lunch_start,omitempty"` // HH:MM:SS
	LunchEnd             *string `json:"lunch_end,omitempty"`   // HH:MM:SS
	LateThresholdMinutes *int    `json:"late_threshold_minutes,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone name",
		})
	}

	for field, value := range map[string]*string{
		"work_start":  r.WorkStart,
		"work_end":    r.WorkEnd,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
	} {
		if value != nil && *value != "" && !validator.IsValidTimeOfDay(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be in HH:MM:SS format",
			})
		}
	}

	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompanyResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Timezone             string  `json:"timezone"`
	WorkStart            *string `json:"work_start,omitempty"`
	WorkEnd              *string `json:"work_end,omitempty"`
	LunchStart           *string `json:"lunch_start,omitempty"`
	LunchEnd             *string `json:"lunch_end,omitempty"`
	LateThresholdMinutes int     `json:"late_threshold_minutes"`
}

type CreateZoneRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

func (r *CreateZoneRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !geo.ValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !geo.ValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius must be greater than 0",
		})
	} else if r.RadiusMeters > 10000 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius must not exceed 10000 meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateZoneRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	RadiusMeters *int     `json:"radius_meters,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (r *UpdateZoneRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if r.RadiusMeters != nil && (*r.RadiusMeters <= 0 || *r.RadiusMeters > 10000) {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius must be between 1 and 10000 meters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ZoneResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
}
