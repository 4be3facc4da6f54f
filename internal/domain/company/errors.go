package company

import "errors"

// Company domain errors
var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameExists = errors.New("company name already exists")
	ErrInvalidSchedule   = errors.New("schedule end must be after its start")

	ErrZoneNotFound = errors.New("geofence zone not found")
)
