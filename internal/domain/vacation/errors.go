package vacation

import "errors"

var (
	ErrRequestNotFound  = errors.New("vacation request not found")
	ErrAlreadyProcessed = errors.New("vacation request has already been reviewed")
	ErrInvalidDateRange = errors.New("vacation end date must not be before its start date")
)
