package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicatePunch  = errors.New("a punch of that kind already exists for today")
	ErrOutsideGeofence = errors.New("you are outside the allowed location")
	ErrInvalidKind     = errors.New("invalid punch kind")
	ErrPunchNotFound   = errors.New("punch not found")
)
