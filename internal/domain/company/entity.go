package company

import (
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/pkg/geo"
)

type Company struct {
	ID                   string
	Name                 string
	Timezone             string // IANA name, attendance dates are derived in it
	Schedule             Schedule
	LateThresholdMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Location returns the company's timezone, falling back to the given
// location when no timezone is set or the stored name does not resolve.
func (c Company) Location(fallback *time.Location) *time.Location {
	if c.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// GeofenceZone is a circular region punches must fall inside when any zones
// are configured for the company.
type GeofenceZone struct {
	ID           string
	CompanyID    string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WithinRange reports whether the point is inside the zone. The boundary is
// inclusive: a point at exactly RadiusMeters is admitted.
func (z GeofenceZone) WithinRange(lat, lon float64) bool {
	distance := geo.DistanceMeters(
		geo.Point{Latitude: z.Latitude, Longitude: z.Longitude},
		geo.Point{Latitude: lat, Longitude: lon},
	)
	return distance <= float64(z.RadiusMeters)
}

// Admissible decides whether a point may punch given the configured zones.
// An empty zone set means the company has no location restriction.
func Admissible(lat, lon float64, zones []GeofenceZone) bool {
	if len(zones) == 0 {
		return true
	}
	for _, z := range zones {
		if z.WithinRange(lat, lon) {
			return true
		}
	}
	return false
}
