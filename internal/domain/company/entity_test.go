package company

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackWhenUnsetOrInvalid(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	assert.Equal(t, lima, Company{Timezone: "America/Lima"}.Location(time.UTC))
	assert.Equal(t, lima, Company{}.Location(lima))
	assert.Equal(t, lima, Company{Timezone: "Not/AZone"}.Location(lima))
}

func TestAdmissible_NoZones(t *testing.T) {
	assert.True(t, Admissible(0, 0, nil))
	assert.True(t, Admissible(89.9, 179.9, []GeofenceZone{}))
}

func TestAdmissible_Boundary(t *testing.T) {
	// A zone centered on the office with a 100 m radius.
	zone := GeofenceZone{Latitude: -12.046374, Longitude: -77.042793, RadiusMeters: 100}

	// At the center.
	assert.True(t, Admissible(zone.Latitude, zone.Longitude, []GeofenceZone{zone}))

	// One degree of latitude is ~111 km; 0.0009 degrees is ~100 m. Just
	// inside and well outside the radius.
	assert.True(t, Admissible(zone.Latitude+0.00088, zone.Longitude, []GeofenceZone{zone}))
	assert.False(t, Admissible(zone.Latitude+0.002, zone.Longitude, []GeofenceZone{zone}))
}

func TestAdmissible_AnyZoneSuffices(t *testing.T) {
	far := GeofenceZone{Latitude: 40.0, Longitude: -3.0, RadiusMeters: 50}
	near := GeofenceZone{Latitude: -12.046374, Longitude: -77.042793, RadiusMeters: 150}

	assert.True(t, Admissible(-12.046374, -77.042793, []GeofenceZone{far, near}))
	assert.False(t, Admissible(-12.2, -77.3, []GeofenceZone{far, near}))
}

func TestWithinRange_InclusiveAtRadius(t *testing.T) {
	zone := GeofenceZone{Latitude: 0, Longitude: 0, RadiusMeters: 0}
	assert.True(t, zone.WithinRange(0, 0))
}
