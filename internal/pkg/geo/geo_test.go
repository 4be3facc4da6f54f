package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	p := Point{Latitude: -12.046374, Longitude: -77.042793}
	assert.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Point
		want    float64 // meters
		epsilon float64
	}{
		{
			// One degree of latitude at the equator.
			name:    "one degree latitude",
			a:       Point{0, 0},
			b:       Point{1, 0},
			want:    111195,
			epsilon: 100,
		},
		{
			// Plaza Mayor de Lima to Miraflores, roughly 8.7 km.
			name:    "lima downtown to miraflores",
			a:       Point{-12.046374, -77.042793},
			b:       Point{-12.119294, -77.029094},
			want:    8240,
			epsilon: 300,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DistanceMeters(c.a, c.b)
			assert.InDelta(t, c.want, got, c.epsilon)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Point{40.416775, -3.703790}
	b := Point{41.385064, 2.173404}
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestValidLatitude(t *testing.T) {
	assert.True(t, ValidLatitude(0))
	assert.True(t, ValidLatitude(-90))
	assert.True(t, ValidLatitude(90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(-91))
}

func TestValidLongitude(t *testing.T) {
	assert.True(t, ValidLongitude(0))
	assert.True(t, ValidLongitude(-180))
	assert.True(t, ValidLongitude(180))
	assert.False(t, ValidLongitude(180.5))
	assert.False(t, ValidLongitude(-200))
}
