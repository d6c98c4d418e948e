package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePoint(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 12.9611, Longitude: 77.6387},
		{Latitude: -90, Longitude: 180},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Point{Latitude: 12.9611, Longitude: 77.6387}
	b := Point{Latitude: 12.9716, Longitude: 77.5946}

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Bangalore airport zone center to downtown zone center is roughly 4.9 km
	a := Point{Latitude: 12.9611, Longitude: 77.6387}
	b := Point{Latitude: 12.9716, Longitude: 77.5946}

	dist := DistanceMeters(a, b)
	assert.InDelta(t, 4900, dist, 200)
}

func TestDistanceMeters_Antipodal(t *testing.T) {
	// Antipodal points are half the Earth's circumference apart
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 180}

	dist := DistanceMeters(a, b)
	assert.False(t, math.IsNaN(dist))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, dist, 1)
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{name: "valid", latitude: 12.9611, longitude: 77.6387, wantErr: nil},
		{name: "boundary latitude", latitude: 90, longitude: 0, wantErr: nil},
		{name: "boundary longitude", latitude: 0, longitude: -180, wantErr: nil},
		{name: "latitude too high", latitude: 90.1, longitude: 0, wantErr: ErrInvalidLatitude},
		{name: "latitude too low", latitude: -90.1, longitude: 0, wantErr: ErrInvalidLatitude},
		{name: "longitude too high", latitude: 0, longitude: 180.1, wantErr: ErrInvalidLongitude},
		{name: "longitude too low", latitude: 0, longitude: -180.1, wantErr: ErrInvalidLongitude},
		{name: "NaN latitude", latitude: math.NaN(), longitude: 0, wantErr: ErrInvalidLatitude},
		{name: "NaN longitude", latitude: 0, longitude: math.NaN(), wantErr: ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.latitude, tt.longitude)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(12.9611, 77.6387, 9)
	assert.Len(t, hash, 9)

	// Nearby positions share a prefix; a distant one does not
	near := EncodeLocation(12.9612, 77.6388, 9)
	assert.Equal(t, hash[:6], near[:6])

	far := EncodeLocation(-33.8688, 151.2093, 9)
	assert.NotEqual(t, hash[:1], far[:1])
}
