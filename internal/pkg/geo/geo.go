package geo

import (
	"errors"
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distance
const EarthRadiusMeters = 6371000.0

var (
	// ErrInvalidLatitude indicates a latitude outside [-90, 90] or NaN
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")
	// ErrInvalidLongitude indicates a longitude outside [-180, 180] or NaN
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Point represents a geographical point with latitude and longitude
type Point struct {
	Latitude  float64
	Longitude float64
}

// ValidateCoordinate checks that a latitude/longitude pair is a real
// coordinate. NaN is rejected rather than silently computed with.
func ValidateCoordinate(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula. Identical points yield exactly 0.
func DistanceMeters(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
