package models

// Zone represents a circular geofence zone. Zones are immutable after
// the catalog is loaded; declaration order is significant and acts as
// the tie-break for overlapping zones.
type Zone struct {
	ID              string  `json:"id" yaml:"id"`
	CenterLatitude  float64 `json:"centerLatitude" yaml:"center_lat"`
	CenterLongitude float64 `json:"centerLongitude" yaml:"center_lng"`
	RadiusMeters    float64 `json:"radiusMeters" yaml:"radius_m"`
}
