package constants

// Redis key formats
const (
	// Geofence Service
	KeyVehicleStatus = "vehicle:status:%s" // Format: vehicle:status:{vehicle_id}
	KeyVehicleGeo    = "vehicles:geo"      // GeoHash set of all vehicle positions
)

// Redis hash fields
const (
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
	FieldCurrentZone = "zone"
	FieldGeohash     = "geohash"
	FieldTimestamp   = "ts"
)
