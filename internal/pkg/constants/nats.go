package constants

// NATS Subjects
const (
	// Geofence Service
	SubjectZoneEnter = "geofence.events.enter"
	SubjectZoneExit  = "geofence.events.exit"
)
