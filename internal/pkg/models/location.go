package models

import "time"

// LocationUpdate represents an incoming vehicle location update.
// Timestamp is optional; the HTTP layer defaults it to server time
// before the update reaches the geofence engine.
type LocationUpdate struct {
	VehicleID string     `json:"vehicleId"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
