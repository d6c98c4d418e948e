package models

import "time"

// VehicleStatus represents the last known state of a vehicle. Exactly one
// status exists per vehicle id that has ever submitted an update; it is
// created on the first update and overwritten in place thereafter.
type VehicleStatus struct {
	VehicleID     string    `json:"vehicleId"`
	CurrentZone   *string   `json:"currentZone"`
	LastLatitude  float64   `json:"lastLatitude"`
	LastLongitude float64   `json:"lastLongitude"`
	Geohash       string    `json:"geohash,omitempty"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
