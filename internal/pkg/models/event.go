package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of zone transition
type EventType string

const (
	EventTypeEnter EventType = "enter"
	EventTypeExit  EventType = "exit"
)

// ZoneEvent represents a vehicle crossing a zone boundary. Events are
// immutable once generated and appended to the event log in generation
// order.
type ZoneEvent struct {
	EventID   uuid.UUID `json:"eventId"`
	EventType EventType `json:"eventType"`
	VehicleID string    `json:"vehicleId"`
	ZoneID    string    `json:"zoneId"`
	Timestamp time.Time `json:"timestamp"`
	FromZone  *string   `json:"fromZone"`
	ToZone    *string   `json:"toZone"`
	Geohash   string    `json:"geohash,omitempty"`
}

// IngestResult is the outcome of processing one location update: the
// refreshed vehicle status and the events generated by that update only.
type IngestResult struct {
	Status          *VehicleStatus `json:"status"`
	GeneratedEvents []ZoneEvent    `json:"generatedEvents"`
}
