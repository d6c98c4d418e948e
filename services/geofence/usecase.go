package geofence

import (
	"context"
	"errors"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
)

var (
	// ErrVehicleNotFound indicates the vehicle has never submitted an update
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrEmptyVehicleID indicates a missing vehicle identifier
	ErrEmptyVehicleID = errors.New("vehicle id is required")
	// ErrMissingTimestamp indicates the caller did not supply an update time.
	// Timestamp defaulting is the transport layer's responsibility; the
	// engine itself never reads the clock.
	ErrMissingTimestamp = errors.New("timestamp is required")
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/RamShekade/Geofence-Event-Tracker/services/geofence GeofenceUC

// GeofenceUC defines the interface for geofence business logic
type GeofenceUC interface {
	// IngestLocation processes one vehicle location update: resolves zone
	// membership, derives enter/exit events, persists the new state and
	// returns it together with the events generated by this call only.
	IngestLocation(ctx context.Context, update *models.LocationUpdate) (*models.IngestResult, error)

	// GetVehicleStatus returns the last known state of a vehicle
	GetVehicleStatus(ctx context.Context, vehicleID string) (*models.VehicleStatus, error)

	// ListEvents returns the most recent zone events in insertion order,
	// optionally filtered by vehicle id
	ListEvents(ctx context.Context, vehicleID string, limit int) ([]models.ZoneEvent, error)

	// ListZones returns the static zone catalog in declared order
	ListZones(ctx context.Context) []models.Zone
}
