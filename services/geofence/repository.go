package geofence

import (
	"context"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/RamShekade/Geofence-Event-Tracker/services/geofence VehicleStateRepo,EventRepo

// VehicleStateRepo defines the interface for vehicle state persistence.
// One status exists per vehicle id; Put overwrites unconditionally.
type VehicleStateRepo interface {
	// GetVehicleStatus returns the stored status for a vehicle, or
	// ErrVehicleNotFound when the vehicle has never submitted an update
	GetVehicleStatus(ctx context.Context, vehicleID string) (*models.VehicleStatus, error)

	// PutVehicleStatus creates or overwrites the status for a vehicle
	PutVehicleStatus(ctx context.Context, status *models.VehicleStatus) error
}

// EventRepo defines the interface for the append-only zone event log
type EventRepo interface {
	// AppendEvents appends events to the log in the given order
	AppendEvents(ctx context.Context, events []models.ZoneEvent) error

	// ListEvents returns the last limit events matching the optional
	// vehicle id filter, oldest of the selected window first
	ListEvents(ctx context.Context, vehicleID string, limit int) ([]models.ZoneEvent, error)
}
