package repository

import (
	"context"
	"sync"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
)

// DefaultMaxEvents caps the in-memory event log when no limit is configured
const DefaultMaxEvents = 10000

// memoryStateRepo is the default in-process vehicle state store
type memoryStateRepo struct {
	mu       sync.RWMutex
	vehicles map[string]models.VehicleStatus
}

// NewMemoryStateRepo creates an in-memory vehicle state repository
func NewMemoryStateRepo() geofence.VehicleStateRepo {
	return &memoryStateRepo{
		vehicles: make(map[string]models.VehicleStatus),
	}
}

// GetVehicleStatus returns the stored status for a vehicle
func (r *memoryStateRepo) GetVehicleStatus(ctx context.Context, vehicleID string) (*models.VehicleStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.vehicles[vehicleID]
	if !ok {
		return nil, geofence.ErrVehicleNotFound
	}

	// Copy so callers can't mutate the stored entry
	out := status
	return &out, nil
}

// PutVehicleStatus creates or overwrites the status for a vehicle
func (r *memoryStateRepo) PutVehicleStatus(ctx context.Context, status *models.VehicleStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vehicles[status.VehicleID] = *status
	return nil
}

// memoryEventRepo is the default in-process append-only event log.
// The log is bounded: when maxEvents is reached the oldest entries are
// dropped, which keeps memory use predictable under sustained traffic.
type memoryEventRepo struct {
	mu        sync.RWMutex
	events    []models.ZoneEvent
	maxEvents int
}

// NewMemoryEventRepo creates an in-memory event log capped at maxEvents
func NewMemoryEventRepo(maxEvents int) geofence.EventRepo {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &memoryEventRepo{
		maxEvents: maxEvents,
	}
}

// AppendEvents appends events to the log in the given order
func (r *memoryEventRepo) AppendEvents(ctx context.Context, events []models.ZoneEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, events...)
	if len(r.events) > r.maxEvents {
		overflow := len(r.events) - r.maxEvents
		r.events = append([]models.ZoneEvent(nil), r.events[overflow:]...)
	}
	return nil
}

// ListEvents returns the last limit events matching the filter,
// oldest of the selected window first
func (r *memoryEventRepo) ListEvents(ctx context.Context, vehicleID string, limit int) ([]models.ZoneEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.events
	if vehicleID != "" {
		filtered = make([]models.ZoneEvent, 0)
		for _, e := range r.events {
			if e.VehicleID == vehicleID {
				filtered = append(filtered, e)
			}
		}
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}

	out := make([]models.ZoneEvent, len(filtered))
	copy(out, filtered)
	return out, nil
}
