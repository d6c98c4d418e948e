package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/geo"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/logger"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/catalog"
	"github.com/google/uuid"
)

// GeofenceUC implements the geofence.GeofenceUC interface
type GeofenceUC struct {
	catalog   *catalog.Catalog
	stateRepo geofence.VehicleStateRepo
	eventRepo geofence.EventRepo
	gw        geofence.GeofenceGW
	cfg       *models.Config

	// Per-vehicle locks: the resolve-compare-append-store sequence must be
	// atomic per vehicle id, or concurrent updates for the same vehicle
	// could both observe the same previous zone and emit duplicate events.
	locks   map[string]*sync.Mutex
	locksMu sync.Mutex
}

// NewGeofenceUC creates a new geofence use case
func NewGeofenceUC(
	cat *catalog.Catalog,
	stateRepo geofence.VehicleStateRepo,
	eventRepo geofence.EventRepo,
	gw geofence.GeofenceGW,
	cfg *models.Config,
) geofence.GeofenceUC {
	return &GeofenceUC{
		catalog:   cat,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		gw:        gw,
		cfg:       cfg,
		locks:     make(map[string]*sync.Mutex),
	}
}

// IngestLocation processes one vehicle location update
func (uc *GeofenceUC) IngestLocation(ctx context.Context, update *models.LocationUpdate) (*models.IngestResult, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	lock := uc.vehicleLock(update.VehicleID)
	lock.Lock()
	defer lock.Unlock()

	// Determine the zone for the new position
	var newZone *string
	if zoneID, ok := uc.catalog.ResolveZone(update.Latitude, update.Longitude); ok {
		newZone = &zoneID
	}

	// Fetch previous zone, if the vehicle has been seen before
	var prevZone *string
	prevStatus, err := uc.stateRepo.GetVehicleStatus(ctx, update.VehicleID)
	if err != nil && !errors.Is(err, geofence.ErrVehicleNotFound) {
		return nil, err
	}
	if prevStatus != nil {
		prevZone = prevStatus.CurrentZone
	}

	hash := geo.EncodeLocation(update.Latitude, update.Longitude, uc.geohashPrecision())
	events := uc.deriveEvents(update, prevZone, newZone, hash)

	if len(events) > 0 {
		if err := uc.eventRepo.AppendEvents(ctx, events); err != nil {
			return nil, err
		}
	}

	status := &models.VehicleStatus{
		VehicleID:     update.VehicleID,
		CurrentZone:   newZone,
		LastLatitude:  update.Latitude,
		LastLongitude: update.Longitude,
		Geohash:       hash,
		LastUpdated:   *update.Timestamp,
	}

	// State is refreshed unconditionally, even for no-op updates
	if err := uc.stateRepo.PutVehicleStatus(ctx, status); err != nil {
		return nil, err
	}

	uc.publishEvents(ctx, events)

	return &models.IngestResult{
		Status:          status,
		GeneratedEvents: events,
	}, nil
}

// deriveEvents computes the ordered transition events for one update.
// Same zone (including none to none) yields no events; a direct move
// between two zones yields exit then enter, both carrying the same
// from/to pair and the update's timestamp.
func (uc *GeofenceUC) deriveEvents(update *models.LocationUpdate, prevZone, newZone *string, hash string) []models.ZoneEvent {
	if zoneIDsEqual(prevZone, newZone) {
		return nil
	}

	base := models.ZoneEvent{
		VehicleID: update.VehicleID,
		Timestamp: *update.Timestamp,
		FromZone:  prevZone,
		ToZone:    newZone,
		Geohash:   hash,
	}

	var events []models.ZoneEvent

	if prevZone != nil {
		exit := base
		exit.EventID = uuid.New()
		exit.EventType = models.EventTypeExit
		exit.ZoneID = *prevZone
		events = append(events, exit)
	}

	if newZone != nil {
		enter := base
		enter.EventID = uuid.New()
		enter.EventType = models.EventTypeEnter
		enter.ZoneID = *newZone
		events = append(events, enter)
	}

	return events
}

// publishEvents forwards generated events to the gateway. Publish
// failures are logged and do not fail the ingest; the events are already
// in the log and downstream consumers can recover from there.
func (uc *GeofenceUC) publishEvents(ctx context.Context, events []models.ZoneEvent) {
	if uc.gw == nil {
		return
	}

	for i := range events {
		if err := uc.gw.PublishZoneEvent(ctx, &events[i]); err != nil {
			logger.WarnCtx(ctx, "Failed to publish zone event",
				logger.String("vehicle_id", events[i].VehicleID),
				logger.String("zone_id", events[i].ZoneID),
				logger.String("event_type", string(events[i].EventType)),
				logger.Err(err))
		}
	}
}

// GetVehicleStatus returns the last known state of a vehicle
func (uc *GeofenceUC) GetVehicleStatus(ctx context.Context, vehicleID string) (*models.VehicleStatus, error) {
	if vehicleID == "" {
		return nil, geofence.ErrEmptyVehicleID
	}

	return uc.stateRepo.GetVehicleStatus(ctx, vehicleID)
}

// ListEvents returns the most recent zone events in insertion order
func (uc *GeofenceUC) ListEvents(ctx context.Context, vehicleID string, limit int) ([]models.ZoneEvent, error) {
	if limit <= 0 {
		limit = uc.defaultEventLimit()
	}
	if max := uc.maxEventLimit(); max > 0 && limit > max {
		limit = max
	}

	return uc.eventRepo.ListEvents(ctx, vehicleID, limit)
}

// ListZones returns the static zone catalog in declared order
func (uc *GeofenceUC) ListZones(ctx context.Context) []models.Zone {
	return uc.catalog.Zones()
}

// vehicleLock returns the mutex serializing updates for one vehicle
func (uc *GeofenceUC) vehicleLock(vehicleID string) *sync.Mutex {
	uc.locksMu.Lock()
	defer uc.locksMu.Unlock()

	lock, ok := uc.locks[vehicleID]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[vehicleID] = lock
	}
	return lock
}

func (uc *GeofenceUC) geohashPrecision() uint {
	if uc.cfg != nil && uc.cfg.Geofence.GeohashPrecision > 0 {
		return uc.cfg.Geofence.GeohashPrecision
	}
	return 9
}

func (uc *GeofenceUC) defaultEventLimit() int {
	if uc.cfg != nil && uc.cfg.Geofence.DefaultEventLimit > 0 {
		return uc.cfg.Geofence.DefaultEventLimit
	}
	return 100
}

// maxEventLimit caps caller-supplied limits so one query can't page the
// whole log out of a durable event store
func (uc *GeofenceUC) maxEventLimit() int {
	if uc.cfg != nil {
		return uc.cfg.Geofence.MaxEvents
	}
	return 0
}

func validateUpdate(update *models.LocationUpdate) error {
	if update == nil || update.VehicleID == "" {
		return geofence.ErrEmptyVehicleID
	}
	if update.Timestamp == nil || update.Timestamp.IsZero() {
		return geofence.ErrMissingTimestamp
	}
	return geo.ValidateCoordinate(update.Latitude, update.Longitude)
}

func zoneIDsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
