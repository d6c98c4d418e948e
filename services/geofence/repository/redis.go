package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/constants"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/database"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
)

// DefaultVehicleStateTTL is how long vehicle state is kept in Redis when
// no TTL is configured. Stale vehicles age out instead of accumulating.
const DefaultVehicleStateTTL = 24 * time.Hour

type redisStateRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisStateRepo creates a Redis-backed vehicle state repository
func NewRedisStateRepo(redisClient *database.RedisClient, ttl time.Duration) geofence.VehicleStateRepo {
	if ttl <= 0 {
		ttl = DefaultVehicleStateTTL
	}
	return &redisStateRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetVehicleStatus returns the stored status for a vehicle
func (r *redisStateRepo) GetVehicleStatus(ctx context.Context, vehicleID string) (*models.VehicleStatus, error) {
	statusKey := fmt.Sprintf(constants.KeyVehicleStatus, vehicleID)

	values, err := r.redisClient.HMGet(ctx, statusKey,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldCurrentZone,
		constants.FieldGeohash,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle status: %w", err)
	}

	// The timestamp field is always written, so its absence means the
	// vehicle has never been stored
	if len(values) != 5 || values[4] == "" {
		return nil, geofence.ErrVehicleNotFound
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := models.ParseTime(values[4])
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	status := &models.VehicleStatus{
		VehicleID:     vehicleID,
		LastLatitude:  lat,
		LastLongitude: lng,
		Geohash:       values[3],
		LastUpdated:   ts,
	}

	// Empty zone field means the vehicle is not inside any zone
	if values[2] != "" {
		zone := values[2]
		status.CurrentZone = &zone
	}

	return status, nil
}

// PutVehicleStatus creates or overwrites the status for a vehicle
func (r *redisStateRepo) PutVehicleStatus(ctx context.Context, status *models.VehicleStatus) error {
	statusKey := fmt.Sprintf(constants.KeyVehicleStatus, status.VehicleID)

	zone := ""
	if status.CurrentZone != nil {
		zone = *status.CurrentZone
	}

	statusData := map[string]interface{}{
		constants.FieldLatitude:    strconv.FormatFloat(status.LastLatitude, 'f', -1, 64),
		constants.FieldLongitude:   strconv.FormatFloat(status.LastLongitude, 'f', -1, 64),
		constants.FieldCurrentZone: zone,
		constants.FieldGeohash:     status.Geohash,
		constants.FieldTimestamp:   models.FormatTime(status.LastUpdated),
	}

	if err := r.redisClient.HMSet(ctx, statusKey, statusData); err != nil {
		return fmt.Errorf("failed to store vehicle status: %w", err)
	}

	if err := r.redisClient.Expire(ctx, statusKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set vehicle status TTL: %w", err)
	}

	// Keep the geo set updated for fleet-wide position queries
	if err := r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, status.LastLongitude, status.LastLatitude, status.VehicleID); err != nil {
		return fmt.Errorf("failed to update vehicle geo set: %w", err)
	}

	return nil
}
