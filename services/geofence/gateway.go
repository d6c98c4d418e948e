package geofence

import (
	"context"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/RamShekade/Geofence-Event-Tracker/services/geofence GeofenceGW

// GeofenceGW defines the interface for geofence gateway operations
type GeofenceGW interface {
	// PublishZoneEvent publishes a zone transition event to NATS
	PublishZoneEvent(ctx context.Context, event *models.ZoneEvent) error
}
