package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/constants"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	natspkg "github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/nats"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
)

type geofenceGW struct {
	natsClient *natspkg.Client
}

// NewGeofenceGW creates a new geofence gateway
func NewGeofenceGW(natsClient *natspkg.Client) geofence.GeofenceGW {
	return &geofenceGW{
		natsClient: natsClient,
	}
}

// PublishZoneEvent publishes a zone transition event to NATS
func (g *geofenceGW) PublishZoneEvent(ctx context.Context, event *models.ZoneEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal zone event: %w", err)
	}

	subject := constants.SubjectZoneEnter
	if event.EventType == models.EventTypeExit {
		subject = constants.SubjectZoneExit
	}

	return g.natsClient.Publish(subject, data)
}
