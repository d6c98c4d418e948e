package handler

import (
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	httpHandler "github.com/RamShekade/Geofence-Event-Tracker/services/geofence/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the geofence service
type Handler struct {
	geofenceHTTP *httpHandler.GeofenceHandler
}

// NewHandler creates a new combined handler
func NewHandler(geofenceUC geofence.GeofenceUC) *Handler {
	return &Handler{
		geofenceHTTP: httpHandler.NewGeofenceHandler(geofenceUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/location", h.geofenceHTTP.IngestLocation)
	e.GET("/status/:id", h.geofenceHTTP.GetVehicleStatus)
	e.GET("/events", h.geofenceHTTP.ListEvents)
	e.GET("/zones", h.geofenceHTTP.ListZones)
}
