package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/geo"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/logger"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/utils"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	"github.com/labstack/echo/v4"
)

// GeofenceHandler handles HTTP requests for geofence operations
type GeofenceHandler struct {
	geofenceUC geofence.GeofenceUC
}

// locationRequest is the ingest request body. Latitude and longitude are
// pointers so an absent field can be told apart from a real position at
// (0,0), which is a valid coordinate.
type locationRequest struct {
	VehicleID string     `json:"vehicleId"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// NewGeofenceHandler creates a new geofence HTTP handler
func NewGeofenceHandler(geofenceUC geofence.GeofenceUC) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: geofenceUC,
	}
}

// IngestLocation accepts a vehicle GPS location update and detects zone
// enter/exit events
func (h *GeofenceHandler) IngestLocation(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind location update", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.VehicleID == "" {
		return utils.BadRequestResponse(c, "vehicleId is required")
	}
	if req.Latitude == nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	if req.Longitude == nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}

	// Timestamp defaulting is this layer's decision; the engine stays
	// deterministic and never reads the clock
	if req.Timestamp == nil || req.Timestamp.IsZero() {
		now := models.Now()
		req.Timestamp = &now
	}

	update := &models.LocationUpdate{
		VehicleID: req.VehicleID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: req.Timestamp,
	}

	result, err := h.geofenceUC.IngestLocation(c.Request().Context(), update)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidLatitude) || errors.Is(err, geo.ErrInvalidLongitude) ||
			errors.Is(err, geofence.ErrEmptyVehicleID) || errors.Is(err, geofence.ErrMissingTimestamp) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to ingest location update",
			logger.String("vehicle_id", req.VehicleID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to process location update")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location processed", result)
}

// GetVehicleStatus returns the current zone and last known location of a
// vehicle
func (h *GeofenceHandler) GetVehicleStatus(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	status, err := h.geofenceUC.GetVehicleStatus(c.Request().Context(), vehicleID)
	if err != nil {
		if errors.Is(err, geofence.ErrVehicleNotFound) {
			return utils.NotFoundResponse(c, "vehicle not found")
		}
		logger.Error("Failed to get vehicle status",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle status retrieved", status)
}

// ListEvents lists recent zone enter/exit events, optionally filtered by
// vehicle id
func (h *GeofenceHandler) ListEvents(c echo.Context) error {
	vehicleID := c.QueryParam("vehicleId")

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid limit")
		}
		limit = parsed
	}

	events, err := h.geofenceUC.ListEvents(c.Request().Context(), vehicleID, limit)
	if err != nil {
		logger.Error("Failed to list zone events", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to list events")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zone events retrieved", events)
}

// ListZones lists the configured geofence zones in declared order
func (h *GeofenceHandler) ListZones(c echo.Context) error {
	zones := h.geofenceUC.ListZones(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Zones retrieved", zones)
}
