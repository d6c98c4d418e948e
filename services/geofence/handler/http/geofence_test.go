package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/geo"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIngestLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	zone := "airport"
	mockUC.EXPECT().IngestLocation(gomock.Any(), gomock.Any()).
		Return(&models.IngestResult{
			Status: &models.VehicleStatus{VehicleID: "V1", CurrentZone: &zone},
			GeneratedEvents: []models.ZoneEvent{
				{EventType: models.EventTypeEnter, VehicleID: "V1", ZoneID: "airport"},
			},
		}, nil)

	body := `{"vehicleId":"V1","latitude":12.9611,"longitude":77.6387,"timestamp":"2024-03-01T10:00:00Z"}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enter"`)
	assert.Contains(t, rec.Body.String(), `"airport"`)
}

func TestIngestLocation_DefaultsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	before := time.Now().UTC()
	mockUC.EXPECT().IngestLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, update *models.LocationUpdate) (*models.IngestResult, error) {
			require.NotNil(t, update.Timestamp)
			assert.False(t, update.Timestamp.Before(before))
			return &models.IngestResult{
				Status: &models.VehicleStatus{VehicleID: "V1"},
			}, nil
		})

	body := `{"vehicleId":"V1","latitude":0,"longitude":0}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIngestLocation_MissingVehicleID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	body := `{"latitude":12.9611,"longitude":77.6387}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "vehicleId is required")
}

func TestIngestLocation_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "both coordinates absent",
			body:    `{"vehicleId":"V1"}`,
			message: "latitude is required",
		},
		{
			name:    "latitude absent",
			body:    `{"vehicleId":"V1","longitude":77.6387}`,
			message: "latitude is required",
		},
		{
			name:    "longitude absent",
			body:    `{"vehicleId":"V1","latitude":12.9611}`,
			message: "longitude is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An absent coordinate must never be treated as a position
			// at (0,0), so the use case is not called at all
			c, rec := newTestContext(http.MethodPost, "/location", tt.body)

			err := handler.IngestLocation(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestIngestLocation_ZeroCoordinatesAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().IngestLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, update *models.LocationUpdate) (*models.IngestResult, error) {
			assert.Equal(t, 0.0, update.Latitude)
			assert.Equal(t, 0.0, update.Longitude)
			return &models.IngestResult{
				Status: &models.VehicleStatus{VehicleID: "V1"},
			}, nil
		})

	body := `{"vehicleId":"V1","latitude":0,"longitude":0}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIngestLocation_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	c, rec := newTestContext(http.MethodPost, "/location", `{"latitude":"not-a-number"}`)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestLocation_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().IngestLocation(gomock.Any(), gomock.Any()).
		Return(nil, geo.ErrInvalidLatitude)

	body := `{"vehicleId":"V1","latitude":91,"longitude":0}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestLocation_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().IngestLocation(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("event store unavailable"))

	body := `{"vehicleId":"V1","latitude":0,"longitude":0}`
	c, rec := newTestContext(http.MethodPost, "/location", body)

	err := handler.IngestLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetVehicleStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	zone := "downtown"
	mockUC.EXPECT().GetVehicleStatus(gomock.Any(), "V1").
		Return(&models.VehicleStatus{VehicleID: "V1", CurrentZone: &zone}, nil)

	c, rec := newTestContext(http.MethodGet, "/status/V1", "")
	c.SetParamNames("id")
	c.SetParamValues("V1")

	err := handler.GetVehicleStatus(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"downtown"`)
}

func TestGetVehicleStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().GetVehicleStatus(gomock.Any(), "ghost").
		Return(nil, geofence.ErrVehicleNotFound)

	c, rec := newTestContext(http.MethodGet, "/status/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	err := handler.GetVehicleStatus(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEvents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().ListEvents(gomock.Any(), "V1", 5).
		Return([]models.ZoneEvent{
			{EventType: models.EventTypeExit, VehicleID: "V1", ZoneID: "airport"},
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/events?vehicleId=V1&limit=5", "")

	err := handler.ListEvents(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exit"`)
}

func TestListEvents_NoFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().ListEvents(gomock.Any(), "", 0).
		Return([]models.ZoneEvent{}, nil)

	c, rec := newTestContext(http.MethodGet, "/events", "")

	err := handler.ListEvents(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEvents_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	c, rec := newTestContext(http.MethodGet, "/events?limit=abc", "")

	err := handler.ListEvents(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockGeofenceUC(ctrl)
	handler := NewGeofenceHandler(mockUC)

	mockUC.EXPECT().ListZones(gomock.Any()).
		Return([]models.Zone{
			{ID: "airport", CenterLatitude: 12.9611, CenterLongitude: 77.6387, RadiusMeters: 3000},
		})

	c, rec := newTestContext(http.MethodGet, "/zones", "")

	err := handler.ListZones(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"airport"`)
}
