package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones() []models.Zone {
	return []models.Zone{
		{ID: "airport", CenterLatitude: 12.9611, CenterLongitude: 77.6387, RadiusMeters: 3000},
		{ID: "downtown", CenterLatitude: 12.9716, CenterLongitude: 77.5946, RadiusMeters: 5000},
		{ID: "suburb", CenterLatitude: 12.9956, CenterLongitude: 77.7000, RadiusMeters: 4000},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		zones   []models.Zone
		wantErr string
	}{
		{
			name:    "empty catalog",
			zones:   nil,
			wantErr: "zone catalog is empty",
		},
		{
			name: "empty id",
			zones: []models.Zone{
				{ID: "", CenterLatitude: 0, CenterLongitude: 0, RadiusMeters: 100},
			},
			wantErr: "empty id",
		},
		{
			name: "duplicate id",
			zones: []models.Zone{
				{ID: "a", CenterLatitude: 0, CenterLongitude: 0, RadiusMeters: 100},
				{ID: "a", CenterLatitude: 1, CenterLongitude: 1, RadiusMeters: 100},
			},
			wantErr: "duplicate zone id",
		},
		{
			name: "non-positive radius",
			zones: []models.Zone{
				{ID: "a", CenterLatitude: 0, CenterLongitude: 0, RadiusMeters: 0},
			},
			wantErr: "non-positive radius",
		},
		{
			name: "invalid center",
			zones: []models.Zone{
				{ID: "a", CenterLatitude: 91, CenterLongitude: 0, RadiusMeters: 100},
			},
			wantErr: "invalid center",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.zones)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestZones_PreservesOrder(t *testing.T) {
	cat, err := New(testZones())
	require.NoError(t, err)

	zones := cat.Zones()
	require.Len(t, zones, 3)
	assert.Equal(t, "airport", zones[0].ID)
	assert.Equal(t, "downtown", zones[1].ID)
	assert.Equal(t, "suburb", zones[2].ID)
}

func TestResolveZone_FirstMatchWins(t *testing.T) {
	// Both zones contain the point; the one declared first must win even
	// though the second zone's center is closer.
	zones := []models.Zone{
		{ID: "wide", CenterLatitude: 12.9700, CenterLongitude: 77.6000, RadiusMeters: 10000},
		{ID: "tight", CenterLatitude: 12.9716, CenterLongitude: 77.5946, RadiusMeters: 5000},
	}
	cat, err := New(zones)
	require.NoError(t, err)

	zoneID, ok := cat.ResolveZone(12.9716, 77.5946)
	require.True(t, ok)
	assert.Equal(t, "wide", zoneID)
}

func TestResolveZone_NoMatch(t *testing.T) {
	cat, err := New(testZones())
	require.NoError(t, err)

	_, ok := cat.ResolveZone(0, 0)
	assert.False(t, ok)
}

func TestResolveZone_CenterAndBoundary(t *testing.T) {
	cat, err := New(testZones())
	require.NoError(t, err)

	zoneID, ok := cat.ResolveZone(12.9611, 77.6387)
	require.True(t, ok)
	assert.Equal(t, "airport", zoneID)

	zoneID, ok = cat.ResolveZone(12.9956, 77.7000)
	require.True(t, ok)
	assert.Equal(t, "suburb", zoneID)
}

func TestContains(t *testing.T) {
	cat, err := New(testZones())
	require.NoError(t, err)

	assert.True(t, cat.Contains("downtown"))
	assert.False(t, cat.Contains("harbor"))
}

func TestLoad(t *testing.T) {
	content := `zones:
  - id: airport
    center_lat: 12.9611
    center_lng: 77.6387
    radius_m: 3000
  - id: downtown
    center_lat: 12.9716
    center_lng: 77.5946
    radius_m: 5000
`
	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, "airport", cat.Zones()[0].ID)
	assert.Equal(t, 5000.0, cat.Zones()[1].RadiusMeters)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
