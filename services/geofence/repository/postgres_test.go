package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockEventRepo(t *testing.T) (*postgresEventRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return &postgresEventRepo{db: db}, mock
}

func TestPostgresEventRepo_AppendEvents(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	from := "downtown"
	to := "airport"
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	events := []models.ZoneEvent{
		{
			EventID:   uuid.New(),
			EventType: models.EventTypeExit,
			VehicleID: "V1",
			ZoneID:    "downtown",
			FromZone:  &from,
			ToZone:    &to,
			Geohash:   "tdr1wqqvu",
			Timestamp: ts,
		},
		{
			EventID:   uuid.New(),
			EventType: models.EventTypeEnter,
			VehicleID: "V1",
			ZoneID:    "airport",
			FromZone:  &from,
			ToZone:    &to,
			Geohash:   "tdr1wqqvu",
			Timestamp: ts,
		},
	}

	mock.ExpectBegin()
	for _, e := range events {
		mock.ExpectExec("INSERT INTO zone_events").
			WithArgs(e.EventID, string(e.EventType), e.VehicleID, e.ZoneID, from, to, e.Geohash, ts).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	err := repo.AppendEvents(context.Background(), events)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_AppendEvents_NullZones(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	to := "airport"
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	event := models.ZoneEvent{
		EventID:   uuid.New(),
		EventType: models.EventTypeEnter,
		VehicleID: "V1",
		ZoneID:    "airport",
		ToZone:    &to,
		Timestamp: ts,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO zone_events").
		WithArgs(event.EventID, "enter", "V1", "airport", nil, to, "", ts).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AppendEvents(context.Background(), []models.ZoneEvent{event})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_AppendEvents_RollbackOnError(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	event := models.ZoneEvent{
		EventID:   uuid.New(),
		EventType: models.EventTypeEnter,
		VehicleID: "V1",
		ZoneID:    "airport",
		Timestamp: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO zone_events").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.AppendEvents(context.Background(), []models.ZoneEvent{event})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_AppendEvents_Empty(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	// No queries at all for an empty batch
	err := repo.AppendEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_ListEvents(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	idNewer := uuid.New()
	idOlder := uuid.New()
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	columns := []string{"event_id", "event_type", "vehicle_id", "zone_id", "from_zone", "to_zone", "geohash", "event_time"}
	rows := sqlmock.NewRows(columns).
		AddRow(idNewer.String(), "enter", "V1", "airport", "downtown", "airport", "tdr1wqqvu", ts).
		AddRow(idOlder.String(), "exit", "V1", "downtown", "downtown", "airport", "tdr1wqqvu", ts)

	mock.ExpectQuery("SELECT (.+) FROM zone_events WHERE vehicle_id = \\$1 ORDER BY id DESC LIMIT \\$2").
		WithArgs("V1", 10).
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), "V1", 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Rows come back newest first and must be reversed
	assert.Equal(t, idOlder, events[0].EventID)
	assert.Equal(t, models.EventTypeExit, events[0].EventType)
	assert.Equal(t, idNewer, events[1].EventID)
	assert.Equal(t, models.EventTypeEnter, events[1].EventType)

	require.NotNil(t, events[0].FromZone)
	assert.Equal(t, "downtown", *events[0].FromZone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_ListEvents_NullZones(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	id := uuid.New()
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	columns := []string{"event_id", "event_type", "vehicle_id", "zone_id", "from_zone", "to_zone", "geohash", "event_time"}
	rows := sqlmock.NewRows(columns).
		AddRow(id.String(), "enter", "V1", "airport", nil, "airport", "", ts)

	mock.ExpectQuery("SELECT (.+) FROM zone_events ORDER BY id DESC LIMIT \\$1").
		WithArgs(100).
		WillReturnRows(rows)

	events, err := repo.ListEvents(context.Background(), "", 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].FromZone)
	require.NotNil(t, events[0].ToZone)
	assert.Equal(t, "airport", *events[0].ToZone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEventRepo_ListEvents_QueryError(t *testing.T) {
	repo, mock := newMockEventRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM zone_events").
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListEvents(context.Background(), "", 100)
	assert.Error(t, err)
}
