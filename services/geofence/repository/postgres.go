package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RamShekade/Geofence-Event-Tracker/internal/pkg/models"
	"github.com/RamShekade/Geofence-Event-Tracker/services/geofence"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// postgresEventRepo is a durable event log backed by the zone_events
// table. Insertion order is the bigserial id, not the caller-supplied
// event timestamp.
type postgresEventRepo struct {
	db *sqlx.DB
}

// NewPostgresEventRepo creates a Postgres-backed event log
func NewPostgresEventRepo(db *sqlx.DB) geofence.EventRepo {
	return &postgresEventRepo{db: db}
}

// AppendEvents appends events to the log in the given order
func (r *postgresEventRepo) AppendEvents(ctx context.Context, events []models.ZoneEvent) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO zone_events (event_id, event_type, vehicle_id, zone_id, from_zone, to_zone, geohash, event_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.ExecContext(ctx, query,
			e.EventID,
			string(e.EventType),
			e.VehicleID,
			e.ZoneID,
			nullableZone(e.FromZone),
			nullableZone(e.ToZone),
			e.Geohash,
			e.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to insert zone event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit zone events: %w", err)
	}

	return nil
}

// ListEvents returns the last limit events matching the filter,
// oldest of the selected window first
func (r *postgresEventRepo) ListEvents(ctx context.Context, vehicleID string, limit int) ([]models.ZoneEvent, error) {
	query := `
		SELECT event_id, event_type, vehicle_id, zone_id, from_zone, to_zone, geohash, event_time
		FROM zone_events
	`
	args := []interface{}{}

	if vehicleID != "" {
		query += ` WHERE vehicle_id = $1`
		args = append(args, vehicleID)
	}

	query += fmt.Sprintf(` ORDER BY id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone events: %w", err)
	}
	defer rows.Close()

	var events []models.ZoneEvent
	for rows.Next() {
		var (
			e         models.ZoneEvent
			eventID   string
			eventType string
			fromZone  sql.NullString
			toZone    sql.NullString
		)

		err := rows.Scan(
			&eventID,
			&eventType,
			&e.VehicleID,
			&e.ZoneID,
			&fromZone,
			&toZone,
			&e.Geohash,
			&e.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone event: %w", err)
		}

		id, err := uuid.Parse(eventID)
		if err != nil {
			return nil, fmt.Errorf("invalid event id: %w", err)
		}
		e.EventID = id
		e.EventType = models.EventType(eventType)

		if fromZone.Valid {
			zone := fromZone.String
			e.FromZone = &zone
		}
		if toZone.Valid {
			zone := toZone.String
			e.ToZone = &zone
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read zone events: %w", err)
	}

	// Rows come back newest first; reverse to oldest-of-window first
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}

func nullableZone(zone *string) interface{} {
	if zone == nil {
		return nil
	}
	return *zone
}
