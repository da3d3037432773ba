// Package audit implements an append-only log of planner lifecycle
// events in PostgreSQL. The planner service appends one PlanSucceeded or
// PlanFailed event for each plan request that runs the planner; cached
// responses are not recorded, and no PlanRequested or LibraryLoaded events
// are appended by the service. Unlike trace, which records search detail
// for debugging, audit is the durable record of what happened, suitable
// for usage reporting.
package audit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines the methods for appending to and reading the audit log.
type Store interface {
	Append(ctx context.Context, event Event) error
	GetByLibrary(ctx context.Context, libraryID string, fromTimestamp time.Time) ([]Event, error)
	GetByType(ctx context.Context, eventType EventType, fromTimestamp, toTimestamp time.Time) ([]Event, error)
	GetAll(ctx context.Context, fromTimestamp time.Time, limit int) ([]Event, error)
}

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events (id, event_type, library_id, actor_id, timestamp, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query,
		event.ID,
		event.EventType,
		event.LibraryID,
		event.ActorID,
		event.Timestamp,
		event.Payload,
	)
	return err
}

func (s *PostgresStore) GetByLibrary(ctx context.Context, libraryID string, fromTimestamp time.Time) ([]Event, error) {
	query := `
		SELECT id, event_type, library_id, actor_id, timestamp, payload
		FROM audit_events
		WHERE library_id = $1 AND timestamp >= $2
		ORDER BY timestamp ASC
	`
	rows, err := s.pool.Query(ctx, query, libraryID, fromTimestamp)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *PostgresStore) GetByType(ctx context.Context, eventType EventType, fromTimestamp, toTimestamp time.Time) ([]Event, error) {
	query := `
		SELECT id, event_type, library_id, actor_id, timestamp, payload
		FROM audit_events
		WHERE event_type = $1 AND timestamp >= $2 AND timestamp <= $3
		ORDER BY timestamp ASC
	`
	rows, err := s.pool.Query(ctx, query, eventType, fromTimestamp, toTimestamp)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *PostgresStore) GetAll(ctx context.Context, fromTimestamp time.Time, limit int) ([]Event, error) {
	query := `
		SELECT id, event_type, library_id, actor_id, timestamp, payload
		FROM audit_events
		WHERE timestamp >= $1
		ORDER BY timestamp ASC
		LIMIT $2
	`
	rows, err := s.pool.Query(ctx, query, fromTimestamp, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows rowScanner) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.LibraryID, &e.ActorID, &e.Timestamp, &e.Payload); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
