package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"goap-planner/internal/goap"
	"goap-planner/internal/library"
)

// Library is a named, versioned action library as persisted in Postgres.
type Library struct {
	ID        uuid.UUID
	Name      string
	Actions   []goap.Action
	Version   int
	UpdatedAt time.Time
}

// Repository defines persistence operations for action libraries.
type Repository interface {
	CreateLibrary(ctx context.Context, name string, actions []goap.Action) (uuid.UUID, error)
	GetLibrary(ctx context.Context, id uuid.UUID) (*Library, error)
	GetLibraryByName(ctx context.Context, name string) (*Library, error)
	UpdateLibrary(ctx context.Context, id uuid.UUID, actions []goap.Action) (int, error)
	ListLibraries(ctx context.Context) ([]Library, error)
	DeleteLibrary(ctx context.Context, id uuid.UUID) error
}

// PostgresRepository implements Repository using PostgreSQL, storing the
// action list as a jsonb document produced by library.Marshal.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateLibrary(ctx context.Context, name string, actions []goap.Action) (uuid.UUID, error) {
	payload, err := library.Marshal(actions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal action library: %w", err)
	}

	id := uuid.New()
	query := `
		INSERT INTO action_libraries (id, name, actions, version, updated_at)
		VALUES ($1, $2, $3, 1, now())
	`
	if _, err := r.db.Exec(ctx, query, id, name, payload); err != nil {
		return uuid.Nil, fmt.Errorf("insert action library: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetLibrary(ctx context.Context, id uuid.UUID) (*Library, error) {
	query := `
		SELECT id, name, actions, version, updated_at
		FROM action_libraries
		WHERE id = $1
	`
	return r.scanLibrary(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetLibraryByName(ctx context.Context, name string) (*Library, error) {
	query := `
		SELECT id, name, actions, version, updated_at
		FROM action_libraries
		WHERE name = $1
	`
	return r.scanLibrary(r.db.QueryRow(ctx, query, name))
}

func (r *PostgresRepository) scanLibrary(row pgx.Row) (*Library, error) {
	var (
		lib     Library
		payload []byte
	)
	if err := row.Scan(&lib.ID, &lib.Name, &payload, &lib.Version, &lib.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan action library: %w", err)
	}

	actions, err := library.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("unmarshal stored action library: %w", err)
	}
	lib.Actions = actions
	return &lib, nil
}

// UpdateLibrary overwrites the actions for an existing library and bumps
// its version counter. Returns the new version number.
func (r *PostgresRepository) UpdateLibrary(ctx context.Context, id uuid.UUID, actions []goap.Action) (int, error) {
	payload, err := library.Marshal(actions)
	if err != nil {
		return 0, fmt.Errorf("marshal action library: %w", err)
	}

	query := `
		UPDATE action_libraries
		SET actions = $2, version = version + 1, updated_at = now()
		WHERE id = $1
		RETURNING version
	`
	var version int
	if err := r.db.QueryRow(ctx, query, id, payload).Scan(&version); err != nil {
		return 0, fmt.Errorf("update action library: %w", err)
	}
	return version, nil
}

func (r *PostgresRepository) ListLibraries(ctx context.Context) ([]Library, error) {
	query := `
		SELECT id, name, actions, version, updated_at
		FROM action_libraries
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list action libraries: %w", err)
	}
	defer rows.Close()

	var libraries []Library
	for rows.Next() {
		var (
			lib     Library
			payload []byte
		)
		if err := rows.Scan(&lib.ID, &lib.Name, &payload, &lib.Version, &lib.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan action library row: %w", err)
		}
		actions, err := library.Parse(payload)
		if err != nil {
			return nil, fmt.Errorf("unmarshal stored action library %s: %w", lib.Name, err)
		}
		lib.Actions = actions
		libraries = append(libraries, lib)
	}
	return libraries, rows.Err()
}

func (r *PostgresRepository) DeleteLibrary(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM action_libraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete action library: %w", err)
	}
	return nil
}
