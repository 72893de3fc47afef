package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/linguaverse/statistics-service/internal/models"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, connString string) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Connection pool configuration
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// CreateEvent inserts a new activity event. The id and created_at are
// assigned here; callers must not set them.
func (r *PostgresRepository) CreateEvent(ctx context.Context, event *models.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		idUUID, _ := uuid.NewV7()
		event.ID = idUUID.String()
	}

	payloadJSON, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO activity_events (id, owner_id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	err = r.pool.QueryRow(ctx, query,
		event.ID,
		event.OwnerID,
		event.Kind,
		payloadJSON,
	).Scan(&event.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create activity event: %w", err)
	}

	return nil
}

// ListByOwner retrieves all events for one owner, most recent first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.ActivityEvent, error) {
	return r.list(ctx, `
		SELECT id, owner_id, kind, payload, created_at
		FROM activity_events
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
}

// ListAll retrieves every stored event, most recent first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.ActivityEvent, error) {
	return r.list(ctx, `
		SELECT id, owner_id, kind, payload, created_at
		FROM activity_events
		ORDER BY created_at DESC
	`)
}

// ListByKind retrieves all events of one kind, most recent first.
func (r *PostgresRepository) ListByKind(ctx context.Context, kind string) ([]*models.ActivityEvent, error) {
	return r.list(ctx, `
		SELECT id, owner_id, kind, payload, created_at
		FROM activity_events
		WHERE kind = $1
		ORDER BY created_at DESC
	`, kind)
}

// ListByOwnerAndKind retrieves one owner's events of one kind, most recent first.
func (r *PostgresRepository) ListByOwnerAndKind(ctx context.Context, ownerID, kind string) ([]*models.ActivityEvent, error) {
	return r.list(ctx, `
		SELECT id, owner_id, kind, payload, created_at
		FROM activity_events
		WHERE owner_id = $1 AND kind = $2
		ORDER BY created_at DESC
	`, ownerID, kind)
}

// CountByKindSince counts events of one kind created at or after since.
func (r *PostgresRepository) CountByKindSince(ctx context.Context, kind string, since time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT COUNT(*)
		FROM activity_events
		WHERE kind = $1 AND created_at >= $2
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, kind, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activity events: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}
	defer rows.Close()

	events := []*models.ActivityEvent{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity events: %w", err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (*models.ActivityEvent, error) {
	var event models.ActivityEvent
	var payloadJSON []byte

	err := row.Scan(
		&event.ID,
		&event.OwnerID,
		&event.Kind,
		&payloadJSON,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan activity event: %w", err)
	}

	if len(payloadJSON) > 0 {
		if err := json.Unmarshal(payloadJSON, &event.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	event.CreatedAt = event.CreatedAt.UTC()
	return &event, nil
}
